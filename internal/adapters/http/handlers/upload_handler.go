package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/config"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const maxUploadSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// UploadHandler handles file uploads to local storage
type UploadHandler struct {
	cfg *config.Config
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{cfg: cfg}
}

// UploadResult describes a stored file
type UploadResult struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
}

// Upload stores a multipart file under the uploads directory
// @Summary Upload file
// @Description Upload an image file, grouped by an optional type folder (Admin only)
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Param type formData string false "Upload group (default general)"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "No file provided")
	}

	if file.Size > maxUploadSize {
		return response.BadRequest(c, "File exceeds the 5MB limit")
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return response.BadRequest(c, fmt.Sprintf("Unsupported file type: %s", contentType))
	}

	group := strings.TrimSpace(c.FormValue("type"))
	if group == "" {
		group = "general"
	}
	group = unsafeFileChars.ReplaceAllString(group, "")
	if group == "" {
		group = "general"
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = unsafeFileChars.ReplaceAllString(base, "_")
	if base == "" {
		base = "file"
	}
	name := fmt.Sprintf("%s_%d%s", base, time.Now().UnixMilli(), strings.ToLower(ext))

	dir := filepath.Join(h.cfg.UploadDir, group)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return response.Domain(c, err, "Upload")
	}

	if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return response.Domain(c, err, "Upload")
	}

	result := UploadResult{
		URL:      fmt.Sprintf("/uploads/%s/%s", group, name),
		FileName: name,
		Size:     file.Size,
		Type:     contentType,
	}

	return response.Created(c, "File uploaded successfully", result)
}
