package handlers

import (
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/repositories"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/core/domain"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/filter"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DocumentHandler handles document endpoints
type DocumentHandler struct {
	documentRepo *repositories.DocumentRepository
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentRepo *repositories.DocumentRepository) *DocumentHandler {
	return &DocumentHandler{documentRepo: documentRepo}
}

var documentFilters = filter.Spec{Fields: []filter.Field{
	{Param: "type"},
	{Param: "category"},
	{Param: "public", Column: "is_public", Op: filter.EqBool},
}}

// List lists documents, or fetches one when an id is given.
// Single fetches count as a download.
// @Summary List documents
// @Description List documents with optional filters, or fetch one by id
// @Tags Documents
// @Produce json
// @Param id query string false "Document ID (single fetch)"
// @Param type query string false "Document type"
// @Param category query string false "Document category"
// @Param public query bool false "Public visibility"
// @Param limit query int false "Max results"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	if id := c.Query("id"); id != "" {
		document, err := h.documentRepo.GetByID(c.Context(), id)
		if err != nil {
			return response.Domain(c, err, "Document")
		}
		if err := h.documentRepo.IncrementDownloadCount(c.Context(), document.ID); err == nil {
			document.DownloadCount++
		}
		return response.Success(c, "Document retrieved successfully", document)
	}

	documents, total, err := h.documentRepo.List(c.Context(), documentFilters.Scope(c.Query), listLimit(c))
	if err != nil {
		return response.Domain(c, err, "Documents")
	}
	return response.List(c, documents, total)
}

// CreateDocumentRequest represents create document request
type CreateDocumentRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	FileName    string  `json:"fileName"`
	FileURL     string  `json:"fileUrl"`
	FileSize    int64   `json:"fileSize"`
	Type        string  `json:"type"`
	Category    *string `json:"category"`
	IsPublic    *bool   `json:"isPublic"`
}

// Create creates a document record
// @Summary Create document
// @Description Register an uploaded file as a document (Admin only)
// @Tags Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateDocumentRequest true "Document data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /documents [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var req CreateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var missing []string
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.FileName == "" {
		missing = append(missing, "fileName")
	}
	if req.FileURL == "" {
		missing = append(missing, "fileUrl")
	}
	if len(missing) > 0 {
		return response.Domain(c, domain.MissingFields(missing), "Document")
	}

	docType := req.Type
	if docType == "" {
		docType = "document"
	}

	document := &models.Document{
		Title:       req.Title,
		Description: optionalString(req.Description),
		FileName:    req.FileName,
		FileURL:     req.FileURL,
		FileSize:    req.FileSize,
		Type:        docType,
		Category:    optionalString(req.Category),
	}
	if req.IsPublic != nil {
		document.IsPublic = *req.IsPublic
	}
	if sessionID, ok := c.Locals("userID").(string); ok && sessionID != "" {
		document.UploadedBy = &sessionID
	}

	if err := h.documentRepo.Create(c.Context(), document); err != nil {
		return response.Domain(c, err, "Document")
	}

	return response.Created(c, "Document created successfully", document)
}

// UpdateDocumentRequest represents partial update of a document
type UpdateDocumentRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Category    *string `json:"category"`
	IsPublic    *bool   `json:"isPublic"`
}

// Update partially updates a document by id
// @Summary Update document
// @Description Update fields of an existing document (Admin only)
// @Tags Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id query string true "Document ID"
// @Param body body UpdateDocumentRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /documents [put]
func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "Document ID is required")
	}

	var req UpdateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	document, err := h.documentRepo.GetByID(c.Context(), id)
	if err != nil {
		return response.Domain(c, err, "Document")
	}

	if req.Title != nil {
		document.Title = *req.Title
	}
	if req.Description != nil {
		document.Description = optionalString(req.Description)
	}
	if req.Type != nil && *req.Type != "" {
		document.Type = *req.Type
	}
	if req.Category != nil {
		document.Category = optionalString(req.Category)
	}
	if req.IsPublic != nil {
		document.IsPublic = *req.IsPublic
	}

	if err := h.documentRepo.Update(c.Context(), document); err != nil {
		return response.Domain(c, err, "Document")
	}

	return response.Success(c, "Document updated successfully", document)
}

// Delete removes a document by id
// @Summary Delete document
// @Description Delete a document permanently (Admin only)
// @Tags Documents
// @Produce json
// @Security BearerAuth
// @Param id query string true "Document ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /documents [delete]
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "Document ID is required")
	}

	if err := h.documentRepo.Delete(c.Context(), id); err != nil {
		return response.Domain(c, err, "Document")
	}

	return response.Success(c, "Document deleted successfully", nil)
}
