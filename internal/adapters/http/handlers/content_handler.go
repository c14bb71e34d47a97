package handlers

import (
	"fmt"
	"time"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/repositories"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/config"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/core/domain"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/filter"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/response"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/slug"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ContentHandler handles static page content endpoints
type ContentHandler struct {
	contentRepo *repositories.ContentRepository
	userRepo    *repositories.UserRepository
	cfg         *config.Config
}

// NewContentHandler creates a new content handler
func NewContentHandler(
	contentRepo *repositories.ContentRepository,
	userRepo *repositories.UserRepository,
	cfg *config.Config,
) *ContentHandler {
	return &ContentHandler{
		contentRepo: contentRepo,
		userRepo:    userRepo,
		cfg:         cfg,
	}
}

var contentFilters = filter.Spec{Fields: []filter.Field{
	{Param: "type", Op: filter.EqUpper},
	{Param: "status", Op: filter.EqUpper, Default: "PUBLISHED"},
}}

// List lists content pages, or fetches one when an id or slug is given.
// Single fetches count as a view.
// @Summary List content
// @Description List content pages with optional filters, or fetch one by id or slug
// @Tags Content
// @Produce json
// @Param id query string false "Content ID (single fetch)"
// @Param slug query string false "Content slug (single fetch)"
// @Param type query string false "Content type"
// @Param status query string false "Content status (default PUBLISHED)"
// @Param limit query int false "Max results"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /content [get]
func (h *ContentHandler) List(c *fiber.Ctx) error {
	if id := c.Query("id"); id != "" {
		page, err := h.contentRepo.GetByID(c.Context(), id)
		if err != nil {
			return response.Domain(c, err, "Content")
		}
		return h.respondSingle(c, page)
	}
	if s := c.Query("slug"); s != "" {
		page, err := h.contentRepo.GetBySlug(c.Context(), s)
		if err != nil {
			return response.Domain(c, err, "Content")
		}
		return h.respondSingle(c, page)
	}

	pages, total, err := h.contentRepo.List(c.Context(), contentFilters.Scope(c.Query), listLimit(c))
	if err != nil {
		return response.Domain(c, err, "Content")
	}
	return response.List(c, pages, total)
}

func (h *ContentHandler) respondSingle(c *fiber.Ctx, page *models.Content) error {
	if err := h.contentRepo.IncrementViewCount(c.Context(), page.ID); err == nil {
		page.ViewCount++
	}
	return response.Success(c, "Content retrieved successfully", page)
}

// CreateContentRequest represents create content request
type CreateContentRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Content     string `json:"content"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	AuthorID    string `json:"authorId"`
	AuthorEmail string `json:"authorEmail"`
}

// Create creates a content page
// @Summary Create content
// @Description Create a content page (Admin only)
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateContentRequest true "Content data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /content [post]
func (h *ContentHandler) Create(c *fiber.Ctx) error {
	var req CreateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var missing []string
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.Content == "" {
		missing = append(missing, "content")
	}
	if req.Type == "" {
		missing = append(missing, "type")
	}
	if len(missing) > 0 {
		return response.Domain(c, domain.MissingFields(missing), "Content")
	}

	contentType, err := domain.NormalizeEnum("content type", req.Type, domain.ContentTypes)
	if err != nil {
		return response.Domain(c, err, "Content")
	}
	status := "DRAFT"
	if req.Status != "" {
		status, err = domain.NormalizeEnum("content status", req.Status, domain.ContentStatuses)
		if err != nil {
			return response.Domain(c, err, "Content")
		}
	}

	pageSlug, err := h.uniqueSlug(c, req.Slug, req.Title)
	if err != nil {
		return response.Domain(c, err, "Content")
	}

	author, err := resolveAuthor(c, h.userRepo, h.cfg, req.AuthorID, req.AuthorEmail)
	if err != nil {
		return response.Domain(c, err, "Content")
	}

	page := &models.Content{
		Title:    req.Title,
		Slug:     pageSlug,
		Content:  req.Content,
		Type:     contentType,
		Status:   status,
		AuthorID: &author.ID,
	}
	if status == "PUBLISHED" {
		now := time.Now()
		page.PublishedAt = &now
	}

	if err := h.contentRepo.Create(c.Context(), page); err != nil {
		return response.Domain(c, err, "Content")
	}

	return response.Created(c, "Content created successfully", page)
}

// uniqueSlug takes the client slug when given, otherwise derives one from the
// title. A colliding client slug gets a short random suffix instead of a 400.
func (h *ContentHandler) uniqueSlug(c *fiber.Ctx, given, title string) (string, error) {
	s := given
	if s == "" {
		s = slug.Make(title)
	}
	taken, err := h.contentRepo.SlugExists(c.Context(), s)
	if err != nil {
		return "", err
	}
	if taken {
		s = fmt.Sprintf("%s-%s", s, uuid.NewString()[:8])
	}
	return s, nil
}

// UpdateContentRequest represents partial update of a content page
type UpdateContentRequest struct {
	Title   *string `json:"title"`
	Slug    *string `json:"slug"`
	Content *string `json:"content"`
	Type    *string `json:"type"`
	Status  *string `json:"status"`
}

// Update partially updates a content page by id
// @Summary Update content
// @Description Update fields of an existing content page (Admin only)
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id query string true "Content ID"
// @Param body body UpdateContentRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /content [put]
func (h *ContentHandler) Update(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "Content ID is required")
	}

	var req UpdateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	page, err := h.contentRepo.GetByID(c.Context(), id)
	if err != nil {
		return response.Domain(c, err, "Content")
	}

	if req.Title != nil {
		page.Title = *req.Title
	}
	if req.Slug != nil && *req.Slug != "" && *req.Slug != page.Slug {
		taken, err := h.contentRepo.SlugExists(c.Context(), *req.Slug)
		if err != nil {
			return response.Domain(c, err, "Content")
		}
		if taken {
			return response.Domain(c, domain.Invalid("Slug already in use: %s", *req.Slug), "Content")
		}
		page.Slug = *req.Slug
	}
	if req.Content != nil {
		page.Content = *req.Content
	}
	if req.Type != nil {
		contentType, err := domain.NormalizeEnum("content type", *req.Type, domain.ContentTypes)
		if err != nil {
			return response.Domain(c, err, "Content")
		}
		page.Type = contentType
	}
	if req.Status != nil {
		status, err := domain.NormalizeEnum("content status", *req.Status, domain.ContentStatuses)
		if err != nil {
			return response.Domain(c, err, "Content")
		}
		if status == "PUBLISHED" && page.PublishedAt == nil {
			now := time.Now()
			page.PublishedAt = &now
		}
		page.Status = status
	}

	if err := h.contentRepo.Update(c.Context(), page); err != nil {
		return response.Domain(c, err, "Content")
	}

	return response.Success(c, "Content updated successfully", page)
}

// Delete removes a content page by id
// @Summary Delete content
// @Description Delete a content page permanently (Admin only)
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Param id query string true "Content ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /content [delete]
func (h *ContentHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "Content ID is required")
	}

	if err := h.contentRepo.Delete(c.Context(), id); err != nil {
		return response.Domain(c, err, "Content")
	}

	return response.Success(c, "Content deleted successfully", nil)
}
