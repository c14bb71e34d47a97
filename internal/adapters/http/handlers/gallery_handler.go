package handlers

import (
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/repositories"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/core/domain"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/filter"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// GalleryHandler handles photo album endpoints
type GalleryHandler struct {
	galleryRepo  *repositories.GalleryRepository
	categoryRepo *repositories.CategoryRepository
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(galleryRepo *repositories.GalleryRepository, categoryRepo *repositories.CategoryRepository) *GalleryHandler {
	return &GalleryHandler{
		galleryRepo:  galleryRepo,
		categoryRepo: categoryRepo,
	}
}

var galleryFilters = filter.Spec{Fields: []filter.Field{
	{Param: "category", Column: "category_id"},
}}

// List lists albums, or fetches one when an id is given.
// Single fetches count as a view.
// @Summary List galleries
// @Description List photo albums, or fetch one by id
// @Tags Galleries
// @Produce json
// @Param id query string false "Album ID (single fetch)"
// @Param category query string false "Category ID"
// @Param limit query int false "Max results"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /gallery [get]
func (h *GalleryHandler) List(c *fiber.Ctx) error {
	if id := c.Query("id"); id != "" {
		gallery, err := h.galleryRepo.GetByID(c.Context(), id)
		if err != nil {
			return response.Domain(c, err, "Gallery")
		}
		if err := h.galleryRepo.IncrementViewCount(c.Context(), gallery.ID); err == nil {
			gallery.ViewCount++
		}
		return response.Success(c, "Gallery retrieved successfully", gallery)
	}

	galleries, total, err := h.galleryRepo.List(c.Context(), galleryFilters.Scope(c.Query), listLimit(c))
	if err != nil {
		return response.Domain(c, err, "Galleries")
	}
	return response.List(c, galleries, total)
}

// CreateGalleryRequest represents create gallery request
type CreateGalleryRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	CategoryID  *string  `json:"categoryId"`
	Images      []string `json:"images"`
	Date        *string  `json:"date"`
}

// Create creates a photo album
// @Summary Create gallery
// @Description Create a photo album (Admin only)
// @Tags Galleries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateGalleryRequest true "Album data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /gallery [post]
func (h *GalleryHandler) Create(c *fiber.Ctx) error {
	var req CreateGalleryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Title == "" {
		return response.Domain(c, domain.MissingFields([]string{"title"}), "Gallery")
	}

	if req.CategoryID != nil && *req.CategoryID != "" {
		ok, err := h.categoryRepo.Exists(c.Context(), *req.CategoryID)
		if err != nil {
			return response.Domain(c, err, "Gallery")
		}
		if !ok {
			return response.Domain(c, domain.BadReference("category"), "Gallery")
		}
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return response.Domain(c, err, "Gallery")
	}

	gallery := &models.Gallery{
		Title:       req.Title,
		Description: optionalString(req.Description),
		CategoryID:  optionalString(req.CategoryID),
		Date:        date,
	}
	if len(req.Images) > 0 {
		gallery.Images = toJSON(req.Images)
	}

	if err := h.galleryRepo.Create(c.Context(), gallery); err != nil {
		return response.Domain(c, err, "Gallery")
	}

	return response.Created(c, "Gallery created successfully", gallery)
}

// UpdateGalleryRequest represents partial update of an album
type UpdateGalleryRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	CategoryID  *string   `json:"categoryId"`
	Images      *[]string `json:"images"`
	Date        *string   `json:"date"`
}

// Update partially updates an album by id
// @Summary Update gallery
// @Description Update fields of an existing album (Admin only)
// @Tags Galleries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id query string true "Album ID"
// @Param body body UpdateGalleryRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /gallery [put]
func (h *GalleryHandler) Update(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "Gallery ID is required")
	}

	var req UpdateGalleryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	gallery, err := h.galleryRepo.GetByID(c.Context(), id)
	if err != nil {
		return response.Domain(c, err, "Gallery")
	}

	if req.Title != nil {
		gallery.Title = *req.Title
	}
	if req.Description != nil {
		gallery.Description = optionalString(req.Description)
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			gallery.CategoryID = nil
		} else {
			ok, err := h.categoryRepo.Exists(c.Context(), *req.CategoryID)
			if err != nil {
				return response.Domain(c, err, "Gallery")
			}
			if !ok {
				return response.Domain(c, domain.BadReference("category"), "Gallery")
			}
			gallery.CategoryID = req.CategoryID
		}
	}
	if req.Images != nil {
		gallery.Images = toJSON(*req.Images)
	}
	if req.Date != nil {
		date, err := parseOptionalDate(req.Date)
		if err != nil {
			return response.Domain(c, err, "Gallery")
		}
		gallery.Date = date
	}

	if err := h.galleryRepo.Update(c.Context(), gallery); err != nil {
		return response.Domain(c, err, "Gallery")
	}

	return response.Success(c, "Gallery updated successfully", gallery)
}

// Delete removes an album by id
// @Summary Delete gallery
// @Description Delete an album permanently (Admin only)
// @Tags Galleries
// @Produce json
// @Security BearerAuth
// @Param id query string true "Album ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /gallery [delete]
func (h *GalleryHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "Gallery ID is required")
	}

	if err := h.galleryRepo.Delete(c.Context(), id); err != nil {
		return response.Domain(c, err, "Gallery")
	}

	return response.Success(c, "Gallery deleted successfully", nil)
}
