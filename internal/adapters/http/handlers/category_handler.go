package handlers

import (
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/repositories"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles category endpoints. Categories are seeded master
// data, so only reads are exposed.
type CategoryHandler struct {
	categoryRepo *repositories.CategoryRepository
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryRepo *repositories.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo}
}

// List lists active categories, or fetches one when an id or slug is given
// @Summary List categories
// @Description List active categories, or fetch one by id or slug
// @Tags Categories
// @Produce json
// @Param id query string false "Category ID (single fetch)"
// @Param slug query string false "Category slug (single fetch)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	if id := c.Query("id"); id != "" {
		category, err := h.categoryRepo.GetByID(c.Context(), id)
		if err != nil {
			return response.Domain(c, err, "Category")
		}
		return response.Success(c, "Category retrieved successfully", category)
	}
	if s := c.Query("slug"); s != "" {
		category, err := h.categoryRepo.GetBySlug(c.Context(), s)
		if err != nil {
			return response.Domain(c, err, "Category")
		}
		return response.Success(c, "Category retrieved successfully", category)
	}

	categories, total, err := h.categoryRepo.List(c.Context())
	if err != nil {
		return response.Domain(c, err, "Categories")
	}
	return response.List(c, categories, total)
}
