package handlers

import (
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/repositories"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/core/domain"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/filter"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PositionHandler handles committee position endpoints
type PositionHandler struct {
	positionRepo *repositories.PositionRepository
}

// NewPositionHandler creates a new position handler
func NewPositionHandler(positionRepo *repositories.PositionRepository) *PositionHandler {
	return &PositionHandler{positionRepo: positionRepo}
}

var positionFilters = filter.Spec{Fields: []filter.Field{
	{Param: "type", Op: filter.EqUpper},
	{Param: "isActive", Column: "is_active", Op: filter.EqBool, Default: "true"},
}}

// List lists positions, or fetches one when an id is given
// @Summary List positions
// @Description List committee positions, or fetch one by id
// @Tags Positions
// @Produce json
// @Param id query string false "Position ID (single fetch)"
// @Param type query string false "Position type"
// @Param isActive query bool false "Active flag (default true)"
// @Param limit query int false "Max results"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /positions [get]
func (h *PositionHandler) List(c *fiber.Ctx) error {
	if id := c.Query("id"); id != "" {
		position, err := h.positionRepo.GetByID(c.Context(), id)
		if err != nil {
			return response.Domain(c, err, "Position")
		}
		return response.Success(c, "Position retrieved successfully", position)
	}

	positions, total, err := h.positionRepo.List(c.Context(), positionFilters.Scope(c.Query), listLimit(c))
	if err != nil {
		return response.Domain(c, err, "Positions")
	}
	return response.List(c, positions, total)
}

// CreatePositionRequest represents create position request
type CreatePositionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Level       int    `json:"level"`
}

// Create creates a new position
// @Summary Create position
// @Description Create a new committee position (Admin only)
// @Tags Positions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreatePositionRequest true "Position data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /positions [post]
func (h *PositionHandler) Create(c *fiber.Ctx) error {
	var req CreatePositionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var missing []string
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.Type == "" {
		missing = append(missing, "type")
	}
	if len(missing) > 0 {
		return response.Domain(c, domain.MissingFields(missing), "Position")
	}

	positionType, err := domain.NormalizeEnum("position type", req.Type, domain.PositionTypes)
	if err != nil {
		return response.Domain(c, err, "Position")
	}

	taken, err := h.positionRepo.ExistsByTitle(c.Context(), req.Title)
	if err != nil {
		return response.Domain(c, err, "Position")
	}
	if taken {
		return response.Domain(c, domain.Invalid("Position title already exists: %s", req.Title), "Position")
	}

	position := &models.Position{
		Title:       req.Title,
		Description: req.Description,
		Type:        positionType,
		Level:       req.Level,
		IsActive:    true,
	}

	if err := h.positionRepo.Create(c.Context(), position); err != nil {
		return response.Domain(c, err, "Position")
	}

	return response.Created(c, "Position created successfully", position)
}

// UpdatePositionRequest represents partial update of a position
type UpdatePositionRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Level       *int    `json:"level"`
	IsActive    *bool   `json:"isActive"`
}

// Update partially updates a position by id
// @Summary Update position
// @Description Update fields of an existing position (Admin only)
// @Tags Positions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id query string true "Position ID"
// @Param body body UpdatePositionRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /positions [put]
func (h *PositionHandler) Update(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "Position ID is required")
	}

	var req UpdatePositionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	position, err := h.positionRepo.GetByID(c.Context(), id)
	if err != nil {
		return response.Domain(c, err, "Position")
	}

	if req.Title != nil {
		position.Title = *req.Title
	}
	if req.Description != nil {
		position.Description = *req.Description
	}
	if req.Type != nil {
		positionType, err := domain.NormalizeEnum("position type", *req.Type, domain.PositionTypes)
		if err != nil {
			return response.Domain(c, err, "Position")
		}
		position.Type = positionType
	}
	if req.Level != nil {
		position.Level = *req.Level
	}
	if req.IsActive != nil {
		position.IsActive = *req.IsActive
	}

	if err := h.positionRepo.Update(c.Context(), position); err != nil {
		return response.Domain(c, err, "Position")
	}

	return response.Success(c, "Position updated successfully", position)
}

// Delete removes a position by id
// @Summary Delete position
// @Description Delete a position permanently (Admin only)
// @Tags Positions
// @Produce json
// @Security BearerAuth
// @Param id query string true "Position ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /positions [delete]
func (h *PositionHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "Position ID is required")
	}

	if err := h.positionRepo.Delete(c.Context(), id); err != nil {
		return response.Domain(c, err, "Position")
	}

	return response.Success(c, "Position deleted successfully", nil)
}
