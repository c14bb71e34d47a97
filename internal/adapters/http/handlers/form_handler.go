package handlers

import (
	"encoding/json"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/repositories"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/core/domain"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/filter"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// FormHandler handles form definition and submission endpoints
type FormHandler struct {
	formRepo *repositories.FormRepository
}

// NewFormHandler creates a new form handler
func NewFormHandler(formRepo *repositories.FormRepository) *FormHandler {
	return &FormHandler{formRepo: formRepo}
}

var formFilters = filter.Spec{Fields: []filter.Field{
	{Param: "type", Op: filter.EqUpper},
	{Param: "status", Op: filter.EqUpper, Default: "ACTIVE"},
}}

// List lists forms, or fetches one with its submissions when an id is given
// @Summary List forms
// @Description List forms with optional filters, or fetch one by id
// @Tags Forms
// @Produce json
// @Param id query string false "Form ID (single fetch)"
// @Param type query string false "Form type"
// @Param status query string false "Form status (default ACTIVE)"
// @Param limit query int false "Max results"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /forms [get]
func (h *FormHandler) List(c *fiber.Ctx) error {
	if id := c.Query("id"); id != "" {
		form, err := h.formRepo.GetByID(c.Context(), id)
		if err != nil {
			return response.Domain(c, err, "Form")
		}
		return response.Success(c, "Form retrieved successfully", form)
	}

	forms, total, err := h.formRepo.List(c.Context(), formFilters.Scope(c.Query), listLimit(c))
	if err != nil {
		return response.Domain(c, err, "Forms")
	}
	return response.List(c, forms, total)
}

// CreateFormRequest represents create form request
type CreateFormRequest struct {
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Type        string          `json:"type"`
	Fields      json.RawMessage `json:"fields"`
	Settings    json.RawMessage `json:"settings"`
}

// Create creates a form definition
// @Summary Create form
// @Description Create a registration or survey form (Admin only)
// @Tags Forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateFormRequest true "Form data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /forms [post]
func (h *FormHandler) Create(c *fiber.Ctx) error {
	var req CreateFormRequest
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
		return response.Domain(c, domain.MissingFields(missing), "Form")
	}

	form := &models.Form{
		Title:       req.Title,
		Description: optionalString(req.Description),
		Type:        req.Type,
		Status:      "ACTIVE",
	}
	if len(req.Fields) > 0 {
		form.Fields = datatypes.JSON(req.Fields)
	}
	if len(req.Settings) > 0 {
		form.Settings = datatypes.JSON(req.Settings)
	}

	if err := h.formRepo.Create(c.Context(), form); err != nil {
		return response.Domain(c, err, "Form")
	}

	return response.Created(c, "Form created successfully", form)
}

// UpdateFormRequest represents partial update of a form
type UpdateFormRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Type        *string         `json:"type"`
	Fields      json.RawMessage `json:"fields"`
	Settings    json.RawMessage `json:"settings"`
	Status      *string         `json:"status"`
}

// Update partially updates a form by id
// @Summary Update form
// @Description Update fields of an existing form (Admin only)
// @Tags Forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id query string true "Form ID"
// @Param body body UpdateFormRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /forms [put]
func (h *FormHandler) Update(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "Form ID is required")
	}

	var req UpdateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	form, err := h.formRepo.GetByID(c.Context(), id)
	if err != nil {
		return response.Domain(c, err, "Form")
	}

	if req.Title != nil {
		form.Title = *req.Title
	}
	if req.Description != nil {
		form.Description = optionalString(req.Description)
	}
	if req.Type != nil && *req.Type != "" {
		form.Type = *req.Type
	}
	if len(req.Fields) > 0 {
		form.Fields = datatypes.JSON(req.Fields)
	}
	if len(req.Settings) > 0 {
		form.Settings = datatypes.JSON(req.Settings)
	}
	if req.Status != nil {
		status, err := domain.NormalizeEnum("form status", *req.Status, domain.FormStatuses)
		if err != nil {
			return response.Domain(c, err, "Form")
		}
		form.Status = status
	}

	if err := h.formRepo.Update(c.Context(), form); err != nil {
		return response.Domain(c, err, "Form")
	}

	return response.Success(c, "Form updated successfully", form)
}

// Delete removes a form by id
// @Summary Delete form
// @Description Delete a form permanently (Admin only)
// @Tags Forms
// @Produce json
// @Security BearerAuth
// @Param id query string true "Form ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /forms [delete]
func (h *FormHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "Form ID is required")
	}

	if err := h.formRepo.Delete(c.Context(), id); err != nil {
		return response.Domain(c, err, "Form")
	}

	return response.Success(c, "Form deleted successfully", nil)
}

// SubmitRequest represents one response to a form
type SubmitRequest struct {
	Data json.RawMessage `json:"data"`
}

// Submit records a response to an active form
// @Summary Submit form response
// @Description Record a response to an active form
// @Tags Forms
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param body body SubmitRequest true "Submission data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /forms/{id}/submissions [post]
func (h *FormHandler) Submit(c *fiber.Ctx) error {
	formID := c.Params("id")

	form, err := h.formRepo.GetByID(c.Context(), formID)
	if err != nil {
		return response.Domain(c, err, "Form")
	}
	if form.Status != "ACTIVE" {
		return response.Domain(c, domain.Invalid("Form is not accepting submissions"), "Form")
	}

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if len(req.Data) == 0 {
		return response.Domain(c, domain.MissingFields([]string{"data"}), "Form submission")
	}

	submission := &models.FormSubmission{
		FormID: form.ID,
		Data:   datatypes.JSON(req.Data),
	}
	if sessionID, ok := c.Locals("userID").(string); ok && sessionID != "" {
		submission.SubmittedBy = &sessionID
	}

	if err := h.formRepo.AddSubmission(c.Context(), submission); err != nil {
		return response.Domain(c, err, "Form submission")
	}

	return response.Created(c, "Form submitted successfully", submission)
}

// Submissions lists a form's responses
// @Summary List form submissions
// @Description List responses to a form (Admin only)
// @Tags Forms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Form ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /forms/{id}/submissions [get]
func (h *FormHandler) Submissions(c *fiber.Ctx) error {
	formID := c.Params("id")

	ok, err := h.formRepo.Exists(c.Context(), formID)
	if err != nil {
		return response.Domain(c, err, "Form")
	}
	if !ok {
		return response.NotFound(c, "Form not found")
	}

	submissions, total, err := h.formRepo.ListSubmissions(c.Context(), formID)
	if err != nil {
		return response.Domain(c, err, "Form submissions")
	}
	return response.List(c, submissions, total)
}
