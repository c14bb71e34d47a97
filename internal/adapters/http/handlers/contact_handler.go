package handlers

import (
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/repositories"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/core/domain"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/filter"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles contact message endpoints
type ContactHandler struct {
	contactRepo *repositories.ContactRepository
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactRepo *repositories.ContactRepository) *ContactHandler {
	return &ContactHandler{contactRepo: contactRepo}
}

var contactFilters = filter.Spec{Fields: []filter.Field{
	{Param: "category"},
	{Param: "status", Op: filter.EqUpper},
	{Param: "priority", Op: filter.EqUpper},
}}

// List lists contact messages, or fetches one when an id is given
// @Summary List contacts
// @Description List contact messages with optional filters, or fetch one by id (Admin only)
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Param id query string false "Contact ID (single fetch)"
// @Param category query string false "Message category"
// @Param status query string false "Message status"
// @Param priority query string false "Message priority"
// @Param limit query int false "Max results"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contacts [get]
func (h *ContactHandler) List(c *fiber.Ctx) error {
	if id := c.Query("id"); id != "" {
		contact, err := h.contactRepo.GetByID(c.Context(), id)
		if err != nil {
			return response.Domain(c, err, "Contact")
		}
		return response.Success(c, "Contact retrieved successfully", contact)
	}

	contacts, total, err := h.contactRepo.List(c.Context(), contactFilters.Scope(c.Query), listLimit(c))
	if err != nil {
		return response.Domain(c, err, "Contacts")
	}
	return response.List(c, contacts, total)
}

// CreateContactRequest represents a public contact form submission
type CreateContactRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Subject  string  `json:"subject"`
	Message  string  `json:"message"`
	Category string  `json:"category"`
}

// Create stores a contact form submission
// @Summary Submit contact message
// @Description Submit a message through the public contact form
// @Tags Contacts
// @Accept json
// @Produce json
// @Param body body CreateContactRequest true "Contact message"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /contacts [post]
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var req CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Subject == "" {
		missing = append(missing, "subject")
	}
	if req.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return response.Domain(c, domain.MissingFields(missing), "Contact")
	}

	category := req.Category
	if category == "" {
		category = "general"
	}

	contact := &models.Contact{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    optionalString(req.Phone),
		Subject:  req.Subject,
		Message:  req.Message,
		Category: category,
		Priority: "MEDIUM",
		Status:   "PENDING",
	}
	if sessionID, ok := c.Locals("userID").(string); ok && sessionID != "" {
		contact.UserID = &sessionID
	}

	if err := h.contactRepo.Create(c.Context(), contact); err != nil {
		return response.Domain(c, err, "Contact")
	}

	return response.Created(c, "Contact message submitted successfully", contact)
}

// UpdateContactRequest represents partial update of a contact message
type UpdateContactRequest struct {
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
	Category *string `json:"category"`
}

// Update partially updates a contact message by id
// @Summary Update contact
// @Description Update status, priority or category of a contact message (Admin only)
// @Tags Contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id query string true "Contact ID"
// @Param body body UpdateContactRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contacts [put]
func (h *ContactHandler) Update(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "Contact ID is required")
	}

	var req UpdateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	contact, err := h.contactRepo.GetByID(c.Context(), id)
	if err != nil {
		return response.Domain(c, err, "Contact")
	}

	if req.Status != nil {
		status, err := domain.NormalizeEnum("contact status", *req.Status, domain.ContactStatuses)
		if err != nil {
			return response.Domain(c, err, "Contact")
		}
		contact.Status = status
	}
	if req.Priority != nil {
		priority, err := domain.NormalizeEnum("contact priority", *req.Priority, domain.Priorities)
		if err != nil {
			return response.Domain(c, err, "Contact")
		}
		contact.Priority = priority
	}
	if req.Category != nil && *req.Category != "" {
		contact.Category = *req.Category
	}

	if err := h.contactRepo.Update(c.Context(), contact); err != nil {
		return response.Domain(c, err, "Contact")
	}

	return response.Success(c, "Contact updated successfully", contact)
}

// Delete removes a contact message by id
// @Summary Delete contact
// @Description Delete a contact message permanently (Admin only)
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Param id query string true "Contact ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contacts [delete]
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "Contact ID is required")
	}

	if err := h.contactRepo.Delete(c.Context(), id); err != nil {
		return response.Domain(c, err, "Contact")
	}

	return response.Success(c, "Contact deleted successfully", nil)
}
