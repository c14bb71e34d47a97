package handlers

import (
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/repositories"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/core/domain"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/filter"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StaffHandler handles staff endpoints
type StaffHandler struct {
	staffRepo *repositories.StaffRepository
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staffRepo *repositories.StaffRepository) *StaffHandler {
	return &StaffHandler{staffRepo: staffRepo}
}

var staffFilters = filter.Spec{Fields: []filter.Field{
	{Param: "department", Op: filter.EqFold},
	{Param: "position", Op: filter.EqFold},
	{Param: "isActive", Column: "is_active", Op: filter.EqBool},
}}

// List lists staff, or fetches one when an id is given
// @Summary List staff
// @Description List staff with optional filters, or fetch one by id
// @Tags Staff
// @Produce json
// @Param id query string false "Staff ID (single fetch)"
// @Param department query string false "Department (case-insensitive)"
// @Param position query string false "Position (case-insensitive)"
// @Param isActive query bool false "Active flag"
// @Param limit query int false "Max results"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /staff [get]
func (h *StaffHandler) List(c *fiber.Ctx) error {
	if id := c.Query("id"); id != "" {
		staff, err := h.staffRepo.GetByID(c.Context(), id)
		if err != nil {
			return response.Domain(c, err, "Staff")
		}
		return response.Success(c, "Staff retrieved successfully", staff)
	}

	staff, total, err := h.staffRepo.List(c.Context(), staffFilters.Scope(c.Query), listLimit(c))
	if err != nil {
		return response.Domain(c, err, "Staff")
	}
	return response.List(c, staff, total)
}

// CreateStaffRequest represents create staff request
type CreateStaffRequest struct {
	UserID     *string  `json:"userId"`
	EmployeeID string   `json:"employeeId"`
	Name       string   `json:"name"`
	Department string   `json:"department"`
	Position   string   `json:"position"`
	Phone      *string  `json:"phone"`
	Office     *string  `json:"office"`
	Bio        *string  `json:"bio"`
	Expertise  []string `json:"expertise"`
	Avatar     *string  `json:"avatar"`
}

// Create creates a new staff record
// @Summary Create staff
// @Description Create a new staff record (Admin only)
// @Tags Staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateStaffRequest true "Staff data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /staff [post]
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var missing []string
	if req.EmployeeID == "" {
		missing = append(missing, "employeeId")
	}
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Department == "" {
		missing = append(missing, "department")
	}
	if req.Position == "" {
		missing = append(missing, "position")
	}
	if len(missing) > 0 {
		return response.Domain(c, domain.MissingFields(missing), "Staff")
	}

	taken, err := h.staffRepo.ExistsByEmployeeID(c.Context(), req.EmployeeID)
	if err != nil {
		return response.Domain(c, err, "Staff")
	}
	if taken {
		return response.Domain(c, domain.Invalid("Employee ID already registered: %s", req.EmployeeID), "Staff")
	}

	staff := &models.Staff{
		UserID:     optionalString(req.UserID),
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Department: req.Department,
		Position:   req.Position,
		Phone:      optionalString(req.Phone),
		Office:     optionalString(req.Office),
		Bio:        optionalString(req.Bio),
		Avatar:     optionalString(req.Avatar),
		IsActive:   true,
	}
	if len(req.Expertise) > 0 {
		staff.Expertise = toJSON(req.Expertise)
	}

	if err := h.staffRepo.Create(c.Context(), staff); err != nil {
		return response.Domain(c, err, "Staff")
	}

	return response.Created(c, "Staff created successfully", staff)
}

// UpdateStaffRequest represents partial update of a staff record
type UpdateStaffRequest struct {
	Name       *string   `json:"name"`
	Department *string   `json:"department"`
	Position   *string   `json:"position"`
	Phone      *string   `json:"phone"`
	Office     *string   `json:"office"`
	Bio        *string   `json:"bio"`
	Expertise  *[]string `json:"expertise"`
	Avatar     *string   `json:"avatar"`
	IsActive   *bool     `json:"isActive"`
}

// Update partially updates a staff record by id
// @Summary Update staff
// @Description Update fields of an existing staff record (Admin only)
// @Tags Staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id query string true "Staff ID"
// @Param body body UpdateStaffRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /staff [put]
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "Staff ID is required")
	}

	var req UpdateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	staff, err := h.staffRepo.GetByID(c.Context(), id)
	if err != nil {
		return response.Domain(c, err, "Staff")
	}

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Department != nil {
		staff.Department = *req.Department
	}
	if req.Position != nil {
		staff.Position = *req.Position
	}
	if req.Phone != nil {
		staff.Phone = optionalString(req.Phone)
	}
	if req.Office != nil {
		staff.Office = optionalString(req.Office)
	}
	if req.Bio != nil {
		staff.Bio = optionalString(req.Bio)
	}
	if req.Expertise != nil {
		staff.Expertise = toJSON(*req.Expertise)
	}
	if req.Avatar != nil {
		staff.Avatar = optionalString(req.Avatar)
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}

	if err := h.staffRepo.Update(c.Context(), staff); err != nil {
		return response.Domain(c, err, "Staff")
	}

	return response.Success(c, "Staff updated successfully", staff)
}

// Delete removes a staff record by id
// @Summary Delete staff
// @Description Delete a staff record permanently (Admin only)
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Param id query string true "Staff ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /staff [delete]
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "Staff ID is required")
	}

	if err := h.staffRepo.Delete(c.Context(), id); err != nil {
		return response.Domain(c, err, "Staff")
	}

	return response.Success(c, "Staff deleted successfully", nil)
}
