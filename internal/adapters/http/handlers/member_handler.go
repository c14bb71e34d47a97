package handlers

import (
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/repositories"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/core/services"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/filter"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MemberHandler handles member profile endpoints
type MemberHandler struct {
	memberRepo    *repositories.MemberRepository
	memberService *services.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberRepo *repositories.MemberRepository, memberService *services.MemberService) *MemberHandler {
	return &MemberHandler{
		memberRepo:    memberRepo,
		memberService: memberService,
	}
}

var memberFilters = filter.Spec{Fields: []filter.Field{
	{Param: "year", Op: filter.EqInt},
	{Param: "department", Op: filter.EqFold},
	{Param: "faculty", Op: filter.EqFold},
	{Param: "isActive", Column: "is_active", Op: filter.EqBool},
}}

// List lists members, or fetches one when an id is given
// @Summary List members
// @Description List club members with optional filters, or fetch one by id
// @Tags Members
// @Produce json
// @Param id query string false "Member ID (single fetch)"
// @Param year query int false "Study year"
// @Param department query string false "Department (case-insensitive)"
// @Param faculty query string false "Faculty (case-insensitive)"
// @Param isActive query bool false "Active flag"
// @Param limit query int false "Max results"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members [get]
func (h *MemberHandler) List(c *fiber.Ctx) error {
	if id := c.Query("id"); id != "" {
		member, err := h.memberRepo.GetByID(c.Context(), id)
		if err != nil {
			return response.Domain(c, err, "Member")
		}
		return response.Success(c, "Member retrieved successfully", member)
	}

	members, total, err := h.memberRepo.List(c.Context(), memberFilters.Scope(c.Query), listLimit(c))
	if err != nil {
		return response.Domain(c, err, "Members")
	}
	return response.List(c, members, total)
}

// Create enrolls a new member
// @Summary Enroll member
// @Description Create a member profile, creating the user account too when no userId is given (Admin only)
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.EnrollInput true "Enrollment data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /members [post]
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var input services.EnrollInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	member, err := h.memberService.Enroll(c.Context(), &input)
	if err != nil {
		return response.Domain(c, err, "Member")
	}

	return response.Created(c, "Member enrolled successfully", member)
}

// UpdateMemberRequest represents partial update of a member profile
type UpdateMemberRequest struct {
	Name       *string   `json:"name"`
	Email      *string   `json:"email"`
	Department *string   `json:"department"`
	Faculty    *string   `json:"faculty"`
	Year       *int      `json:"year"`
	Phone      *string   `json:"phone"`
	Position   *string   `json:"position"`
	Division   *string   `json:"division"`
	Avatar     *string   `json:"avatar"`
	Bio        *string   `json:"bio"`
	Skills     *[]string `json:"skills"`
	Interests  *[]string `json:"interests"`
	IsActive   *bool     `json:"isActive"`
}

// Update partially updates a member profile by id
// @Summary Update member
// @Description Update fields of an existing member profile (Admin only)
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id query string true "Member ID"
// @Param body body UpdateMemberRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members [put]
func (h *MemberHandler) Update(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "Member ID is required")
	}

	var req UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	member, err := h.memberRepo.GetByID(c.Context(), id)
	if err != nil {
		return response.Domain(c, err, "Member")
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Email != nil {
		member.Email = optionalString(req.Email)
	}
	if req.Department != nil {
		member.Department = *req.Department
	}
	if req.Faculty != nil {
		member.Faculty = *req.Faculty
	}
	if req.Year != nil {
		member.Year = *req.Year
	}
	if req.Phone != nil {
		member.Phone = optionalString(req.Phone)
	}
	if req.Position != nil {
		member.Position = optionalString(req.Position)
	}
	if req.Division != nil {
		member.Division = optionalString(req.Division)
	}
	if req.Avatar != nil {
		member.Avatar = optionalString(req.Avatar)
	}
	if req.Bio != nil {
		member.Bio = optionalString(req.Bio)
	}
	if req.Skills != nil {
		member.Skills = toJSON(*req.Skills)
	}
	if req.Interests != nil {
		member.Interests = toJSON(*req.Interests)
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := h.memberRepo.Update(c.Context(), member); err != nil {
		return response.Domain(c, err, "Member")
	}

	return response.Success(c, "Member updated successfully", member)
}

// Delete removes a member profile by id
// @Summary Delete member
// @Description Delete a member profile permanently (Admin only)
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Param id query string true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members [delete]
func (h *MemberHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "Member ID is required")
	}

	if err := h.memberRepo.Delete(c.Context(), id); err != nil {
		return response.Domain(c, err, "Member")
	}

	return response.Success(c, "Member deleted successfully", nil)
}
