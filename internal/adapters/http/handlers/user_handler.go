package handlers

import (
	"strings"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/repositories"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/core/domain"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/filter"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/password"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user administration endpoints
type UserHandler struct {
	userRepo *repositories.UserRepository
}

// NewUserHandler creates a new user handler
func NewUserHandler(userRepo *repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

var userFilters = filter.Spec{Fields: []filter.Field{
	{Param: "role", Op: filter.EqUpper},
	{Param: "isActive", Column: "is_active", Op: filter.EqBool},
}}

// List lists users, or fetches one when an id is given
// @Summary List users
// @Description List user accounts with optional filters, or fetch one by id (Admin only)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id query string false "User ID (single fetch)"
// @Param role query string false "User role"
// @Param isActive query bool false "Active flag"
// @Param limit query int false "Max results"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	if id := c.Query("id"); id != "" {
		user, err := h.userRepo.GetByID(c.Context(), id)
		if err != nil {
			return response.Domain(c, err, "User")
		}
		return response.Success(c, "User retrieved successfully", user)
	}

	users, total, err := h.userRepo.List(c.Context(), userFilters.Scope(c.Query), listLimit(c))
	if err != nil {
		return response.Domain(c, err, "Users")
	}
	return response.List(c, users, total)
}

// CreateUserRequest represents create user request
type CreateUserRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// Create creates a user account
// @Summary Create user
// @Description Create a user account with an explicit role (Admin only)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateUserRequest true "User data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var missing []string
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Username == "" {
		missing = append(missing, "username")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return response.Domain(c, domain.MissingFields(missing), "User")
	}

	role := "USER"
	if req.Role != "" {
		normalized, err := domain.NormalizeEnum("role", req.Role, domain.Roles)
		if err != nil {
			return response.Domain(c, err, "User")
		}
		role = normalized
	}

	if err := password.ValidatePassword(req.Password); err != nil {
		return response.BadRequest(c, err.Error())
	}

	taken, err := h.userRepo.ExistsByEmail(c.Context(), req.Email)
	if err != nil {
		return response.Domain(c, err, "User")
	}
	if taken {
		return response.Domain(c, domain.ErrEmailTaken, "User")
	}
	taken, err = h.userRepo.ExistsByUsername(c.Context(), req.Username)
	if err != nil {
		return response.Domain(c, err, "User")
	}
	if taken {
		return response.Domain(c, domain.ErrUsernameTaken, "User")
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return response.Domain(c, err, "User")
	}

	user := &models.User{
		Email:     strings.TrimSpace(req.Email),
		Username:  strings.TrimSpace(req.Username),
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
		IsActive:  true,
	}

	if err := h.userRepo.Create(c.Context(), user); err != nil {
		return response.Domain(c, err, "User")
	}

	return response.Created(c, "User created successfully", user)
}

// UpdateUserRequest represents partial update of a user account
type UpdateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Role      *string `json:"role"`
	IsActive  *bool   `json:"isActive"`
	Password  *string `json:"password"`
}

// Update partially updates a user by id
// @Summary Update user
// @Description Update fields of an existing user account (Admin only)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id query string true "User ID"
// @Param body body UpdateUserRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "User ID is required")
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.userRepo.GetByID(c.Context(), id)
	if err != nil {
		return response.Domain(c, err, "User")
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Role != nil {
		role, err := domain.NormalizeEnum("role", *req.Role, domain.Roles)
		if err != nil {
			return response.Domain(c, err, "User")
		}
		user.Role = role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil && *req.Password != "" {
		if err := password.ValidatePassword(*req.Password); err != nil {
			return response.BadRequest(c, err.Error())
		}
		hashed, err := password.Hash(*req.Password)
		if err != nil {
			return response.Domain(c, err, "User")
		}
		user.Password = hashed
	}

	if err := h.userRepo.Update(c.Context(), user); err != nil {
		return response.Domain(c, err, "User")
	}

	return response.Success(c, "User updated successfully", user)
}

// Delete removes a user account by id
// @Summary Delete user
// @Description Delete a user account permanently (Admin only)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id query string true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return response.BadRequest(c, "User ID is required")
	}

	if err := h.userRepo.Delete(c.Context(), id); err != nil {
		return response.Domain(c, err, "User")
	}

	return response.Success(c, "User deleted successfully", nil)
}
