package response

import (
	"errors"
	"log"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/core/domain"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Total   *int64      `json:"total,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success sends a success response
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List sends a success response for list endpoints with a total count
func List(c *fiber.Ctx, data interface{}, total int64) error {
	return c.JSON(Response{
		Success: true,
		Data:    data,
		Total:   &total,
	})
}

// Created sends a 201 created response
func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends an error response
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Success: false,
		Error:   message,
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403 forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// Conflict sends a 409 conflict response
func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// Domain translates a domain/store error into the envelope exactly once at the
// HTTP boundary. Every "no such id" condition maps to 404, validation and
// foreign-key problems to 400, anything unexpected to a generic 500 with the
// underlying error kept server-side.
func Domain(c *fiber.Ctx, err error, resource string) error {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, domain.ErrNotFound):
		return NotFound(c, resource+" not found")
	case errors.As(err, &verr):
		return BadRequest(c, verr.Error())
	case errors.Is(err, domain.ErrInvalidReference):
		return BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrDuplicateEntry),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrStudentIDTaken),
		errors.Is(err, domain.ErrNoAuthorAvailable):
		return BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return Forbidden(c, "You don't have permission to access this resource")
	case errors.Is(err, domain.ErrUnauthorized):
		return Unauthorized(c, "Unauthorized")
	default:
		log.Printf("❌ %s handler error: %v", resource, err)
		return InternalServerError(c, "Internal server error")
	}
}
