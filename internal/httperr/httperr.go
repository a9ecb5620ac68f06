// Package httperr maps the service error taxonomy onto HTTP responses:
// validation failures carry a field-level violation list, lookups against
// missing ids become 404, duplicate unique values become 409, anything
// unexpected becomes an opaque 500.
package httperr

import (
	"github.com/gofiber/fiber/v2"

	"estatedesk_backend/pkg/utils/validation"
)

type ErrorBody struct {
	Error  string                  `json:"error"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

func write(c *fiber.Ctx, status int, message string, fields []validation.FieldError) error {
	return c.Status(status).JSON(ErrorBody{Error: message, Fields: fields})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return write(c, fiber.StatusBadRequest, message, nil)
}

func Validation(c *fiber.Ctx, message string, fields []validation.FieldError) error {
	return write(c, fiber.StatusBadRequest, message, fields)
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return write(c, fiber.StatusUnauthorized, message, nil)
}

func NotFound(c *fiber.Ctx, message string) error {
	return write(c, fiber.StatusNotFound, message, nil)
}

func Conflict(c *fiber.Ctx, message string) error {
	return write(c, fiber.StatusConflict, message, nil)
}

func Internal(c *fiber.Ctx, message string) error {
	return write(c, fiber.StatusInternalServerError, message, nil)
}
