package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"estatedesk_backend/internal/httperr"
	"estatedesk_backend/internal/model"
	"estatedesk_backend/internal/storage"
	"estatedesk_backend/pkg/utils/validation"
)

type CustomFieldController struct {
	store *storage.Store
}

func NewCustomFieldController(store *storage.Store) *CustomFieldController {
	return &CustomFieldController{store: store}
}

// ListByEntityType serves the field definitions for one entity kind. An
// unknown kind is not rejected; it simply has no definitions.
func (ctl *CustomFieldController) ListByEntityType(c *fiber.Ctx) error {
	entityType := model.EntityType(c.Params("entityType"))
	return c.JSON(ctl.store.CustomFieldsByEntityType(entityType))
}

func (ctl *CustomFieldController) Create(c *fiber.Ctx) error {
	input := new(model.InsertCustomField)
	if err := c.BodyParser(input); err != nil {
		return httperr.BadRequest(c, "Invalid request body")
	}

	if fields := validation.Struct(input); fields != nil {
		return httperr.Validation(c, "Invalid custom field data", fields)
	}

	field := ctl.store.CreateCustomField(*input)
	return c.Status(fiber.StatusCreated).JSON(field)
}

func (ctl *CustomFieldController) Update(c *fiber.Ctx) error {
	input := new(model.UpdateCustomField)
	if err := c.BodyParser(input); err != nil {
		return httperr.BadRequest(c, "Invalid request body")
	}

	if fields := validation.Struct(input); fields != nil {
		return httperr.Validation(c, "Invalid custom field data", fields)
	}

	field, ok, err := ctl.store.UpdateCustomField(parseID(c, "id"), *input)
	if !ok {
		return httperr.NotFound(c, "Custom field not found")
	}
	if errors.Is(err, storage.ErrOptionsRequired) {
		return httperr.Validation(c, "Invalid custom field data", []validation.FieldError{{
			Field:   "options",
			Rule:    "required_if",
			Message: "options is required for this field type",
		}})
	}
	return c.JSON(field)
}

func (ctl *CustomFieldController) Delete(c *fiber.Ctx) error {
	if !ctl.store.DeleteCustomField(parseID(c, "id")) {
		return httperr.NotFound(c, "Custom field not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
