package controller

import (
	"github.com/gofiber/fiber/v2"

	"estatedesk_backend/internal/httperr"
	"estatedesk_backend/internal/model"
	"estatedesk_backend/internal/storage"
	"estatedesk_backend/pkg/utils/validation"
)

type PropertyController struct {
	store *storage.Store
}

func NewPropertyController(store *storage.Store) *PropertyController {
	return &PropertyController{store: store}
}

func (ctl *PropertyController) List(c *fiber.Ctx) error {
	return c.JSON(ctl.store.Properties())
}

func (ctl *PropertyController) Get(c *fiber.Ctx) error {
	property, ok := ctl.store.GetProperty(parseID(c, "id"))
	if !ok {
		return httperr.NotFound(c, "Property not found")
	}
	return c.JSON(property)
}

// ListByClient serves the properties linked to one client. A deleted or
// unknown client id is not an error: the list is just empty.
func (ctl *PropertyController) ListByClient(c *fiber.Ctx) error {
	return c.JSON(ctl.store.PropertiesByClient(parseID(c, "clientId")))
}

func (ctl *PropertyController) Create(c *fiber.Ctx) error {
	input := new(model.InsertProperty)
	if err := c.BodyParser(input); err != nil {
		return httperr.BadRequest(c, "Invalid request body")
	}

	if fields := validation.Struct(input); fields != nil {
		return httperr.Validation(c, "Invalid property data", fields)
	}

	property := ctl.store.CreateProperty(*input)
	return c.Status(fiber.StatusCreated).JSON(property)
}

func (ctl *PropertyController) Update(c *fiber.Ctx) error {
	input := new(model.UpdateProperty)
	if err := c.BodyParser(input); err != nil {
		return httperr.BadRequest(c, "Invalid request body")
	}

	if fields := validation.Struct(input); fields != nil {
		return httperr.Validation(c, "Invalid property data", fields)
	}

	property, ok := ctl.store.UpdateProperty(parseID(c, "id"), *input)
	if !ok {
		return httperr.NotFound(c, "Property not found")
	}
	return c.JSON(property)
}

func (ctl *PropertyController) Delete(c *fiber.Ctx) error {
	if !ctl.store.DeleteProperty(parseID(c, "id")) {
		return httperr.NotFound(c, "Property not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
