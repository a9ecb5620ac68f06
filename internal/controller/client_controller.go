package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"estatedesk_backend/internal/httperr"
	"estatedesk_backend/internal/model"
	"estatedesk_backend/internal/storage"
	"estatedesk_backend/pkg/utils/validation"
)

type ClientController struct {
	store *storage.Store
}

func NewClientController(store *storage.Store) *ClientController {
	return &ClientController{store: store}
}

func (ctl *ClientController) List(c *fiber.Ctx) error {
	return c.JSON(ctl.store.Clients())
}

func (ctl *ClientController) Get(c *fiber.Ctx) error {
	client, ok := ctl.store.GetClient(parseID(c, "id"))
	if !ok {
		return httperr.NotFound(c, "Client not found")
	}
	return c.JSON(client)
}

func (ctl *ClientController) Create(c *fiber.Ctx) error {
	input := new(model.InsertClient)
	if err := c.BodyParser(input); err != nil {
		return httperr.BadRequest(c, "Invalid request body")
	}

	if fields := validation.Struct(input); fields != nil {
		return httperr.Validation(c, "Invalid client data", fields)
	}

	client, err := ctl.store.CreateClient(*input)
	if err != nil {
		if errors.Is(err, storage.ErrEmailExists) {
			return httperr.Conflict(c, "A client with this email already exists")
		}
		return httperr.Internal(c, "Could not create client")
	}

	return c.Status(fiber.StatusCreated).JSON(client)
}

func (ctl *ClientController) Update(c *fiber.Ctx) error {
	input := new(model.UpdateClient)
	if err := c.BodyParser(input); err != nil {
		return httperr.BadRequest(c, "Invalid request body")
	}

	if fields := validation.Struct(input); fields != nil {
		return httperr.Validation(c, "Invalid client data", fields)
	}

	client, ok, err := ctl.store.UpdateClient(parseID(c, "id"), *input)
	if !ok {
		return httperr.NotFound(c, "Client not found")
	}
	if err != nil {
		if errors.Is(err, storage.ErrEmailExists) {
			return httperr.Conflict(c, "A client with this email already exists")
		}
		return httperr.Internal(c, "Could not update client")
	}
	return c.JSON(client)
}

func (ctl *ClientController) Delete(c *fiber.Ctx) error {
	if !ctl.store.DeleteClient(parseID(c, "id")) {
		return httperr.NotFound(c, "Client not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
