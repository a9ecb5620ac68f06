package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"estatedesk_backend/internal/httperr"
	"estatedesk_backend/internal/model"
	"estatedesk_backend/internal/storage"
	"estatedesk_backend/pkg/utils/validation"
)

type MeetingController struct {
	store *storage.Store
}

func NewMeetingController(store *storage.Store) *MeetingController {
	return &MeetingController{store: store}
}

// List returns all meetings soonest-first, or only those inside the
// inclusive [startDate, endDate] window when both query params are set.
func (ctl *MeetingController) List(c *fiber.Ctx) error {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	if startDate != "" && endDate != "" {
		start, err := time.Parse(time.RFC3339, startDate)
		if err != nil {
			return httperr.BadRequest(c, "startDate must be an ISO-8601 timestamp")
		}
		end, err := time.Parse(time.RFC3339, endDate)
		if err != nil {
			return httperr.BadRequest(c, "endDate must be an ISO-8601 timestamp")
		}
		return c.JSON(ctl.store.MeetingsByDateRange(start, end))
	}

	return c.JSON(ctl.store.Meetings())
}

func (ctl *MeetingController) Get(c *fiber.Ctx) error {
	meeting, ok := ctl.store.GetMeeting(parseID(c, "id"))
	if !ok {
		return httperr.NotFound(c, "Meeting not found")
	}
	return c.JSON(meeting)
}

func (ctl *MeetingController) ListByClient(c *fiber.Ctx) error {
	return c.JSON(ctl.store.MeetingsByClient(parseID(c, "clientId")))
}

func (ctl *MeetingController) Create(c *fiber.Ctx) error {
	input := new(model.InsertMeeting)
	if err := c.BodyParser(input); err != nil {
		return httperr.BadRequest(c, "Invalid request body")
	}

	if fields := validation.Struct(input); fields != nil {
		return httperr.Validation(c, "Invalid meeting data", fields)
	}

	meeting := ctl.store.CreateMeeting(*input)
	return c.Status(fiber.StatusCreated).JSON(meeting)
}

func (ctl *MeetingController) Update(c *fiber.Ctx) error {
	input := new(model.UpdateMeeting)
	if err := c.BodyParser(input); err != nil {
		return httperr.BadRequest(c, "Invalid request body")
	}

	if fields := validation.Struct(input); fields != nil {
		return httperr.Validation(c, "Invalid meeting data", fields)
	}

	meeting, ok := ctl.store.UpdateMeeting(parseID(c, "id"), *input)
	if !ok {
		return httperr.NotFound(c, "Meeting not found")
	}
	return c.JSON(meeting)
}

func (ctl *MeetingController) Delete(c *fiber.Ctx) error {
	if !ctl.store.DeleteMeeting(parseID(c, "id")) {
		return httperr.NotFound(c, "Meeting not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
