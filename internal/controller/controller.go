package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseID reads a numeric path parameter. A malformed value parses to 0,
// which no record ever carries, so the lookup simply finds nothing.
func parseID(c *fiber.Ctx, name string) int {
	id, err := strconv.Atoi(c.Params(name))
	if err != nil {
		return 0
	}
	return id
}
