package routes

import (
	"github.com/gofiber/fiber/v2"

	"estatedesk_backend/internal/controller"
	"estatedesk_backend/internal/middleware"
	"estatedesk_backend/internal/storage"
	"estatedesk_backend/pkg/utils/jwt"
)

// RegisterRoutes wires every endpoint onto the app. The store and token
// manager are constructed by the caller and passed down; controllers hold
// no global state.
func RegisterRoutes(app *fiber.App, store *storage.Store, tokens *jwt.Manager) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	clients := controller.NewClientController(store)
	properties := controller.NewPropertyController(store)
	meetings := controller.NewMeetingController(store)
	customFields := controller.NewCustomFieldController(store)
	analytics := controller.NewAnalyticsController(store)
	auth := controller.NewAuthController(store, tokens)

	api := app.Group("/api")

	// Auth routes. Tokens are issued here; the CRM resources below are
	// not gated.
	authGroup := api.Group("/auth")
	authGroup.Post("/register", auth.Register)
	authGroup.Post("/login", auth.Login)
	authGroup.Get("/me", middleware.AuthMiddleware(tokens), auth.Me)

	// Client routes
	api.Get("/clients", clients.List)
	api.Get("/clients/:id", clients.Get)
	api.Post("/clients", clients.Create)
	api.Put("/clients/:id", clients.Update)
	api.Delete("/clients/:id", clients.Delete)

	// Relationship-scoped reads
	api.Get("/clients/:clientId/properties", properties.ListByClient)
	api.Get("/clients/:clientId/meetings", meetings.ListByClient)

	// Property routes
	api.Get("/properties", properties.List)
	api.Get("/properties/:id", properties.Get)
	api.Post("/properties", properties.Create)
	api.Put("/properties/:id", properties.Update)
	api.Delete("/properties/:id", properties.Delete)

	// Meeting routes (list honors ?startDate&endDate)
	api.Get("/meetings", meetings.List)
	api.Get("/meetings/:id", meetings.Get)
	api.Post("/meetings", meetings.Create)
	api.Put("/meetings/:id", meetings.Update)
	api.Delete("/meetings/:id", meetings.Delete)

	// Analytics
	api.Get("/analytics", analytics.Summary)

	// Custom field routes
	api.Get("/custom-fields/:entityType", customFields.ListByEntityType)
	api.Post("/custom-fields", customFields.Create)
	api.Put("/custom-fields/:id", customFields.Update)
	api.Delete("/custom-fields/:id", customFields.Delete)
}
