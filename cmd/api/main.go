package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"estatedesk_backend/internal/routes"
	"estatedesk_backend/internal/storage"
	"estatedesk_backend/pkg/config"
	"estatedesk_backend/pkg/seed"
	"estatedesk_backend/pkg/utils/jwt"
)

func newApp(store *storage.Store, tokens *jwt.Manager) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(logger.New())
	app.Use(cors.New())

	routes.RegisterRoutes(app, store, tokens)
	return app
}

func serveCmd() *cobra.Command {
	var seedDemo bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the CRM API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			store := storage.New()
			tokens := jwt.NewManager(cfg.JWT.Secret)

			if seedDemo {
				seed.LoadDemoData(store)
			}

			app := newApp(store, tokens)

			log.Printf("Server is running on port %s", cfg.Server.Port)
			return app.Listen(cfg.Addr())
		},
	}

	cmd.Flags().BoolVar(&seedDemo, "seed", false, "preload the demo dataset")
	return cmd
}

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "estatedesk",
		Short: "Real-estate CRM backend",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
