package routes

import (
	"database/sql"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bohemiyan/hraccess"
	"github.com/bohemiyan/hraccess/internal/auth"
	"github.com/bohemiyan/hraccess/internal/config"
)

// Setup wires the protected routes. Every employee-scoped route sits behind
// the auth middleware and then the access middleware; handlers never make
// their own role decisions.
func Setup(app *fiber.App, svc *hraccess.Service, cfg *config.Config, pingDB *sql.DB) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		if pingDB != nil {
			if err := pingDB.PingContext(c.Context()); err != nil {
				return fiber.NewError(fiber.StatusServiceUnavailable, "database unreachable")
			}
		}
		return c.SendString("ok")
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api/v1", auth.Middleware(cfg.JWTSecret))

	emp := api.Group("/employees/:id", svc.AccessMiddleware())
	emp.Get("/history", historyHandler(svc))
	emp.Get("/files/:filename", fileHandler(cfg.StorageRoot))
	emp.Get("/image", imageHandler(cfg.StorageRoot))
}
