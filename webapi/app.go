// Package webapi exposes the ledger over HTTP. It is a thin pass-through:
// handlers parse and validate the payload, call into the services, and
// serialize whatever comes back.
package webapi

import (
	"github.com/amirasaad/bankledger/infra/initializer"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// New builds the fiber application with all routes and middleware.
func New(deps *initializer.Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "bankledger",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(recover.New())
	app.Use(limiter.New(limiter.Config{
		Max:        deps.Config.RateLimit.MaxRequests,
		Expiration: deps.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("bankledger is up")
	})

	UserRoutes(app, deps.UserService)
	AccountRoutes(app, deps.AccountService)

	return app
}
