package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"foodcart/internal/api"
	"foodcart/internal/config"
	"foodcart/internal/http/handlers"
	applog "foodcart/internal/log"
	"foodcart/internal/store"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var zl *zap.Logger
	if cfg.Prod {
		zl, err = zap.NewProduction()
	} else {
		zl, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()
	applog.Init(zl)

	db, err := store.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	client := api.New(cfg.UpstreamURL, cfg.UpstreamTimeout)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "something went wrong, please try again",
			})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	deps := handlers.NewDeps(db, cfg, client)

	// Catalog
	app.Get("/", deps.CatalogHandler.List)
	app.Get("/products", deps.CatalogHandler.List)
	app.Get("/categories", deps.CatalogHandler.Categories)

	// Product detail
	app.Get("/products/:id", deps.ProductHandler.Detail)
	app.Post("/products/:id/reviews", deps.ProductHandler.SubmitReview)
	app.Post("/products/:id/favorite", deps.ProductHandler.ToggleFavorite)

	// Cart & orders
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/clear", deps.CartHandler.Clear)
	app.Post("/orders", deps.OrderHandler.Place)

	// Session (login throttled)
	app.Get("/session", deps.SessionHandler.Current)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "too many attempts, please try again later",
			})
		},
	}), deps.SessionHandler.Login)
	app.Post("/logout", deps.SessionHandler.Logout)

	// Profile
	app.Get("/profile", deps.ProfileHandler.Overview)
	app.Post("/profile", deps.ProfileHandler.SaveDescription)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(cfg.Addr))
}
