package main

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/joho/godotenv"

	"github.com/halimdz/tech-store-backend/internal/cart"
	"github.com/halimdz/tech-store-backend/internal/config"
	"github.com/halimdz/tech-store-backend/internal/order"
	"github.com/halimdz/tech-store-backend/internal/product"
	"github.com/halimdz/tech-store-backend/internal/store"
	"github.com/halimdz/tech-store-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	st := mustOpenStore(cfg)

	app := fiber.New()
	setupCORS(app)

	productRepo := product.NewStoreRepository(st)
	productService := product.NewService(productRepo)
	productHandler := product.NewHandler(productService)

	cartService := cart.NewService(cart.New(st), productService)
	cartHandler := cart.NewHandler(cartService)

	orderService := order.NewService(order.NewStoreRepository(st))
	orderHandler := order.NewHandler(orderService, cartService, productService)

	userService := user.NewService(user.NewStoreRepository(st))
	userHandler := user.NewHandler(userService, cfg.JWTSecret)

	userHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	cartHandler.RegisterPublicRoutes(app)
	orderHandler.RegisterPublicRoutes(app)

	// everything under /api/v1/admin requires a valid token with the admin flag
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		Filter: func(c *fiber.Ctx) bool {
			return !strings.HasPrefix(c.Path(), "/api/v1/admin")
		},
	}))
	app.Use("/api/v1/admin", user.RequireAdmin)

	productHandler.RegisterAdminRoutes(app)
	orderHandler.RegisterAdminRoutes(app)

	if err := app.Listen(cfg.Addr); err != nil {
		panic(err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenStore(cfg config.Config) store.Store {
	switch cfg.Backend {
	case "redis":
		st, err := store.NewRedisStore(cfg.RedisAddr, "tech_store")
		if err != nil {
			panic(fmt.Sprintf("could not connect to redis at %s: %v", cfg.RedisAddr, err))
		}
		return st
	default:
		st, err := store.NewFileStore(cfg.DataDir)
		if err != nil {
			panic(fmt.Sprintf("could not open data dir %s: %v", cfg.DataDir, err))
		}
		return st
	}
}
