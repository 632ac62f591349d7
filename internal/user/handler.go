package user

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type Handler struct {
	service   *Service
	jwtSecret string
}

func NewHandler(service *Service, jwtSecret string) *Handler {
	return &Handler{service: service, jwtSecret: jwtSecret}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/sign-in", h.signIn)
	app.Post("/api/v1/sign-out", h.signOut)
	app.Get("/api/v1/session", h.getSession)
}

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) signIn(c *fiber.Ctx) error {
	payload := new(signInRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	u, err := h.service.Authenticate(payload.Username, payload.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid username or password"})
	}

	claims := jwt.MapClaims{
		"user_id":  u.ID,
		"username": u.Username,
		"is_admin": u.IsAdmin,
		"exp":      time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"message": "login successful",
		"user":    u,
		"token":   signed,
	})
}

func (h *Handler) signOut(c *fiber.Ctx) error {
	if err := h.service.SignOut(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "signed out"})
}

func (h *Handler) getSession(c *fiber.Ctx) error {
	u, err := h.service.Current()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "no active session"})
	}
	return c.JSON(u)
}
