package user

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrNotFound = errors.New("user not found")
)

// User is the persisted "logged in" principal: a client-side convenience
// flag, not a security boundary. The password never leaves the service.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// FromCtx reads the principal out of the JWT claims placed on the context by
// the jwt middleware.
func FromCtx(c *fiber.Ctx) (User, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return User{}, ErrNotFound
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return User{}, ErrNotFound
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return User{}, ErrNotFound
	}
	username, _ := claims["username"].(string)
	isAdmin, _ := claims["is_admin"].(bool)
	return User{ID: int(id), Username: username, IsAdmin: isAdmin}, nil
}

// RequireAdmin is the middleware guarding the admin surface.
func RequireAdmin(c *fiber.Ctx) error {
	u, err := FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	if !u.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin only"})
	}
	return c.Next()
}
