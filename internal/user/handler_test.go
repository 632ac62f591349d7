package user

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/halimdz/tech-store-backend/internal/store"
)

func TestSignInIssuesToken(t *testing.T) {
	handler := NewHandler(NewService(NewStoreRepository(store.NewMemoryStore())), "test-secret")
	app := fiber.New()
	handler.RegisterPublicRoutes(app)

	req := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(`{"username":"halim","password":"admin123@#$"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	body := string(b)
	if !strings.Contains(body, `"token":`) || !strings.Contains(body, `"isAdmin":true`) {
		t.Fatalf("unexpected login response: %s", body)
	}
	if strings.Contains(body, "admin123") {
		t.Fatalf("password leaked into response: %s", body)
	}

	// session endpoint reflects the persisted principal
	res2, err := app.Test(httptest.NewRequest("GET", "/api/v1/session", nil))
	if err != nil {
		t.Fatalf("session request failed: %v", err)
	}
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), `"username":"halim"`) {
		t.Fatalf("unexpected session body: %s", string(b2))
	}
}

func TestSignInRejectsBadPassword(t *testing.T) {
	handler := NewHandler(NewService(NewStoreRepository(store.NewMemoryStore())), "test-secret")
	app := fiber.New()
	handler.RegisterPublicRoutes(app)

	req := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(`{"username":"halim","password":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}
}

// makeClaimsApp injects claims the way the jwt middleware would, so the admin
// gate can be exercised without a real token.
func makeClaimsApp(claims jwt.MapClaims) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if claims != nil {
			c.Locals("user", &jwt.Token{Claims: claims})
		}
		return c.Next()
	})
	app.Use("/api/v1/admin", RequireAdmin)
	app.Get("/api/v1/admin/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	return app
}

func TestRequireAdmin(t *testing.T) {
	cases := []struct {
		name   string
		claims jwt.MapClaims
		want   int
	}{
		{"admin allowed", jwt.MapClaims{"user_id": float64(1), "username": "halim", "is_admin": true}, fiber.StatusOK},
		{"regular user forbidden", jwt.MapClaims{"user_id": float64(2), "username": "user", "is_admin": false}, fiber.StatusForbidden},
		{"missing claims unauthorized", nil, fiber.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := makeClaimsApp(tc.claims)
			res, err := app.Test(httptest.NewRequest("GET", "/api/v1/admin/ping", nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if res.StatusCode != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, res.StatusCode)
			}
		})
	}
}
