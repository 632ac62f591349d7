package cart

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/halimdz/tech-store-backend/internal/product"
	"github.com/halimdz/tech-store-backend/internal/store"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	st := store.NewMemoryStore()
	if err := st.Write(product.Collection, []product.Product{
		{ID: 1, Name: "Laptop", Category: product.CategoryLaptops, Price: 500, InStock: true},
		{ID: 2, Name: "Desktop", Category: product.CategoryDesktops, Price: 1000, InStock: true},
	}); err != nil {
		t.Fatalf("seed products: %v", err)
	}

	productService := product.NewService(product.NewStoreRepository(st))
	handler := NewHandler(NewService(New(st), productService))

	app := fiber.New()
	handler.RegisterPublicRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(b)
}

func TestCartFlow(t *testing.T) {
	app := newTestApp(t)

	// add product 1 twice: one line, quantity 2
	code, _ := doJSON(t, app, "POST", "/api/v1/cart/items", `{"productId":1}`)
	if code != fiber.StatusOK {
		t.Fatalf("expected 200 on add, got %d", code)
	}
	_, body := doJSON(t, app, "POST", "/api/v1/cart/items", `{"productId":1}`)
	if !strings.Contains(body, `"quantity":2`) {
		t.Fatalf("expected quantity 2 after second add, got %s", body)
	}
	if strings.Count(body, `"product":`) != 1 {
		t.Fatalf("expected a single line, got %s", body)
	}

	// add product 2 and check badge totals: 2*500 + 1*1000
	_, body = doJSON(t, app, "POST", "/api/v1/cart/items", `{"productId":2}`)
	if !strings.Contains(body, `"totalItems":3`) || !strings.Contains(body, `"totalPrice":2000`) {
		t.Fatalf("unexpected totals: %s", body)
	}

	// quantity below one is a no-op
	_, body = doJSON(t, app, "PATCH", "/api/v1/cart/items/1", `{"quantity":0}`)
	if !strings.Contains(body, `"totalItems":3`) {
		t.Fatalf("expected no-op for quantity 0, got %s", body)
	}

	_, body = doJSON(t, app, "PATCH", "/api/v1/cart/items/1", `{"quantity":5}`)
	if !strings.Contains(body, `"totalItems":6`) {
		t.Fatalf("expected totalItems 6 after quantity update, got %s", body)
	}

	// remove one line, then clear
	_, body = doJSON(t, app, "DELETE", "/api/v1/cart/items/1", "")
	if strings.Contains(body, `"id":1,"name":"Laptop"`) {
		t.Fatalf("expected product 1 removed, got %s", body)
	}

	code, _ = doJSON(t, app, "DELETE", "/api/v1/cart", "")
	if code != fiber.StatusNoContent {
		t.Fatalf("expected 204 on clear, got %d", code)
	}
	_, body = doJSON(t, app, "GET", "/api/v1/cart", "")
	if !strings.Contains(body, `"totalItems":0`) {
		t.Fatalf("expected empty cart, got %s", body)
	}
}

func TestAddUnknownProduct(t *testing.T) {
	app := newTestApp(t)
	code, _ := doJSON(t, app, "POST", "/api/v1/cart/items", `{"productId":99}`)
	if code != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", code)
	}
}
