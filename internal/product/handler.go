package product

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/product/:id", h.getProduct)
}

// Admin routes are mounted behind the JWT middleware plus the admin check.
func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Post("/api/v1/admin/products", h.createProduct)
	app.Put("/api/v1/admin/product/:id", h.updateProduct)
	app.Patch("/api/v1/admin/product/:id", h.updateProduct)
	app.Delete("/api/v1/admin/product/:id", h.deleteProduct)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	if cat := c.Query("category"); cat != "" {
		return c.JSON(h.service.ListByCategory(cat))
	}
	if q := c.Query("search"); q != "" {
		return c.JSON(h.service.Search(q))
	}
	return c.JSON(h.service.List())
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	p, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	return c.JSON(p)
}

// validateProductPayload is the presentation-layer gate: the repository
// assumes well-formed input and never re-validates.
func validateProductPayload(p *Product) map[string]string {
	errs := map[string]string{}
	if p.Name == "" {
		errs["name"] = "name is required"
	}
	if p.Price < 0 {
		errs["price"] = "price must be >= 0"
	}
	valid := false
	for _, cat := range AllowedCategories {
		if p.Category == cat {
			valid = true
			break
		}
	}
	if !valid {
		errs["category"] = "invalid category"
	}
	return errs
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	p := new(Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validateProductPayload(p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	created, err := h.service.Add(*p)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	fields := new(Fields)
	if err := c.BodyParser(fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if fields.Name != nil && *fields.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name cannot be empty"})
	}
	if fields.Price != nil && *fields.Price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "price must be >= 0"})
	}

	updated, err := h.service.Update(id, *fields)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	if err := h.service.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "product deleted"})
}
