package cart

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/halimdz/tech-store-backend/internal/product"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Patch("/api/v1/cart/items/:id", h.updateQuantity)
	app.Delete("/api/v1/cart/items/:id", h.removeItem)
	app.Delete("/api/v1/cart", h.clearCart)
}

// cartResponse bundles the lines with the derived totals so the storefront
// can refresh the badge and summary in one round trip.
type cartResponse struct {
	Items      []Line `json:"items"`
	TotalItems int    `json:"totalItems"`
	TotalPrice int    `json:"totalPrice"`
}

func (h *Handler) respond(c *fiber.Ctx, lines []Line) error {
	return c.JSON(cartResponse{
		Items:      lines,
		TotalItems: h.service.TotalItems(),
		TotalPrice: h.service.TotalPrice(),
	})
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	return h.respond(c, h.service.Lines())
}

type addItemRequest struct {
	ProductID int `json:"productId"`
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}

	lines, err := h.service.AddItem(payload.ProductID)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return h.respond(c, lines)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	payload := new(updateQuantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	// quantities below 1 are a no-op; the current cart is returned as-is
	return h.respond(c, h.service.UpdateQuantity(id, payload.Quantity))
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	return h.respond(c, h.service.RemoveItem(id))
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	h.service.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}
