package order

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/halimdz/tech-store-backend/internal/cart"
	"github.com/halimdz/tech-store-backend/internal/product"
)

// Handler needs the cart and product services: checkout drains the cart and
// direct orders snapshot the product at its current catalog state.
type Handler struct {
	service        *Service
	cartService    *cart.Service
	productService *product.Service
}

func NewHandler(s *Service, cs *cart.Service, ps *product.Service) *Handler {
	return &Handler{service: s, cartService: cs, productService: ps}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.checkout)
	app.Post("/api/v1/orders/direct", h.placeDirect)
	app.Get("/api/v1/order/:id", h.getOrder)
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/orders", h.getOrders)
	app.Patch("/api/v1/admin/order/:id/status", h.updateStatus)
	app.Patch("/api/v1/admin/order/:id", h.updateOrder)
	app.Delete("/api/v1/admin/order/:id", h.deleteOrder)
}

// checkout places a cart-variant order from the current cart snapshot and
// clears the cart. The response hands the order id forward explicitly so the
// confirmation page never has to guess which order was "last".
func (h *Handler) checkout(c *fiber.Ctx) error {
	payload := new(Customer)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Name == "" || payload.Phone == "" || payload.FullAddress() == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name, phone and address are required"})
	}

	id, err := h.service.Checkout(h.cartService.Lines(), *payload)
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cart is empty"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	h.cartService.Clear()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"orderId": id})
}

type directOrderRequest struct {
	ProductID int `json:"productId"`
	Customer
}

func (h *Handler) placeDirect(c *fiber.Ctx) error {
	payload := new(directOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Name == "" || payload.Phone == "" || payload.FullAddress() == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name, phone and address are required"})
	}

	p, err := h.productService.GetByID(payload.ProductID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}

	id := h.service.PlaceDirect(p, payload.Customer)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"orderId": id})
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	ord, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
	}
	return c.JSON(ord)
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	payload := new(updateStatusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.service.UpdateStatus(id, payload.Status); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		case errors.Is(err, ErrInvalidTransition):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "invalid status transition"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"message": "status updated"})
}

func (h *Handler) updateOrder(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	fields := new(Fields)
	if err := c.BodyParser(fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.service.Update(id, *fields); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "order updated"})
}

func (h *Handler) deleteOrder(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "order deleted"})
}
