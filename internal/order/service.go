package order

import (
	"errors"
	"strings"

	"github.com/halimdz/tech-store-backend/internal/cart"
	"github.com/halimdz/tech-store-backend/internal/product"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
)

// Customer carries the checkout form data. Address may arrive either as a
// free-text line or as structured address/municipality/wilaya parts.
type Customer struct {
	Name         string `json:"customerName"`
	Phone        string `json:"customerPhone"`
	Address      string `json:"address"`
	Municipality string `json:"municipality,omitempty"`
	Wilaya       string `json:"wilaya,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// FullAddress joins the structured parts into the single customerAddress
// stored on the order.
func (c Customer) FullAddress() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{c.Address, c.Municipality, c.Wilaya} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, strings.TrimSpace(part))
		}
	}
	return strings.Join(parts, "، ")
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Checkout turns the cart snapshot into a cart-variant order. The total is
// the sum of line totals at this moment; it is never recomputed afterwards.
// Returns the new order id.
func (s *Service) Checkout(lines []cart.Line, customer Customer) (int, error) {
	if len(lines) == 0 {
		return 0, ErrEmptyCart
	}
	total := 0
	for _, l := range lines {
		total += l.Product.Price * l.Quantity
	}
	ord := Order{
		Kind:            KindCart,
		Items:           lines,
		CustomerName:    customer.Name,
		CustomerPhone:   customer.Phone,
		CustomerAddress: customer.FullAddress(),
		Notes:           customer.Notes,
		TotalPrice:      total,
	}
	return s.repo.Create(ord), nil
}

// PlaceDirect creates a single-product order with the product's current
// price as the snapshot total.
func (s *Service) PlaceDirect(p product.Product, customer Customer) int {
	ord := Order{
		Kind:            KindDirect,
		ProductID:       p.ID,
		ProductName:     p.Name,
		CustomerName:    customer.Name,
		CustomerPhone:   customer.Phone,
		CustomerAddress: customer.FullAddress(),
		Notes:           customer.Notes,
		TotalPrice:      p.Price,
	}
	return s.repo.Create(ord)
}

func (s *Service) List() []Order {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Order, error) {
	return s.repo.GetByID(id)
}

func (s *Service) UpdateStatus(id int, status string) error {
	return s.repo.UpdateStatus(id, status)
}

func (s *Service) Update(id int, fields Fields) error {
	return s.repo.Update(id, fields)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
