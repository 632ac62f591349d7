package cart

import "github.com/halimdz/tech-store-backend/internal/product"

// Service resolves product ids against the catalog before handing snapshots
// to the aggregate.
type Service struct {
	cart     *Cart
	products *product.Service
}

func NewService(cart *Cart, products *product.Service) *Service {
	return &Service{cart: cart, products: products}
}

// AddItem snapshots the product at its current catalog state and adds it to
// the cart. Returns product.ErrNotFound for unknown ids.
func (s *Service) AddItem(productID int) ([]Line, error) {
	p, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	s.cart.AddItem(p)
	return s.cart.Lines(), nil
}

func (s *Service) UpdateQuantity(productID, quantity int) []Line {
	s.cart.UpdateQuantity(productID, quantity)
	return s.cart.Lines()
}

func (s *Service) RemoveItem(productID int) []Line {
	s.cart.RemoveItem(productID)
	return s.cart.Lines()
}

func (s *Service) Clear() {
	s.cart.Clear()
}

func (s *Service) Lines() []Line {
	return s.cart.Lines()
}

func (s *Service) TotalItems() int {
	return s.cart.TotalItems()
}

func (s *Service) TotalPrice() int {
	return s.cart.TotalPrice()
}
