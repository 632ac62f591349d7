package product

import "strings"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Load() []Product {
	return s.repo.Load()
}

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Add(p Product) (Product, error) {
	return s.repo.Add(p)
}

func (s *Service) Update(id int, fields Fields) (Product, error) {
	return s.repo.Update(id, fields)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

// ListByCategory filters the catalog by category name.
func (s *Service) ListByCategory(category string) []Product {
	out := make([]Product, 0)
	for _, p := range s.repo.List() {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Search matches the query against product names, case-insensitively.
func (s *Service) Search(query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Product, 0)
	for _, p := range s.repo.List() {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}
