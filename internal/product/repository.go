package product

import (
	"errors"
	"fmt"
	"sync"

	"github.com/halimdz/tech-store-backend/internal/store"
)

var (
	ErrNotFound = errors.New("product not found")
)

// Collection is the store namespace holding the product catalog.
const Collection = "products"

// Fields describes a partial update. Nil pointers leave the stored value
// untouched; an update either fully applies or fails.
type Fields struct {
	Name        *string   `json:"name,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Price       *int      `json:"price,omitempty"`
	OldPrice    *int      `json:"oldPrice,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Specs       *Specs    `json:"specs,omitempty"`
	InStock     *bool     `json:"inStock,omitempty"`
	Description *string   `json:"description,omitempty"`
}

type Repository interface {
	// Load reads the catalog from the store into the cache, seeding the demo
	// laptop when the collection is empty. It never fails the caller: on a
	// read error it logs and returns an empty slice.
	Load() []Product
	List() []Product
	GetByID(id int) (Product, error)
	// Add assigns MaxID()+1 and persists. Ids are never reused, even after
	// deletions.
	Add(p Product) (Product, error)
	Update(id int, fields Fields) (Product, error)
	// Delete is idempotent: removing an absent id is not an error.
	Delete(id int) error
	// MaxID is computed from the authoritative store state, not the cache,
	// so ids cannot collide after an external mutation of the store.
	MaxID() int
}

// StoreRepository owns the product cache and keeps it consistent with the
// backing store: every mutation persists before the cache is refreshed.
type StoreRepository struct {
	mu    sync.RWMutex
	store store.Store
	cache []Product
}

func NewStoreRepository(st store.Store) *StoreRepository {
	r := &StoreRepository{store: st}
	r.Load()
	return r
}

func (r *StoreRepository) Load() []Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	var products []Product
	err := r.store.Read(Collection, &products)
	switch {
	case errors.Is(err, store.ErrNotFound):
		// first run on this device: seed the demo record. An explicitly
		// emptied catalog stays empty.
		products = []Product{DefaultLaptop()}
		if werr := r.store.Write(Collection, products); werr != nil {
			fmt.Printf("warning: could not seed default product: %v\n", werr)
		}
	case err != nil:
		fmt.Printf("warning: could not load products: %v\n", err)
		r.cache = []Product{}
		return []Product{}
	}
	r.cache = products
	return copyProducts(products)
}

// read returns the authoritative catalog. A missing collection is an empty
// catalog, not an error.
func (r *StoreRepository) read() ([]Product, error) {
	var products []Product
	if err := r.store.Read(Collection, &products); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []Product{}, nil
		}
		return nil, err
	}
	return products, nil
}

func (r *StoreRepository) List() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyProducts(r.cache)
}

func (r *StoreRepository) GetByID(id int) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.cache {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *StoreRepository) Add(p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.read()
	if err != nil {
		// read failure must not let a stale cache hand out a colliding id
		fmt.Printf("warning: could not read products before add: %v\n", err)
		products = copyProducts(r.cache)
	}

	p.ID = maxID(products) + 1
	normalize(&p)
	products = append(products, p)

	if err := r.store.Write(Collection, products); err != nil {
		fmt.Printf("warning: could not persist product %d: %v\n", p.ID, err)
		return Product{}, err
	}
	r.cache = products
	return p, nil
}

func (r *StoreRepository) Update(id int, fields Fields) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := copyProducts(r.cache)
	for i := range products {
		if products[i].ID != id {
			continue
		}
		apply(&products[i], fields)
		normalize(&products[i])
		if err := r.store.Write(Collection, products); err != nil {
			fmt.Printf("warning: could not persist product update %d: %v\n", id, err)
			return Product{}, err
		}
		r.cache = products
		return products[i], nil
	}
	return Product{}, ErrNotFound
}

func (r *StoreRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := make([]Product, 0, len(r.cache))
	for _, p := range r.cache {
		if p.ID != id {
			products = append(products, p)
		}
	}
	if err := r.store.Write(Collection, products); err != nil {
		fmt.Printf("warning: could not persist product delete %d: %v\n", id, err)
		return err
	}
	r.cache = products
	return nil
}

func (r *StoreRepository) MaxID() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products, err := r.read()
	if err != nil {
		fmt.Printf("warning: could not read products for max id: %v\n", err)
		products = r.cache
	}
	return maxID(products)
}

func maxID(products []Product) int {
	max := 0
	for _, p := range products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max
}

// apply copies the non-nil fields onto p.
func apply(p *Product, f Fields) {
	if f.Name != nil {
		p.Name = *f.Name
	}
	if f.Category != nil {
		p.Category = *f.Category
	}
	if f.Price != nil {
		p.Price = *f.Price
	}
	if f.OldPrice != nil {
		p.OldPrice = f.OldPrice
	}
	if f.Image != nil {
		p.Image = *f.Image
	}
	if f.Images != nil {
		p.Images = *f.Images
	}
	if f.Specs != nil {
		p.Specs = *f.Specs
	}
	if f.InStock != nil {
		p.InStock = *f.InStock
	}
	if f.Description != nil {
		p.Description = *f.Description
	}
}

// normalize promotes the first gallery entry to the canonical image.
func normalize(p *Product) {
	if len(p.Images) > 0 {
		p.Image = p.Images[0]
	}
}

func copyProducts(in []Product) []Product {
	out := make([]Product, len(in))
	copy(out, in)
	return out
}
