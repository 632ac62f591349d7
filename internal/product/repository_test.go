package product

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halimdz/tech-store-backend/internal/store"
)

// failingStore lets tests flip storage failures on and off.
type failingStore struct {
	*store.MemoryStore
	failReads  bool
	failWrites bool
}

func (s *failingStore) Read(name string, v any) error {
	if s.failReads {
		return errors.New("read failed")
	}
	return s.MemoryStore.Read(name, v)
}

func (s *failingStore) Write(name string, v any) error {
	if s.failWrites {
		return errors.New("write failed")
	}
	return s.MemoryStore.Write(name, v)
}

func emptyCatalogRepo(t *testing.T) (*StoreRepository, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	require.NoError(t, st.Write(Collection, []Product{}))
	return NewStoreRepository(st), st
}

func TestLoadSeedsDefaultLaptop(t *testing.T) {
	st := store.NewMemoryStore()
	repo := NewStoreRepository(st)

	products := repo.List()
	require.Len(t, products, 1)
	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, CategoryLaptops, products[0].Category)
	assert.True(t, products[0].InStock)

	// the seed must be persisted, not only cached
	var persisted []Product
	require.NoError(t, st.Read(Collection, &persisted))
	assert.Equal(t, products, persisted)
}

func TestLoadDoesNotSeedEmptiedCatalog(t *testing.T) {
	repo, _ := emptyCatalogRepo(t)
	assert.Empty(t, repo.List())
}

func TestAddAssignsIDsThatAreNeverReused(t *testing.T) {
	repo, _ := emptyCatalogRepo(t)

	first, err := repo.Add(Product{Name: "X", Price: 1000, Category: CategoryLaptops})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	second, err := repo.Add(Product{Name: "Y", Price: 2000, Category: CategoryDesktops})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	require.NoError(t, repo.Delete(1))

	third, err := repo.Add(Product{Name: "Z", Price: 3000, Category: CategoryComponents})
	require.NoError(t, err)
	assert.Equal(t, 3, third.ID, "deleted ids must never be reused")
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	repo, _ := emptyCatalogRepo(t)
	created, err := repo.Add(Product{Name: "X", Price: 1000, Category: CategoryLaptops, Description: "keep me"})
	require.NoError(t, err)

	newPrice := 900
	updated, err := repo.Update(created.ID, Fields{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 900, updated.Price)
	assert.Equal(t, "X", updated.Name)
	assert.Equal(t, "keep me", updated.Description)
}

func TestUpdateMissingIDFails(t *testing.T) {
	repo, _ := emptyCatalogRepo(t)
	name := "nope"
	_, err := repo.Update(42, Fields{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo, _ := emptyCatalogRepo(t)
	_, err := repo.Add(Product{Name: "X", Price: 1000, Category: CategoryLaptops})
	require.NoError(t, err)

	assert.NoError(t, repo.Delete(1))
	assert.NoError(t, repo.Delete(1), "deleting an absent id is not an error")
	assert.Empty(t, repo.List())
}

func TestMaxIDReadsAuthoritativeStore(t *testing.T) {
	repo, st := emptyCatalogRepo(t)
	_, err := repo.Add(Product{Name: "X", Price: 1000, Category: CategoryLaptops})
	require.NoError(t, err)

	// mutate the store behind the repository's back
	require.NoError(t, st.Write(Collection, []Product{{ID: 7, Name: "external"}}))

	assert.Equal(t, 7, repo.MaxID())

	added, err := repo.Add(Product{Name: "Y", Price: 500, Category: CategoryAccessories})
	require.NoError(t, err)
	assert.Equal(t, 8, added.ID, "add must not collide with externally written ids")
}

func TestAddReportsWriteFailure(t *testing.T) {
	fs := &failingStore{MemoryStore: store.NewMemoryStore()}
	require.NoError(t, fs.Write(Collection, []Product{}))
	repo := NewStoreRepository(fs)

	fs.failWrites = true
	_, err := repo.Add(Product{Name: "X", Price: 1000, Category: CategoryLaptops})
	require.Error(t, err)
	assert.Empty(t, repo.List(), "failed add must not land in the cache")
}

func TestLoadDegradesToEmptyOnReadError(t *testing.T) {
	fs := &failingStore{MemoryStore: store.NewMemoryStore(), failReads: true}
	repo := NewStoreRepository(fs)
	assert.Empty(t, repo.Load())
}

func TestNormalizePromotesFirstGalleryImage(t *testing.T) {
	repo, _ := emptyCatalogRepo(t)
	created, err := repo.Add(Product{
		Name:     "X",
		Price:    1000,
		Category: CategoryLaptops,
		Image:    "old.jpg",
		Images:   []string{"first.jpg", "second.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, "first.jpg", created.Image)
}

func TestDiscountPercent(t *testing.T) {
	old := 100000
	p := Product{Price: 85000, OldPrice: &old}
	assert.True(t, p.Discounted())
	assert.Equal(t, 15, p.DiscountPercent())

	same := 85000
	assert.Equal(t, 0, Product{Price: 85000, OldPrice: &same}.DiscountPercent())
	assert.Equal(t, 0, Product{Price: 85000}.DiscountPercent())
}
