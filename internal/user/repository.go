package user

import (
	"errors"
	"fmt"

	"github.com/halimdz/tech-store-backend/internal/store"
)

// Collection is the store namespace holding the current session record.
const Collection = "user"

// Repository persists the single signed-in principal across restarts.
type Repository interface {
	Current() (User, error)
	SignIn(u User) error
	SignOut() error
}

type StoreRepository struct {
	store store.Store
}

func NewStoreRepository(st store.Store) *StoreRepository {
	return &StoreRepository{store: st}
}

func (r *StoreRepository) Current() (User, error) {
	var u User
	if err := r.store.Read(Collection, &u); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return User{}, ErrNotFound
		}
		fmt.Printf("warning: could not read session: %v\n", err)
		return User{}, ErrNotFound
	}
	if u.ID == 0 {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *StoreRepository) SignIn(u User) error {
	return r.store.Write(Collection, u)
}

func (r *StoreRepository) SignOut() error {
	return r.store.Delete(Collection)
}
