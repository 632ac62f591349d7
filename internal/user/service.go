package user

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCredentials = errors.New("invalid username or password")
)

type account struct {
	user         User
	passwordHash []byte
}

type Service struct {
	repo     Repository
	accounts []account
}

// NewService hashes the fixed demo credential list at construction. The shop
// has exactly two principals: the admin and a regular demo user.
func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		accounts: []account{
			{user: User{ID: 1, Username: "halim", IsAdmin: true}, passwordHash: mustHash("admin123@#$")},
			{user: User{ID: 2, Username: "user", IsAdmin: false}, passwordHash: mustHash("user123")},
		},
	}
}

func mustHash(password string) []byte {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return hashed
}

// Authenticate matches the username case-insensitively, checks the password
// and persists the session record on success.
func (s *Service) Authenticate(username, password string) (User, error) {
	for _, acc := range s.accounts {
		if !strings.EqualFold(acc.user.Username, username) {
			continue
		}
		if bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)) != nil {
			return User{}, ErrBadCredentials
		}
		if err := s.repo.SignIn(acc.user); err != nil {
			fmt.Printf("warning: could not persist session for %s: %v\n", acc.user.Username, err)
		}
		return acc.user, nil
	}
	return User{}, ErrBadCredentials
}

func (s *Service) Current() (User, error) {
	return s.repo.Current()
}

func (s *Service) SignOut() error {
	return s.repo.SignOut()
}
