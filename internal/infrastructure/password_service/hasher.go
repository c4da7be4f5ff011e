package passwordservice

import (
	"github.com/ramentaro/ramen-taro-api/internal/domain/contract"
	"golang.org/x/crypto/bcrypt"
)

// Hasher implements the contract.IHasher interface using bcrypt.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() contract.IHasher {
	return &Hasher{}
}

// Hash returns the bcrypt hash of a password.
func (h *Hasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Compare checks a password against a bcrypt hash.
func (h *Hasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

var _ contract.IHasher = (*Hasher)(nil)
