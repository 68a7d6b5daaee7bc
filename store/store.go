package store

import (
	"errors"
	"os"

	"kidreel/types"
)

// ErrNotFound is returned when no record exists for an id.
var ErrNotFound = errors.New("content not found")

// Store persists content records keyed by incrementing integer id.
type Store interface {
	Create(c types.Content) (types.Content, error)
	Get(id int) (types.Content, error)
	List() ([]types.Content, error)
	Update(c types.Content) error
	Delete(id int) error
}

// NewFromEnv selects the store backing: Redis when CONTENT_STORE=redis,
// the in-memory map otherwise.
func NewFromEnv() (Store, error) {
	if os.Getenv("CONTENT_STORE") == "redis" {
		return NewRedisFromEnv()
	}
	return NewMemory(), nil
}
