package outbound

import (
	"context"
	"errors"

	"github.com/Nikshey/TWINSKILL/domain"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// UserStorePort is the uniform lookup surface over the two interchangeable
// user stores (DynamoDB, in-memory). The implementation is selected once at
// process start.
type UserStorePort interface {
	Find(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, user domain.User) error
	Update(ctx context.Context, user domain.User) error
	Delete(ctx context.Context, email string) error
	// State reports the backing store for the health endpoint.
	State() string
}
