package port

import (
	"context"

	"github.com/cubtton/storefront/internal/domain"
)

// AuthProvider reports the current authenticated identity. A nil user with
// a nil error means nobody is signed in; that is a normal state, not a
// failure.
type AuthProvider interface {
	GetCurrentUser(ctx context.Context) (*domain.User, error)
}
