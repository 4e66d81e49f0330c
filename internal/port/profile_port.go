package port

import (
	"context"

	"github.com/cubtton/storefront/internal/domain"
	"github.com/google/uuid"
)

type ProfileRepository interface {
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
	CountProfiles(ctx context.Context) (int64, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role string) (domain.Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, p domain.Profile) (domain.Profile, error)
	DeleteProfile(ctx context.Context, id uuid.UUID) error
}
