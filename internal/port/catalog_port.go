package port

import (
	"context"

	"github.com/cubtton/storefront/internal/domain"
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (domain.Product, error)
	CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, p domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type ThreadRepository interface {
	ListThreads(ctx context.Context) ([]domain.Thread, error)
	GetThread(ctx context.Context, id int64) (domain.Thread, error)
	CreateThread(ctx context.Context, t domain.Thread) (domain.Thread, error)
	UpdateThread(ctx context.Context, id int64, t domain.Thread) (domain.Thread, error)
	DeleteThread(ctx context.Context, id int64) error
}

type SlideRepository interface {
	// ActiveSlides returns the slides shown on the storefront homepage,
	// ordered by their order index.
	ActiveSlides(ctx context.Context) ([]domain.HeroSlide, error)
	AllSlides(ctx context.Context) ([]domain.HeroSlide, error)
	CreateSlide(ctx context.Context, s domain.HeroSlide) (domain.HeroSlide, error)
	UpdateSlide(ctx context.Context, id int64, s domain.HeroSlide) (domain.HeroSlide, error)
	DeleteSlide(ctx context.Context, id int64) error
}
