package ports

import (
	"context"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
)

type ProductRepo interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, id string, patch domain.UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type BlogRepo interface {
	Create(ctx context.Context, p *domain.BlogPost) error
	GetByID(ctx context.Context, id string) (*domain.BlogPost, error)
	List(ctx context.Context) ([]*domain.BlogPost, error)
	Update(ctx context.Context, id string, patch domain.UpdateBlogPostInput) (*domain.BlogPost, error)
	Delete(ctx context.Context, id string) error
}
