package ports

import (
	"context"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
	Search(ctx context.Context, query string) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}
