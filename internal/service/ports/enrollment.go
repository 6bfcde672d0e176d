package ports

import (
	"context"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
)

type EnrollmentRepo interface {
	Create(ctx context.Context, e *domain.Enrollment) error
	GetByID(ctx context.Context, id string) (*domain.Enrollment, error)
	GetByUser(ctx context.Context, userID string) (*domain.Enrollment, error)
	List(ctx context.Context) ([]*domain.Enrollment, error)
	UpdateStatus(ctx context.Context, id string, status domain.EnrollmentStatus) (*domain.Enrollment, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}
