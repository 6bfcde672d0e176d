package ports

import (
	"context"
	"time"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetBySlug(ctx context.Context, slug string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)

	// AddRegistration appends a pending roster entry after a duplicate
	// check. Events carry no capacity gate at registration.
	AddRegistration(ctx context.Context, slug string, reg *domain.EventRegistration) error

	// MarkRegistrationPaid records the approved->paid transition driven
	// by the external payment flow.
	MarkRegistrationPaid(ctx context.Context, slug, registrationID, paymentMethod string, paidAt time.Time) error
}

type EventCache interface {
	GetEvent(ctx context.Context, slug string) (*domain.Event, error)
	SetEvent(ctx context.Context, e *domain.Event) error
	DeleteEvent(ctx context.Context, slug string) error
}
