package ports

import (
	"context"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
)

type FormationRepo interface {
	Create(ctx context.Context, f *domain.Formation) error
	GetByID(ctx context.Context, id string) (*domain.Formation, error)
	List(ctx context.Context) ([]*domain.Formation, error)
	Update(ctx context.Context, id string, patch domain.UpdateFormationInput) (*domain.Formation, error)
	Delete(ctx context.Context, id string) error

	// AddRegistration appends a pending roster entry. The duplicate and
	// soft capacity checks run in the same transaction as the insert,
	// under a lock on the formation row.
	AddRegistration(ctx context.Context, formationID string, reg *domain.Registration) error

	// UpdateRegistrationStatus moves an entry to approved or rejected and
	// maintains the enrolled projection atomically. Approval is refused
	// with domain.ErrNoSeatsAvailable once the seat limit is reached.
	UpdateRegistrationStatus(ctx context.Context, formationID, registrationID string, status domain.RegistrationStatus) error
}
