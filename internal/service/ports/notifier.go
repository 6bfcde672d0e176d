package ports

import (
	"context"
	"time"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
)

// Notifier delivers best-effort messages after the durable mutation has
// committed. Implementations log failures and never return them: a lost
// notification must not undo a registration.
type Notifier interface {
	NotifyRegistrationConfirmed(ctx context.Context, user *domain.User, title string, starts time.Time, location string)
	NotifyAdminNewRegistration(ctx context.Context, user *domain.User, title string)
	NotifyEnrollmentDecision(ctx context.Context, e *domain.Enrollment)
	NotifyContactReceived(ctx context.Context, c *domain.Contact)
	NotifyNewsletterWelcome(ctx context.Context, email string)
}
