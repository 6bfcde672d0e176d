package ports

import (
	"context"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
)

type ContactRepo interface {
	CreateContact(ctx context.Context, c *domain.Contact) error
	ListContacts(ctx context.Context) ([]*domain.Contact, error)
	UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) (*domain.Contact, error)
	CreateSubscription(ctx context.Context, s *domain.NewsletterSubscription) error
}

type StatsRepo interface {
	AdminStats(ctx context.Context) (*domain.AdminStats, error)
	UserStats(ctx context.Context) (*domain.UserStats, error)
}
