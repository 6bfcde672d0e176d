package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/ibrahima697/BayySaWaarBack/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ContactService struct {
	contactRepo ports.ContactRepo
	notifier    ports.Notifier
	logger      logger.Logger
}

func NewContactService(contactRepo ports.ContactRepo, notifier ports.Notifier, logger logger.Logger) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *ContactService) Submit(ctx context.Context, input domain.SubmitContactInput) (*domain.Contact, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !strings.Contains(input.Email, "@") {
		return nil, fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	if input.Message == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrValidation)
	}

	contact := &domain.Contact{
		ID:        uuid.New().String(),
		TicketID:  uuid.New().String(),
		Name:      input.Name,
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Category:  input.Category,
		Message:   input.Message,
		Status:    domain.ContactStatusNew,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.contactRepo.CreateContact(ctx, contact); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	s.logger.Info("contact ticket created",
		logger.String("ticket_id", contact.TicketID),
	)

	go s.notifier.NotifyContactReceived(context.WithoutCancel(ctx), contact)

	return contact, nil
}

func (s *ContactService) List(ctx context.Context) ([]*domain.Contact, error) {
	return s.contactRepo.ListContacts(ctx)
}

func (s *ContactService) UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) (*domain.Contact, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown contact status %q", domain.ErrValidation, status)
	}

	contact, err := s.contactRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("contact status updated",
		logger.String("contact_id", id),
		logger.String("status", string(status)),
	)

	return contact, nil
}

func (s *ContactService) Subscribe(ctx context.Context, email string) (*domain.NewsletterSubscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}

	sub := &domain.NewsletterSubscription{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.contactRepo.CreateSubscription(ctx, sub); err != nil {
		return nil, fmt.Errorf("create subscription: %w", err)
	}

	s.logger.Info("newsletter subscription created", logger.String("email", email))

	go s.notifier.NotifyNewsletterWelcome(context.WithoutCancel(ctx), email)

	return sub, nil
}
