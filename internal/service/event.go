package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/ibrahima697/BayySaWaarBack/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
	cache     ports.EventCache
	notifier  ports.Notifier
	logger    logger.Logger
}

func NewEventService(
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	cache ports.EventCache,
	notifier ports.Notifier,
	logger logger.Logger,
) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		cache:     cache,
		notifier:  notifier,
		logger:    logger,
	}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if input.DateStart.IsZero() || input.DateEnd.IsZero() {
		return nil, fmt.Errorf("%w: date_start and date_end are required", domain.ErrValidation)
	}
	if input.DateEnd.Before(input.DateStart) {
		return nil, fmt.Errorf("%w: date_end must not precede date_start", domain.ErrValidation)
	}
	if input.Location == "" {
		return nil, fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if input.MaxParticipants < 1 {
		return nil, fmt.Errorf("%w: max_participants must be at least 1", domain.ErrValidation)
	}
	if input.Type == "" {
		input.Type = domain.EventTypeSeminar
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown event type %q", domain.ErrValidation, input.Type)
	}

	event := &domain.Event{
		ID:               uuid.New().String(),
		Title:            input.Title,
		Slug:             domain.Slugify(input.Title),
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		Type:             input.Type,
		DateStart:        input.DateStart,
		DateEnd:          input.DateEnd,
		Location:         input.Location,
		PriceMember:      input.PriceMember,
		PriceNonMember:   input.PriceNonMember,
		MaxParticipants:  input.MaxParticipants,
		IsFeatured:       input.IsFeatured,
		Sponsors:         input.Sponsors,
		CreatedBy:        input.CreatedBy,
		Registrations:    []domain.EventRegistration{},
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	if cached, err := s.cache.GetEvent(ctx, slug); err == nil && cached != nil {
		return cached, nil
	}

	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetEvent(ctx, event); err != nil {
		s.logger.Debug("event cache set failed",
			logger.String("slug", slug),
			logger.String("error", err.Error()),
		)
	}

	return event, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.eventRepo.List(ctx)
}

// Register appends a pending roster entry after the duplicate check.
// Events carry no capacity gate at registration: max_participants is
// declared but deliberately not enforced here.
func (s *EventService) Register(ctx context.Context, slug, userID string) (*domain.EventRegistration, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	reg := &domain.EventRegistration{
		Registration: domain.Registration{
			ID:           uuid.New().String(),
			UserID:       userID,
			Status:       domain.RegistrationStatusPending,
			RegisteredAt: time.Now().UTC(),
		},
	}
	if err = s.eventRepo.AddRegistration(ctx, slug, reg); err != nil {
		return nil, fmt.Errorf("add registration: %w", err)
	}

	if err := s.cache.DeleteEvent(ctx, slug); err != nil {
		s.logger.Debug("event cache invalidation failed",
			logger.String("slug", slug),
			logger.String("error", err.Error()),
		)
	}

	s.logger.Info("event registration created",
		logger.String("registration_id", reg.ID),
		logger.String("event_slug", slug),
		logger.String("user_id", userID),
	)

	go s.notifier.NotifyRegistrationConfirmed(context.WithoutCancel(ctx), user, event.Title, event.DateStart, event.Location)
	go s.notifier.NotifyAdminNewRegistration(context.WithoutCancel(ctx), user, event.Title)

	return reg, nil
}

// MarkPaid records a payment reported by the external payment flow.
// No payment handling happens here.
func (s *EventService) MarkPaid(ctx context.Context, slug, registrationID, paymentMethod string) error {
	if err := s.eventRepo.MarkRegistrationPaid(ctx, slug, registrationID, paymentMethod, time.Now().UTC()); err != nil {
		return fmt.Errorf("mark registration paid: %w", err)
	}

	if err := s.cache.DeleteEvent(ctx, slug); err != nil {
		s.logger.Debug("event cache invalidation failed",
			logger.String("slug", slug),
			logger.String("error", err.Error()),
		)
	}

	s.logger.Info("event registration paid",
		logger.String("event_slug", slug),
		logger.String("registration_id", registrationID),
	)

	return nil
}
