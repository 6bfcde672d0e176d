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

type FormationService struct {
	formationRepo ports.FormationRepo
	userRepo      ports.UserRepo
	notifier      ports.Notifier
	logger        logger.Logger
}

func NewFormationService(
	formationRepo ports.FormationRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *FormationService {
	return &FormationService{
		formationRepo: formationRepo,
		userRepo:      userRepo,
		notifier:      notifier,
		logger:        logger,
	}
}

func (s *FormationService) Create(ctx context.Context, input domain.CreateFormationInput) (*domain.Formation, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if input.Location == "" {
		return nil, fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if input.Duration == "" {
		return nil, fmt.Errorf("%w: duration is required", domain.ErrValidation)
	}
	if input.MaxSeats < 1 {
		return nil, fmt.Errorf("%w: max_seats must be at least 1", domain.ErrValidation)
	}
	if !input.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, input.Category)
	}

	formation := &domain.Formation{
		ID:             uuid.New().String(),
		Title:          input.Title,
		Description:    input.Description,
		Date:           input.Date,
		Location:       input.Location,
		Duration:       input.Duration,
		Category:       input.Category,
		Status:         domain.FormationStatusUpcoming,
		MaxSeats:       input.MaxSeats,
		PriceNonMember: input.PriceNonMember,
		Image:          input.Image,
		Registrations:  []domain.Registration{},
		EnrolledUsers:  []domain.UserSummary{},
	}

	if err := s.formationRepo.Create(ctx, formation); err != nil {
		return nil, fmt.Errorf("create formation: %w", err)
	}

	return formation, nil
}

func (s *FormationService) GetByID(ctx context.Context, id string) (*domain.Formation, error) {
	return s.formationRepo.GetByID(ctx, id)
}

// List applies the role-scoped projection: admins get every formation
// with the full roster and user display fields, members get only the
// publicly listed statuses with the roster trimmed to their own entries,
// anonymous callers get no roster at all.
func (s *FormationService) List(ctx context.Context, viewer *domain.Viewer) ([]*domain.Formation, error) {
	formations, err := s.formationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list formations: %w", err)
	}

	if viewer.IsAdmin() {
		return formations, nil
	}

	visible := make([]*domain.Formation, 0, len(formations))
	for _, f := range formations {
		if f.Status == domain.FormationStatusCompleted {
			continue
		}
		visible = append(visible, projectForViewer(f, viewer))
	}

	return visible, nil
}

func projectForViewer(f *domain.Formation, viewer *domain.Viewer) *domain.Formation {
	own := []domain.Registration{}
	if viewer != nil {
		for _, reg := range f.Registrations {
			if reg.UserID == viewer.UserID {
				reg.UserName = ""
				reg.UserEmail = ""
				own = append(own, reg)
			}
		}
	}

	projected := *f
	projected.Registrations = own
	return &projected
}

func (s *FormationService) Update(ctx context.Context, id string, patch domain.UpdateFormationInput) (*domain.Formation, error) {
	if patch.Category != nil && !patch.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, *patch.Category)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *patch.Status)
	}
	if patch.MaxSeats != nil && *patch.MaxSeats < 1 {
		return nil, fmt.Errorf("%w: max_seats must be at least 1", domain.ErrValidation)
	}

	formation, err := s.formationRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update formation: %w", err)
	}

	return formation, nil
}

func (s *FormationService) Delete(ctx context.Context, id string) error {
	if err := s.formationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete formation: %w", err)
	}

	s.logger.Info("formation deleted", logger.String("formation_id", id))
	return nil
}

// Register appends a pending roster entry for the user. The repository
// runs the duplicate check and the soft capacity check in the same
// transaction as the insert; the authoritative capacity gate stays at
// the approval transition.
func (s *FormationService) Register(ctx context.Context, formationID, userID string) (*domain.Registration, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	formation, err := s.formationRepo.GetByID(ctx, formationID)
	if err != nil {
		return nil, fmt.Errorf("check formation: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	reg := &domain.Registration{
		ID:           uuid.New().String(),
		UserID:       userID,
		Status:       domain.RegistrationStatusPending,
		RegisteredAt: time.Now().UTC(),
	}
	if err = s.formationRepo.AddRegistration(ctx, formationID, reg); err != nil {
		return nil, fmt.Errorf("add registration: %w", err)
	}

	s.logger.Info("formation registration created",
		logger.String("registration_id", reg.ID),
		logger.String("formation_id", formationID),
		logger.String("user_id", userID),
	)

	go s.notifier.NotifyRegistrationConfirmed(context.WithoutCancel(ctx), user, formation.Title, formation.Date, formation.Location)
	go s.notifier.NotifyAdminNewRegistration(context.WithoutCancel(ctx), user, formation.Title)

	return reg, nil
}

// UpdateRegistrationStatus moves a roster entry to approved or rejected.
// The repository holds the enrolled projection consistent with the
// roster in one transaction, and refuses an approval that would exceed
// the seat limit.
func (s *FormationService) UpdateRegistrationStatus(ctx context.Context, formationID, registrationID string, status domain.RegistrationStatus) error {
	if status != domain.RegistrationStatusApproved && status != domain.RegistrationStatusRejected {
		return fmt.Errorf("%w: status must be approved or rejected", domain.ErrValidation)
	}

	if err := s.formationRepo.UpdateRegistrationStatus(ctx, formationID, registrationID, status); err != nil {
		return fmt.Errorf("update registration status: %w", err)
	}

	s.logger.Info("registration status updated",
		logger.String("formation_id", formationID),
		logger.String("registration_id", registrationID),
		logger.String("status", string(status)),
	)

	return nil
}
