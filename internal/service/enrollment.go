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

type EnrollmentService struct {
	enrollmentRepo ports.EnrollmentRepo
	notifier       ports.Notifier
	logger         logger.Logger
}

func NewEnrollmentService(enrollmentRepo ports.EnrollmentRepo, notifier ports.Notifier, logger logger.Logger) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

func (s *EnrollmentService) Submit(ctx context.Context, input domain.SubmitEnrollmentInput) (*domain.Enrollment, error) {
	if input.FirstName == "" || input.LastName == "" {
		return nil, fmt.Errorf("%w: first_name and last_name are required", domain.ErrValidation)
	}
	if !strings.Contains(input.Email, "@") {
		return nil, fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	if input.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", domain.ErrValidation)
	}

	enrollment := &domain.Enrollment{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:     input.Phone,
		Company:   input.Company,
		Message:   input.Message,
		Status:    domain.EnrollmentStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("create enrollment: %w", err)
	}

	s.logger.Info("enrollment submitted",
		logger.String("enrollment_id", enrollment.ID),
		logger.String("email", enrollment.Email),
	)

	return enrollment, nil
}

func (s *EnrollmentService) MyStatus(ctx context.Context, userID string) (*domain.Enrollment, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return s.enrollmentRepo.GetByUser(ctx, userID)
}

func (s *EnrollmentService) GetByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	return s.enrollmentRepo.GetByID(ctx, id)
}

func (s *EnrollmentService) List(ctx context.Context) ([]*domain.Enrollment, error) {
	return s.enrollmentRepo.List(ctx)
}

// UpdateStatus applies an admin decision and emails the applicant.
func (s *EnrollmentService) UpdateStatus(ctx context.Context, id string, status domain.EnrollmentStatus) (*domain.Enrollment, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown enrollment status %q", domain.ErrValidation, status)
	}

	enrollment, err := s.enrollmentRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update enrollment status: %w", err)
	}

	s.logger.Info("enrollment status updated",
		logger.String("enrollment_id", id),
		logger.String("status", string(status)),
	)

	if status != domain.EnrollmentStatusPending {
		go s.notifier.NotifyEnrollmentDecision(context.WithoutCancel(ctx), enrollment)
	}

	return enrollment, nil
}

func (s *EnrollmentService) Delete(ctx context.Context, id string) error {
	return s.enrollmentRepo.Delete(ctx, id)
}
