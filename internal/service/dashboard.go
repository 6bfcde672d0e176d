package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/ibrahima697/BayySaWaarBack/internal/service/ports"
)

// DashboardData is everything a member sees on their personal page.
type DashboardData struct {
	User         *domain.UserSummary `json:"user"`
	Enrollment   *domain.Enrollment  `json:"enrollment,omitempty"`
	MyFormations []MyRegistration    `json:"my_formations"`
	MyEvents     []MyRegistration    `json:"my_events"`
}

// MyRegistration is one of the caller's own roster entries, paired with
// the aggregate it belongs to.
type MyRegistration struct {
	AggregateID  string                    `json:"id"`
	Title        string                    `json:"title"`
	Status       domain.RegistrationStatus `json:"status"`
	RegisteredAt string                    `json:"registered_at"`
}

type DashboardService struct {
	userRepo       ports.UserRepo
	enrollmentRepo ports.EnrollmentRepo
	formationRepo  ports.FormationRepo
	eventRepo      ports.EventRepo
}

func NewDashboardService(
	userRepo ports.UserRepo,
	enrollmentRepo ports.EnrollmentRepo,
	formationRepo ports.FormationRepo,
	eventRepo ports.EventRepo,
) *DashboardService {
	return &DashboardService{
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
		formationRepo:  formationRepo,
		eventRepo:      eventRepo,
	}
}

func (s *DashboardService) MyData(ctx context.Context, userID string) (*DashboardData, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	data := &DashboardData{
		User: &domain.UserSummary{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
		},
		MyFormations: []MyRegistration{},
		MyEvents:     []MyRegistration{},
	}

	enrollment, err := s.enrollmentRepo.GetByUser(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrEnrollmentNotFound) {
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	data.Enrollment = enrollment

	formations, err := s.formationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list formations: %w", err)
	}
	for _, f := range formations {
		for _, reg := range f.Registrations {
			if reg.UserID == userID {
				data.MyFormations = append(data.MyFormations, MyRegistration{
					AggregateID:  f.ID,
					Title:        f.Title,
					Status:       reg.Status,
					RegisteredAt: reg.RegisteredAt.Format("2006-01-02"),
				})
			}
		}
	}

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	for _, e := range events {
		for _, reg := range e.Registrations {
			if reg.UserID == userID {
				data.MyEvents = append(data.MyEvents, MyRegistration{
					AggregateID:  e.ID,
					Title:        e.Title,
					Status:       reg.Status,
					RegisteredAt: reg.RegisteredAt.Format("2006-01-02"),
				})
			}
		}
	}

	return data, nil
}
