package service

import (
	"context"
	"fmt"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/ibrahima697/BayySaWaarBack/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type AdminService struct {
	userRepo       ports.UserRepo
	enrollmentRepo ports.EnrollmentRepo
	statsRepo      ports.StatsRepo
	logger         logger.Logger
}

func NewAdminService(
	userRepo ports.UserRepo,
	enrollmentRepo ports.EnrollmentRepo,
	statsRepo ports.StatsRepo,
	logger logger.Logger,
) *AdminService {
	return &AdminService{
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
		statsRepo:      statsRepo,
		logger:         logger,
	}
}

func (s *AdminService) Stats(ctx context.Context) (*domain.AdminStats, error) {
	return s.statsRepo.AdminStats(ctx)
}

func (s *AdminService) UserStats(ctx context.Context) (*domain.UserStats, error) {
	return s.statsRepo.UserStats(ctx)
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *AdminService) ListUsersByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	if role != domain.RoleMember && role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	return s.userRepo.ListByRole(ctx, role)
}

func (s *AdminService) SearchUsers(ctx context.Context, query string) ([]*domain.User, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", domain.ErrValidation)
	}
	return s.userRepo.Search(ctx, query)
}

// DeleteUser removes the account and its enrollment application in the
// same pass, matching the cascade the admin API promises.
func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if err := s.enrollmentRepo.DeleteByUser(ctx, id); err != nil {
		return fmt.Errorf("delete user enrollment: %w", err)
	}

	s.logger.Info("user deleted", logger.String("user_id", id))
	return nil
}
