package service

import (
	"context"
	"testing"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/ibrahima697/BayySaWaarBack/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminService(t *testing.T) (*mocks.MockUserRepo, *mocks.MockEnrollmentRepo, *mocks.MockStatsRepo, *AdminService) {
	t.Helper()
	userRepo := mocks.NewMockUserRepo(t)
	enrollmentRepo := mocks.NewMockEnrollmentRepo(t)
	statsRepo := mocks.NewMockStatsRepo(t)
	svc := NewAdminService(userRepo, enrollmentRepo, statsRepo, newTestLogger(t))
	return userRepo, enrollmentRepo, statsRepo, svc
}

func TestAdminService_Stats(t *testing.T) {
	_, _, statsRepo, svc := newAdminService(t)

	statsRepo.EXPECT().AdminStats(mock.Anything).Return(&domain.AdminStats{
		TotalUsers:         12,
		TotalEnrollments:   5,
		PendingEnrollments: 2,
	}, nil)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalUsers)
}

func TestAdminService_UserStats(t *testing.T) {
	_, _, statsRepo, svc := newAdminService(t)

	statsRepo.EXPECT().UserStats(mock.Anything).Return(&domain.UserStats{
		TotalUsers: 10,
		Members:    9,
		Admins:     1,
	}, nil)

	stats, err := svc.UserStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 10, stats.TotalUsers)
	assert.Equal(t, 9, stats.Members)
}

func TestAdminService_ListUsersByRole_Unknown(t *testing.T) {
	_, _, _, svc := newAdminService(t)

	_, err := svc.ListUsersByRole(context.Background(), "superuser")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAdminService_SearchUsers_EmptyQuery(t *testing.T) {
	_, _, _, svc := newAdminService(t)

	_, err := svc.SearchUsers(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAdminService_SearchUsers(t *testing.T) {
	userRepo, _, _, svc := newAdminService(t)

	userRepo.EXPECT().Search(mock.Anything, "diop").Return([]*domain.User{{ID: "u1"}}, nil)

	users, err := svc.SearchUsers(context.Background(), "diop")

	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestAdminService_DeleteUser_CascadesEnrollment(t *testing.T) {
	userRepo, enrollmentRepo, _, svc := newAdminService(t)

	userRepo.EXPECT().Delete(mock.Anything, "u1").Return(nil)
	enrollmentRepo.EXPECT().DeleteByUser(mock.Anything, "u1").Return(nil)

	err := svc.DeleteUser(context.Background(), "u1")

	require.NoError(t, err)
}

func TestAdminService_DeleteUser_NotFound(t *testing.T) {
	userRepo, _, _, svc := newAdminService(t)

	userRepo.EXPECT().Delete(mock.Anything, "ghost").Return(domain.ErrUserNotFound)

	err := svc.DeleteUser(context.Background(), "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
