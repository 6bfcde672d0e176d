package service

import (
	"context"
	"testing"
	"time"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/ibrahima697/BayySaWaarBack/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_MyData_CollectsOwnRegistrations(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	enrollmentRepo := mocks.NewMockEnrollmentRepo(t)
	formationRepo := mocks.NewMockFormationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)

	svc := NewDashboardService(userRepo, enrollmentRepo, formationRepo, eventRepo)

	user := &domain.User{ID: "u1", FirstName: "Awa", LastName: "Diop", Email: "awa@example.sn"}
	enrollment := &domain.Enrollment{ID: "en1", Status: domain.EnrollmentStatusApproved}
	now := time.Now()

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	enrollmentRepo.EXPECT().GetByUser(mock.Anything, "u1").Return(enrollment, nil)
	formationRepo.EXPECT().List(mock.Anything).Return([]*domain.Formation{
		{ID: "f1", Title: "Formalisation", Registrations: []domain.Registration{
			{ID: "r1", UserID: "u1", Status: domain.RegistrationStatusApproved, RegisteredAt: now},
			{ID: "r2", UserID: "u2", Status: domain.RegistrationStatusPending, RegisteredAt: now},
		}},
	}, nil)
	eventRepo.EXPECT().List(mock.Anything).Return([]*domain.Event{
		{ID: "e1", Title: "Forum PME", Registrations: []domain.EventRegistration{
			{Registration: domain.Registration{ID: "r3", UserID: "u1", Status: domain.RegistrationStatusPaid, RegisteredAt: now}},
		}},
	}, nil)

	data, err := svc.MyData(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "u1", data.User.ID)
	assert.Same(t, enrollment, data.Enrollment)
	require.Len(t, data.MyFormations, 1)
	assert.Equal(t, domain.RegistrationStatusApproved, data.MyFormations[0].Status)
	require.Len(t, data.MyEvents, 1)
	assert.Equal(t, domain.RegistrationStatusPaid, data.MyEvents[0].Status)
}

func TestDashboardService_MyData_NoEnrollment(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	enrollmentRepo := mocks.NewMockEnrollmentRepo(t)
	formationRepo := mocks.NewMockFormationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)

	svc := NewDashboardService(userRepo, enrollmentRepo, formationRepo, eventRepo)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	enrollmentRepo.EXPECT().GetByUser(mock.Anything, "u1").Return(nil, domain.ErrEnrollmentNotFound)
	formationRepo.EXPECT().List(mock.Anything).Return(nil, nil)
	eventRepo.EXPECT().List(mock.Anything).Return(nil, nil)

	data, err := svc.MyData(context.Background(), "u1")

	require.NoError(t, err)
	assert.Nil(t, data.Enrollment)
	assert.Empty(t, data.MyFormations)
	assert.Empty(t, data.MyEvents)
}
