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
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newFormationService(t *testing.T) (*mocks.MockFormationRepo, *mocks.MockUserRepo, *mocks.MockNotifier, *FormationService) {
	t.Helper()
	formationRepo := mocks.NewMockFormationRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewFormationService(formationRepo, userRepo, notifier, newTestLogger(t))
	return formationRepo, userRepo, notifier, svc
}

func validFormationInput() domain.CreateFormationInput {
	return domain.CreateFormationInput{
		Title:       "Transformation des céréales locales",
		Description: "Atelier pratique",
		Date:        time.Now().Add(30 * 24 * time.Hour),
		Location:    "Dakar",
		Duration:    "3 jours",
		Category:    domain.CategoryCerealProcessing,
		MaxSeats:    20,
	}
}

func TestFormationService_Create_Success(t *testing.T) {
	formationRepo, _, _, svc := newFormationService(t)

	formationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	formation, err := svc.Create(context.Background(), validFormationInput())

	require.NoError(t, err)
	assert.NotEmpty(t, formation.ID)
	assert.Equal(t, domain.FormationStatusUpcoming, formation.Status)
	assert.Empty(t, formation.Registrations)
	assert.Empty(t, formation.EnrolledUsers)
}

func TestFormationService_Create_UnknownCategory(t *testing.T) {
	_, _, _, svc := newFormationService(t)

	input := validFormationInput()
	input.Category = "basket-weaving"

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFormationService_Create_NoSeats(t *testing.T) {
	_, _, _, svc := newFormationService(t)

	input := validFormationInput()
	input.MaxSeats = 0

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFormationService_List_AdminSeesEverything(t *testing.T) {
	formationRepo, _, _, svc := newFormationService(t)

	formations := []*domain.Formation{
		{ID: "f1", Status: domain.FormationStatusUpcoming, Registrations: []domain.Registration{
			{ID: "r1", UserID: "u1", UserName: "Awa Diop", UserEmail: "awa@example.sn"},
		}},
		{ID: "f2", Status: domain.FormationStatusCompleted},
	}
	formationRepo.EXPECT().List(mock.Anything).Return(formations, nil)

	result, err := svc.List(context.Background(), &domain.Viewer{UserID: "a1", Role: domain.RoleAdmin})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Awa Diop", result[0].Registrations[0].UserName)
}

func TestFormationService_List_MemberSeesOwnEntriesOnly(t *testing.T) {
	formationRepo, _, _, svc := newFormationService(t)

	formations := []*domain.Formation{
		{ID: "f1", Status: domain.FormationStatusUpcoming, Registrations: []domain.Registration{
			{ID: "r1", UserID: "u1", UserName: "Awa Diop", UserEmail: "awa@example.sn"},
			{ID: "r2", UserID: "u2", UserName: "Moussa Ba", UserEmail: "moussa@example.sn"},
		}},
		{ID: "f2", Status: domain.FormationStatusCompleted},
	}
	formationRepo.EXPECT().List(mock.Anything).Return(formations, nil)

	result, err := svc.List(context.Background(), &domain.Viewer{UserID: "u1", Role: domain.RoleMember})

	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Len(t, result[0].Registrations, 1)
	assert.Equal(t, "r1", result[0].Registrations[0].ID)
	assert.Empty(t, result[0].Registrations[0].UserName)
	assert.Empty(t, result[0].Registrations[0].UserEmail)
}

func TestFormationService_List_AnonymousSeesNoRoster(t *testing.T) {
	formationRepo, _, _, svc := newFormationService(t)

	formations := []*domain.Formation{
		{ID: "f1", Status: domain.FormationStatusOngoing, Registrations: []domain.Registration{
			{ID: "r1", UserID: "u1"},
		}},
	}
	formationRepo.EXPECT().List(mock.Anything).Return(formations, nil)

	result, err := svc.List(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Empty(t, result[0].Registrations)
}

func TestFormationService_Register_Success(t *testing.T) {
	formationRepo, userRepo, notifier, svc := newFormationService(t)

	formation := &domain.Formation{ID: "f1", Title: "Formalisation", Date: time.Now(), Location: "Thiès"}
	user := &domain.User{ID: "u1", FirstName: "Awa", Email: "awa@example.sn"}

	formationRepo.EXPECT().GetByID(mock.Anything, "f1").Return(formation, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	formationRepo.EXPECT().AddRegistration(mock.Anything, "f1", mock.Anything).Return(nil)
	notifier.EXPECT().NotifyRegistrationConfirmed(mock.Anything, user, "Formalisation", formation.Date, "Thiès").Return()
	notifier.EXPECT().NotifyAdminNewRegistration(mock.Anything, user, "Formalisation").Return()

	reg, err := svc.Register(context.Background(), "f1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusPending, reg.Status)
	assert.Equal(t, "u1", reg.UserID)
	assert.NotEmpty(t, reg.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestFormationService_Register_FormationNotFound(t *testing.T) {
	formationRepo, _, _, svc := newFormationService(t)

	formationRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrFormationNotFound)

	_, err := svc.Register(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFormationNotFound)
}

func TestFormationService_Register_UserNotFound(t *testing.T) {
	formationRepo, userRepo, _, svc := newFormationService(t)

	formationRepo.EXPECT().GetByID(mock.Anything, "f1").Return(&domain.Formation{ID: "f1"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Register(context.Background(), "f1", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestFormationService_Register_Duplicate(t *testing.T) {
	formationRepo, userRepo, _, svc := newFormationService(t)

	formationRepo.EXPECT().GetByID(mock.Anything, "f1").Return(&domain.Formation{ID: "f1"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	formationRepo.EXPECT().AddRegistration(mock.Anything, "f1", mock.Anything).Return(domain.ErrAlreadyRegistered)

	_, err := svc.Register(context.Background(), "f1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestFormationService_Register_SeatsExhausted(t *testing.T) {
	formationRepo, userRepo, _, svc := newFormationService(t)

	formationRepo.EXPECT().GetByID(mock.Anything, "f1").Return(&domain.Formation{ID: "f1", MaxSeats: 1}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2"}, nil)
	formationRepo.EXPECT().AddRegistration(mock.Anything, "f1", mock.Anything).Return(domain.ErrNoSeatsAvailable)

	_, err := svc.Register(context.Background(), "f1", "u2")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoSeatsAvailable)
}

func TestFormationService_Register_Anonymous(t *testing.T) {
	_, _, _, svc := newFormationService(t)

	_, err := svc.Register(context.Background(), "f1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestFormationService_UpdateRegistrationStatus_Approve(t *testing.T) {
	formationRepo, _, _, svc := newFormationService(t)

	formationRepo.EXPECT().
		UpdateRegistrationStatus(mock.Anything, "f1", "r1", domain.RegistrationStatusApproved).
		Return(nil)

	err := svc.UpdateRegistrationStatus(context.Background(), "f1", "r1", domain.RegistrationStatusApproved)

	require.NoError(t, err)
}

func TestFormationService_UpdateRegistrationStatus_SeatLimitReached(t *testing.T) {
	formationRepo, _, _, svc := newFormationService(t)

	formationRepo.EXPECT().
		UpdateRegistrationStatus(mock.Anything, "f1", "r2", domain.RegistrationStatusApproved).
		Return(domain.ErrNoSeatsAvailable)

	err := svc.UpdateRegistrationStatus(context.Background(), "f1", "r2", domain.RegistrationStatusApproved)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoSeatsAvailable)
}

func TestFormationService_UpdateRegistrationStatus_InvalidStatus(t *testing.T) {
	_, _, _, svc := newFormationService(t)

	err := svc.UpdateRegistrationStatus(context.Background(), "f1", "r1", domain.RegistrationStatusPaid)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
