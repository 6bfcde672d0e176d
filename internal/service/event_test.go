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

func newEventService(t *testing.T) (*mocks.MockEventRepo, *mocks.MockUserRepo, *mocks.MockEventCache, *mocks.MockNotifier, *EventService) {
	t.Helper()
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	cache := mocks.NewMockEventCache(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewEventService(eventRepo, userRepo, cache, notifier, newTestLogger(t))
	return eventRepo, userRepo, cache, notifier, svc
}

func validEventInput() domain.CreateEventInput {
	start := time.Now().Add(14 * 24 * time.Hour)
	return domain.CreateEventInput{
		Title:           "Foire Agroalimentaire de Dakar 2026",
		Description:     "Trois jours d'exposition",
		Type:            domain.EventTypeFair,
		DateStart:       start,
		DateEnd:         start.Add(72 * time.Hour),
		Location:        "CICES, Dakar",
		MaxParticipants: 300,
		CreatedBy:       "a1",
	}
}

func TestEventService_Create_GeneratesSlug(t *testing.T) {
	eventRepo, _, _, _, svc := newEventService(t)

	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), validEventInput())

	require.NoError(t, err)
	assert.Equal(t, "foire-agroalimentaire-de-dakar-2026", event.Slug)
	assert.Equal(t, domain.EventTypeFair, event.Type)
}

func TestEventService_Create_DefaultsToSeminar(t *testing.T) {
	eventRepo, _, _, _, svc := newEventService(t)

	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := validEventInput()
	input.Type = ""

	event, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.EventTypeSeminar, event.Type)
}

func TestEventService_Create_EndBeforeStart(t *testing.T) {
	_, _, _, _, svc := newEventService(t)

	input := validEventInput()
	input.DateEnd = input.DateStart.Add(-time.Hour)

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_SlugCollision(t *testing.T) {
	eventRepo, _, _, _, svc := newEventService(t)

	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrSlugTaken)

	_, err := svc.Create(context.Background(), validEventInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlugTaken)
}

func TestEventService_GetBySlug_CacheHit(t *testing.T) {
	_, _, cache, _, svc := newEventService(t)

	cached := &domain.Event{ID: "e1", Slug: "forum-pme"}
	cache.EXPECT().GetEvent(mock.Anything, "forum-pme").Return(cached, nil)

	event, err := svc.GetBySlug(context.Background(), "forum-pme")

	require.NoError(t, err)
	assert.Same(t, cached, event)
}

func TestEventService_GetBySlug_CacheMiss(t *testing.T) {
	eventRepo, _, cache, _, svc := newEventService(t)

	stored := &domain.Event{ID: "e1", Slug: "forum-pme"}
	cache.EXPECT().GetEvent(mock.Anything, "forum-pme").Return(nil, nil)
	eventRepo.EXPECT().GetBySlug(mock.Anything, "forum-pme").Return(stored, nil)
	cache.EXPECT().SetEvent(mock.Anything, stored).Return(nil)

	event, err := svc.GetBySlug(context.Background(), "forum-pme")

	require.NoError(t, err)
	assert.Same(t, stored, event)
}

func TestEventService_GetBySlug_NotFound(t *testing.T) {
	eventRepo, _, cache, _, svc := newEventService(t)

	cache.EXPECT().GetEvent(mock.Anything, "missing").Return(nil, nil)
	eventRepo.EXPECT().GetBySlug(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetBySlug(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Register_NoCapacityGate(t *testing.T) {
	eventRepo, userRepo, cache, notifier, svc := newEventService(t)

	// One seat declared, one registration already present. Event
	// registration still goes through: max_participants is not enforced.
	event := &domain.Event{
		ID: "e1", Slug: "forum-pme", Title: "Forum PME",
		DateStart: time.Now(), Location: "Dakar", MaxParticipants: 1,
		Registrations: []domain.EventRegistration{
			{Registration: domain.Registration{ID: "r1", UserID: "u1", Status: domain.RegistrationStatusApproved}},
		},
	}
	user := &domain.User{ID: "u2", FirstName: "Moussa"}

	eventRepo.EXPECT().GetBySlug(mock.Anything, "forum-pme").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(user, nil)
	eventRepo.EXPECT().AddRegistration(mock.Anything, "forum-pme", mock.Anything).Return(nil)
	cache.EXPECT().DeleteEvent(mock.Anything, "forum-pme").Return(nil)
	notifier.EXPECT().NotifyRegistrationConfirmed(mock.Anything, user, "Forum PME", event.DateStart, "Dakar").Return()
	notifier.EXPECT().NotifyAdminNewRegistration(mock.Anything, user, "Forum PME").Return()

	reg, err := svc.Register(context.Background(), "forum-pme", "u2")

	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusPending, reg.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestEventService_Register_Duplicate(t *testing.T) {
	eventRepo, userRepo, _, _, svc := newEventService(t)

	eventRepo.EXPECT().GetBySlug(mock.Anything, "forum-pme").Return(&domain.Event{ID: "e1", Slug: "forum-pme"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	eventRepo.EXPECT().AddRegistration(mock.Anything, "forum-pme", mock.Anything).Return(domain.ErrAlreadyRegistered)

	_, err := svc.Register(context.Background(), "forum-pme", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestEventService_MarkPaid_Success(t *testing.T) {
	eventRepo, _, cache, _, svc := newEventService(t)

	eventRepo.EXPECT().
		MarkRegistrationPaid(mock.Anything, "forum-pme", "r1", "wave", mock.Anything).
		Return(nil)
	cache.EXPECT().DeleteEvent(mock.Anything, "forum-pme").Return(nil)

	err := svc.MarkPaid(context.Background(), "forum-pme", "r1", "wave")

	require.NoError(t, err)
}

func TestEventService_MarkPaid_NotPayable(t *testing.T) {
	eventRepo, _, _, _, svc := newEventService(t)

	eventRepo.EXPECT().
		MarkRegistrationPaid(mock.Anything, "forum-pme", "r1", "wave", mock.Anything).
		Return(domain.ErrRegistrationNotPayable)

	err := svc.MarkPaid(context.Background(), "forum-pme", "r1", "wave")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationNotPayable)
}
