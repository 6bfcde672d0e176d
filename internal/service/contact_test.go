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

func newContactService(t *testing.T) (*mocks.MockContactRepo, *mocks.MockNotifier, *ContactService) {
	t.Helper()
	contactRepo := mocks.NewMockContactRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewContactService(contactRepo, notifier, newTestLogger(t))
	return contactRepo, notifier, svc
}

func TestContactService_Submit_Success(t *testing.T) {
	contactRepo, notifier, svc := newContactService(t)

	contactRepo.EXPECT().CreateContact(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyContactReceived(mock.Anything, mock.Anything).Return()

	contact, err := svc.Submit(context.Background(), domain.SubmitContactInput{
		Name:    "Moussa Ba",
		Email:   "Moussa@Example.SN",
		Message: "Je voudrais plus d'informations",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, contact.TicketID)
	assert.Equal(t, "moussa@example.sn", contact.Email)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestContactService_Submit_MissingMessage(t *testing.T) {
	_, _, svc := newContactService(t)

	_, err := svc.Submit(context.Background(), domain.SubmitContactInput{
		Name:  "Moussa Ba",
		Email: "moussa@example.sn",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestContactService_UpdateStatus_Success(t *testing.T) {
	contactRepo, _, svc := newContactService(t)

	contactRepo.EXPECT().
		UpdateStatus(mock.Anything, "c1", domain.ContactStatusResolved).
		Return(&domain.Contact{ID: "c1", Status: domain.ContactStatusResolved}, nil)

	contact, err := svc.UpdateStatus(context.Background(), "c1", domain.ContactStatusResolved)

	require.NoError(t, err)
	assert.Equal(t, domain.ContactStatusResolved, contact.Status)
}

func TestContactService_UpdateStatus_UnknownStatus(t *testing.T) {
	_, _, svc := newContactService(t)

	_, err := svc.UpdateStatus(context.Background(), "c1", "archived")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestContactService_UpdateStatus_NotFound(t *testing.T) {
	contactRepo, _, svc := newContactService(t)

	contactRepo.EXPECT().
		UpdateStatus(mock.Anything, "ghost", domain.ContactStatusInProgress).
		Return(nil, domain.ErrContactNotFound)

	_, err := svc.UpdateStatus(context.Background(), "ghost", domain.ContactStatusInProgress)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}

func TestContactService_Subscribe_Success(t *testing.T) {
	contactRepo, notifier, svc := newContactService(t)

	contactRepo.EXPECT().CreateSubscription(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyNewsletterWelcome(mock.Anything, "awa@example.sn").Return()

	sub, err := svc.Subscribe(context.Background(), " Awa@Example.SN ")

	require.NoError(t, err)
	assert.Equal(t, "awa@example.sn", sub.Email)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestContactService_Subscribe_Duplicate(t *testing.T) {
	contactRepo, _, svc := newContactService(t)

	contactRepo.EXPECT().CreateSubscription(mock.Anything, mock.Anything).Return(domain.ErrAlreadySubscribed)

	_, err := svc.Subscribe(context.Background(), "awa@example.sn")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadySubscribed)
}

func TestContactService_Subscribe_InvalidEmail(t *testing.T) {
	_, _, svc := newContactService(t)

	_, err := svc.Subscribe(context.Background(), "not-an-email")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
