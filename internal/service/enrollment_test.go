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

func newEnrollmentService(t *testing.T) (*mocks.MockEnrollmentRepo, *mocks.MockNotifier, *EnrollmentService) {
	t.Helper()
	enrollmentRepo := mocks.NewMockEnrollmentRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewEnrollmentService(enrollmentRepo, notifier, newTestLogger(t))
	return enrollmentRepo, notifier, svc
}

func TestEnrollmentService_Submit_Success(t *testing.T) {
	enrollmentRepo, _, svc := newEnrollmentService(t)

	enrollmentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	enrollment, err := svc.Submit(context.Background(), domain.SubmitEnrollmentInput{
		FirstName: "Awa",
		LastName:  "Diop",
		Email:     "awa@example.sn",
		Phone:     "+221771234567",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EnrollmentStatusPending, enrollment.Status)
	assert.NotEmpty(t, enrollment.ID)
}

func TestEnrollmentService_Submit_MissingPhone(t *testing.T) {
	_, _, svc := newEnrollmentService(t)

	_, err := svc.Submit(context.Background(), domain.SubmitEnrollmentInput{
		FirstName: "Awa",
		LastName:  "Diop",
		Email:     "awa@example.sn",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEnrollmentService_UpdateStatus_ApprovedNotifiesApplicant(t *testing.T) {
	enrollmentRepo, notifier, svc := newEnrollmentService(t)

	approved := &domain.Enrollment{ID: "en1", Email: "awa@example.sn", Status: domain.EnrollmentStatusApproved}
	enrollmentRepo.EXPECT().UpdateStatus(mock.Anything, "en1", domain.EnrollmentStatusApproved).Return(approved, nil)
	notifier.EXPECT().NotifyEnrollmentDecision(mock.Anything, approved).Return()

	result, err := svc.UpdateStatus(context.Background(), "en1", domain.EnrollmentStatusApproved)

	require.NoError(t, err)
	assert.Equal(t, domain.EnrollmentStatusApproved, result.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestEnrollmentService_UpdateStatus_BackToPendingStaysQuiet(t *testing.T) {
	enrollmentRepo, _, svc := newEnrollmentService(t)

	pending := &domain.Enrollment{ID: "en1", Status: domain.EnrollmentStatusPending}
	enrollmentRepo.EXPECT().UpdateStatus(mock.Anything, "en1", domain.EnrollmentStatusPending).Return(pending, nil)

	_, err := svc.UpdateStatus(context.Background(), "en1", domain.EnrollmentStatusPending)

	require.NoError(t, err)
}

func TestEnrollmentService_UpdateStatus_Unknown(t *testing.T) {
	_, _, svc := newEnrollmentService(t)

	_, err := svc.UpdateStatus(context.Background(), "en1", "archived")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEnrollmentService_MyStatus_Anonymous(t *testing.T) {
	_, _, svc := newEnrollmentService(t)

	_, err := svc.MyStatus(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestEnrollmentService_MyStatus_NotFound(t *testing.T) {
	enrollmentRepo, _, svc := newEnrollmentService(t)

	enrollmentRepo.EXPECT().GetByUser(mock.Anything, "u1").Return(nil, domain.ErrEnrollmentNotFound)

	_, err := svc.MyStatus(context.Background(), "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEnrollmentNotFound)
}
