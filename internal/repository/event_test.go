package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	eventLockRe    = `SELECT id FROM events`
	updatePaidRe   = `UPDATE event_registrations`
	regExistsRe    = `SELECT EXISTS`
	insertEventReg = `INSERT INTO event_registrations`
)

func expectEventLock(mock sqlmock.Sqlmock, slug, eventID string) {
	mock.ExpectQuery(eventLockRe).
		WithArgs(slug).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(eventID))
}

// A freshly registered (pending) entry is payable straight away: the
// event workflow has no approval step in between.
func TestEventRepository_MarkRegistrationPaid_Pending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectBegin()
	expectEventLock(mock, "forum-pme", "e1")
	mock.ExpectExec(updatePaidRe).
		WithArgs("paid", sqlmock.AnyArg(), "wave", "r1", "e1", "pending", "approved").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.MarkRegistrationPaid(context.Background(), "forum-pme", "r1", "wave", time.Now().UTC())

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

// An entry outside pending/approved (rejected, or already paid) is
// refused rather than overwritten.
func TestEventRepository_MarkRegistrationPaid_NotPayable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectBegin()
	expectEventLock(mock, "forum-pme", "e1")
	mock.ExpectExec(updatePaidRe).
		WithArgs("paid", sqlmock.AnyArg(), "wave", "r1", "e1", "pending", "approved").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regExistsRe).
		WithArgs("r1", "e1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := repo.MarkRegistrationPaid(context.Background(), "forum-pme", "r1", "wave", time.Now().UTC())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationNotPayable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_MarkRegistrationPaid_RegistrationNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectBegin()
	expectEventLock(mock, "forum-pme", "e1")
	mock.ExpectExec(updatePaidRe).
		WithArgs("paid", sqlmock.AnyArg(), "wave", "ghost", "e1", "pending", "approved").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regExistsRe).
		WithArgs("ghost", "e1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	err := repo.MarkRegistrationPaid(context.Background(), "forum-pme", "ghost", "wave", time.Now().UTC())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_MarkRegistrationPaid_EventNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(eventLockRe).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.MarkRegistrationPaid(context.Background(), "missing", "r1", "wave", time.Now().UTC())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Duplicate event registrations are caught before the insert.
func TestEventRepository_AddRegistration_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectBegin()
	expectEventLock(mock, "forum-pme", "e1")
	mock.ExpectQuery(regExistsRe).
		WithArgs("e1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	reg := &domain.EventRegistration{Registration: domain.Registration{
		ID: "r1", UserID: "u1", Status: domain.RegistrationStatusPending,
	}}
	err := repo.AddRegistration(context.Background(), "forum-pme", reg)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_AddRegistration_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectBegin()
	expectEventLock(mock, "forum-pme", "e1")
	mock.ExpectQuery(regExistsRe).
		WithArgs("e1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(insertEventReg).
		WithArgs("r1", "e1", "u1", "pending", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	reg := &domain.EventRegistration{Registration: domain.Registration{
		ID: "r1", UserID: "u1", Status: domain.RegistrationStatusPending, RegisteredAt: time.Now().UTC(),
	}}
	require.NoError(t, repo.AddRegistration(context.Background(), "forum-pme", reg))
	require.NoError(t, mock.ExpectationsWereMet())
}
