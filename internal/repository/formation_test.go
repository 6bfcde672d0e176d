package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &dbpg.DB{Master: db}, mock
}

const (
	seatQueryRe   = `SELECT max_seats FROM formations`
	regQueryRe    = `SELECT user_id, status FROM formation_registrations`
	dupQueryRe    = `SELECT EXISTS`
	updateRegRe   = `UPDATE formation_registrations SET status`
	insertRegRe   = `INSERT INTO formation_registrations`
	addEnrollRe   = `INSERT INTO formation_enrollments`
	dropEnrollRe  = `DELETE FROM formation_enrollments`
	countQueryStr = `SELECT COUNT(*) FROM formation_registrations`
)

func expectSeatLock(mock sqlmock.Sqlmock, formationID string, maxSeats int) {
	mock.ExpectQuery(seatQueryRe).
		WithArgs(formationID).
		WillReturnRows(sqlmock.NewRows([]string{"max_seats"}).AddRow(maxSeats))
}

func expectRegistration(mock sqlmock.Sqlmock, regID, formationID, userID, status string) {
	mock.ExpectQuery(regQueryRe).
		WithArgs(regID, formationID).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "status"}).AddRow(userID, status))
}

func expectApprovedCount(mock sqlmock.Sqlmock, formationID string, count int) {
	mock.ExpectQuery(regexp.QuoteMeta(countQueryStr)).
		WithArgs(formationID, "approved").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
}

// A single-seat formation: the first approval fills the seat, the second
// is refused, rejecting the first frees the seat and the second approval
// then goes through. The enrolled projection follows every transition.
func TestFormationRepository_UpdateRegistrationStatus_SeatCycle(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFormationRepo(db)
	ctx := context.Background()

	// Approve r1 into the only seat.
	mock.ExpectBegin()
	expectSeatLock(mock, "f1", 1)
	expectRegistration(mock, "r1", "f1", "u1", "pending")
	expectApprovedCount(mock, "f1", 0)
	mock.ExpectExec(updateRegRe).
		WithArgs("approved", "r1", "f1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(addEnrollRe).
		WithArgs("f1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.UpdateRegistrationStatus(ctx, "f1", "r1", domain.RegistrationStatusApproved))

	// r2 cannot be approved while the seat is taken.
	mock.ExpectBegin()
	expectSeatLock(mock, "f1", 1)
	expectRegistration(mock, "r2", "f1", "u2", "pending")
	expectApprovedCount(mock, "f1", 1)
	mock.ExpectRollback()

	err := repo.UpdateRegistrationStatus(ctx, "f1", "r2", domain.RegistrationStatusApproved)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoSeatsAvailable)

	// Rejecting r1 frees the seat and drops u1 from the projection.
	mock.ExpectBegin()
	expectSeatLock(mock, "f1", 1)
	expectRegistration(mock, "r1", "f1", "u1", "approved")
	mock.ExpectExec(updateRegRe).
		WithArgs("rejected", "r1", "f1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(dropEnrollRe).
		WithArgs("f1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.UpdateRegistrationStatus(ctx, "f1", "r1", domain.RegistrationStatusRejected))

	// The freed seat now takes r2.
	mock.ExpectBegin()
	expectSeatLock(mock, "f1", 1)
	expectRegistration(mock, "r2", "f1", "u2", "pending")
	expectApprovedCount(mock, "f1", 0)
	mock.ExpectExec(updateRegRe).
		WithArgs("approved", "r2", "f1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(addEnrollRe).
		WithArgs("f1", "u2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.UpdateRegistrationStatus(ctx, "f1", "r2", domain.RegistrationStatusApproved))

	require.NoError(t, mock.ExpectationsWereMet())
}

// Re-approving an already approved entry skips the seat count: the seat
// it occupies is its own.
func TestFormationRepository_UpdateRegistrationStatus_ReapproveSkipsCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFormationRepo(db)

	mock.ExpectBegin()
	expectSeatLock(mock, "f1", 1)
	expectRegistration(mock, "r1", "f1", "u1", "approved")
	mock.ExpectExec(updateRegRe).
		WithArgs("approved", "r1", "f1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(addEnrollRe).
		WithArgs("f1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.UpdateRegistrationStatus(context.Background(), "f1", "r1", domain.RegistrationStatusApproved))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFormationRepository_UpdateRegistrationStatus_RegistrationNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFormationRepo(db)

	mock.ExpectBegin()
	expectSeatLock(mock, "f1", 5)
	mock.ExpectQuery(regQueryRe).
		WithArgs("ghost", "f1").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.UpdateRegistrationStatus(context.Background(), "f1", "ghost", domain.RegistrationStatusApproved)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFormationRepository_AddRegistration_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFormationRepo(db)

	mock.ExpectBegin()
	expectSeatLock(mock, "f1", 2)
	mock.ExpectQuery(dupQueryRe).
		WithArgs("f1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	expectApprovedCount(mock, "f1", 1)
	mock.ExpectExec(insertRegRe).
		WithArgs("r1", "f1", "u1", "pending", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	reg := &domain.Registration{
		ID:           "r1",
		UserID:       "u1",
		Status:       domain.RegistrationStatusPending,
		RegisteredAt: time.Now().UTC(),
	}
	require.NoError(t, repo.AddRegistration(context.Background(), "f1", reg))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFormationRepository_AddRegistration_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFormationRepo(db)

	mock.ExpectBegin()
	expectSeatLock(mock, "f1", 2)
	mock.ExpectQuery(dupQueryRe).
		WithArgs("f1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	reg := &domain.Registration{ID: "r1", UserID: "u1", Status: domain.RegistrationStatusPending}
	err := repo.AddRegistration(context.Background(), "f1", reg)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	require.NoError(t, mock.ExpectationsWereMet())
}

// The registration-time gate only blocks once approvals have already
// consumed every seat.
func TestFormationRepository_AddRegistration_Full(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFormationRepo(db)

	mock.ExpectBegin()
	expectSeatLock(mock, "f1", 1)
	mock.ExpectQuery(dupQueryRe).
		WithArgs("f1", "u2").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	expectApprovedCount(mock, "f1", 1)
	mock.ExpectRollback()

	reg := &domain.Registration{ID: "r2", UserID: "u2", Status: domain.RegistrationStatusPending}
	err := repo.AddRegistration(context.Background(), "f1", reg)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoSeatsAvailable)
	require.NoError(t, mock.ExpectationsWereMet())
}
