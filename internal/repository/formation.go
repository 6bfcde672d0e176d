package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type FormationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewFormationRepo(db *dbpg.DB) *FormationRepository {
	return &FormationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *FormationRepository) Create(ctx context.Context, f *domain.Formation) error {
	query := `INSERT INTO formations
				(id, title, description, date, location, duration, category, status,
				 max_seats, price_non_member, image, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		f.ID, f.Title, f.Description, f.Date, f.Location, f.Duration,
		f.Category, f.Status, f.MaxSeats, f.PriceNonMember, nullString(f.Image), now, now,
	)
	if err != nil {
		return fmt.Errorf("insert formation: %w", err)
	}
	f.CreatedAt = now
	f.UpdatedAt = now

	return nil
}

func (r *FormationRepository) GetByID(ctx context.Context, id string) (*domain.Formation, error) {
	query := `SELECT id, title, description, date, location, duration, category, status,
					 max_seats, price_non_member, COALESCE(image, ''), created_at, updated_at
			  FROM formations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get formation: %w", err)
	}

	var f domain.Formation
	if err = row.Scan(
		&f.ID, &f.Title, &f.Description, &f.Date, &f.Location, &f.Duration,
		&f.Category, &f.Status, &f.MaxSeats, &f.PriceNonMember, &f.Image,
		&f.CreatedAt, &f.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFormationNotFound
		}
		return nil, fmt.Errorf("scan formation: %w", err)
	}

	if err = r.loadRoster(ctx, &f); err != nil {
		return nil, err
	}

	return &f, nil
}

func (r *FormationRepository) loadRoster(ctx context.Context, f *domain.Formation) error {
	rosterQuery := `SELECT fr.id, fr.user_id, fr.status, fr.registered_at,
						   u.first_name || ' ' || u.last_name, u.email
					FROM formation_registrations fr
					JOIN users u ON u.id = fr.user_id
					WHERE fr.formation_id = $1
					ORDER BY fr.registered_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, rosterQuery, f.ID)
	if err != nil {
		return fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	f.Registrations = []domain.Registration{}
	for rows.Next() {
		var reg domain.Registration
		if err = rows.Scan(&reg.ID, &reg.UserID, &reg.Status, &reg.RegisteredAt, &reg.UserName, &reg.UserEmail); err != nil {
			return fmt.Errorf("scan registration: %w", err)
		}
		f.Registrations = append(f.Registrations, reg)
	}
	if err = rows.Err(); err != nil {
		return err
	}

	enrolledQuery := `SELECT u.id, u.first_name, u.last_name, u.email
					  FROM formation_enrollments fe
					  JOIN users u ON u.id = fe.user_id
					  WHERE fe.formation_id = $1
					  ORDER BY u.last_name, u.first_name`
	enrolled, err := r.db.QueryWithRetry(ctx, r.strategy, enrolledQuery, f.ID)
	if err != nil {
		return fmt.Errorf("list enrolled users: %w", err)
	}
	defer enrolled.Close()

	f.EnrolledUsers = []domain.UserSummary{}
	for enrolled.Next() {
		var u domain.UserSummary
		if err = enrolled.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email); err != nil {
			return fmt.Errorf("scan enrolled user: %w", err)
		}
		f.EnrolledUsers = append(f.EnrolledUsers, u)
	}

	return enrolled.Err()
}

func (r *FormationRepository) List(ctx context.Context) ([]*domain.Formation, error) {
	query := `SELECT id, title, description, date, location, duration, category, status,
					 max_seats, price_non_member, COALESCE(image, ''), created_at, updated_at
			  FROM formations
			  ORDER BY date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list formations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Formation
	for rows.Next() {
		var f domain.Formation
		if err = rows.Scan(
			&f.ID, &f.Title, &f.Description, &f.Date, &f.Location, &f.Duration,
			&f.Category, &f.Status, &f.MaxSeats, &f.PriceNonMember, &f.Image,
			&f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan formation: %w", err)
		}
		res = append(res, &f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for _, f := range res {
		if err = r.loadRoster(ctx, f); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func (r *FormationRepository) Update(ctx context.Context, id string, patch domain.UpdateFormationInput) (*domain.Formation, error) {
	sets := []string{"updated_at = now()"}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Date != nil {
		add("date", *patch.Date)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.Duration != nil {
		add("duration", *patch.Duration)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.MaxSeats != nil {
		// Shrinking below the approved count is applied as-is; there is
		// no eviction policy for already-approved registrations.
		add("max_seats", *patch.MaxSeats)
	}
	if patch.PriceNonMember != nil {
		add("price_non_member", *patch.PriceNonMember)
	}
	if patch.Image != nil {
		add("image", nullString(*patch.Image))
	}

	query := fmt.Sprintf(`UPDATE formations SET %s WHERE id = $1`, strings.Join(sets, ", "))
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update formation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("formation rows affected: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrFormationNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes the formation; the roster and the enrolled projection
// go with it through the foreign keys' ON DELETE CASCADE.
func (r *FormationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM formations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete formation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("formation rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrFormationNotFound
	}

	return nil
}

// AddRegistration runs the whole registration check-and-append as one
// transaction: the formation row is locked first, so the duplicate check
// and the soft capacity check cannot race a concurrent registration or
// approval on the same formation.
func (r *FormationRepository) AddRegistration(ctx context.Context, formationID string, reg *domain.Registration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var maxSeats int
	seatQuery := `SELECT max_seats FROM formations WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, seatQuery, formationID).Scan(&maxSeats); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrFormationNotFound
		}
		return fmt.Errorf("get max seats: %w", err)
	}

	var exists bool
	dupQuery := `SELECT EXISTS (
					SELECT 1 FROM formation_registrations
					WHERE formation_id = $1 AND user_id = $2)`
	if err = tx.QueryRowContext(ctx, dupQuery, formationID, reg.UserID).Scan(&exists); err != nil {
		return fmt.Errorf("check duplicate registration: %w", err)
	}
	if exists {
		return domain.ErrAlreadyRegistered
	}

	// Soft gate: only already-exhausted approvals block a new pending
	// entry. The authoritative gate stays at the approval transition.
	var approved int
	countQuery := `SELECT COUNT(*) FROM formation_registrations
				   WHERE formation_id = $1 AND status = $2`
	if err = tx.QueryRowContext(ctx, countQuery, formationID, domain.RegistrationStatusApproved).Scan(&approved); err != nil {
		return fmt.Errorf("count approved registrations: %w", err)
	}
	if !domain.CanApprove(approved, maxSeats) {
		return domain.ErrNoSeatsAvailable
	}

	insertQuery := `INSERT INTO formation_registrations (id, formation_id, user_id, status, registered_at)
					VALUES ($1, $2, $3, $4, $5)`
	if _, err = tx.ExecContext(ctx, insertQuery, reg.ID, formationID, reg.UserID, reg.Status, reg.RegisteredAt); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	return tx.Commit()
}

// UpdateRegistrationStatus applies the status transition and keeps the
// enrolled projection in step, all inside one transaction under a lock
// on the formation row. Approval fails with ErrNoSeatsAvailable when the
// seat limit is already consumed by other approved entries.
func (r *FormationRepository) UpdateRegistrationStatus(ctx context.Context, formationID, registrationID string, status domain.RegistrationStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var maxSeats int
	seatQuery := `SELECT max_seats FROM formations WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, seatQuery, formationID).Scan(&maxSeats); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrFormationNotFound
		}
		return fmt.Errorf("get max seats: %w", err)
	}

	var userID string
	var current domain.RegistrationStatus
	regQuery := `SELECT user_id, status FROM formation_registrations
				 WHERE id = $1 AND formation_id = $2`
	if err = tx.QueryRowContext(ctx, regQuery, registrationID, formationID).Scan(&userID, &current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRegistrationNotFound
		}
		return fmt.Errorf("get registration: %w", err)
	}

	if status == domain.RegistrationStatusApproved && current != domain.RegistrationStatusApproved {
		var approved int
		countQuery := `SELECT COUNT(*) FROM formation_registrations
					   WHERE formation_id = $1 AND status = $2`
		if err = tx.QueryRowContext(ctx, countQuery, formationID, domain.RegistrationStatusApproved).Scan(&approved); err != nil {
			return fmt.Errorf("count approved registrations: %w", err)
		}
		if !domain.CanApprove(approved, maxSeats) {
			return domain.ErrNoSeatsAvailable
		}
	}

	updateQuery := `UPDATE formation_registrations SET status = $1
					WHERE id = $2 AND formation_id = $3`
	if _, err = tx.ExecContext(ctx, updateQuery, status, registrationID, formationID); err != nil {
		return fmt.Errorf("update registration: %w", err)
	}

	switch status {
	case domain.RegistrationStatusApproved:
		enrollQuery := `INSERT INTO formation_enrollments (formation_id, user_id)
						VALUES ($1, $2)
						ON CONFLICT (formation_id, user_id) DO NOTHING`
		if _, err = tx.ExecContext(ctx, enrollQuery, formationID, userID); err != nil {
			return fmt.Errorf("add enrolled user: %w", err)
		}
	case domain.RegistrationStatusRejected:
		// Handles demotion of a previously approved entry.
		removeQuery := `DELETE FROM formation_enrollments
						WHERE formation_id = $1 AND user_id = $2`
		if _, err = tx.ExecContext(ctx, removeQuery, formationID, userID); err != nil {
			return fmt.Errorf("remove enrolled user: %w", err)
		}
	}

	return tx.Commit()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
