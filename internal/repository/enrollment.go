package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EnrollmentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEnrollmentRepo(db *dbpg.DB) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const enrollmentColumns = `id, COALESCE(user_id, ''), first_name, last_name, email,
						   phone, COALESCE(company, ''), COALESCE(message, ''),
						   status, created_at, updated_at`

func (r *EnrollmentRepository) Create(ctx context.Context, e *domain.Enrollment) error {
	query := `INSERT INTO enrollments
				(id, user_id, first_name, last_name, email, phone, company, message, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, nullString(e.UserID), e.FirstName, e.LastName, e.Email,
		e.Phone, nullString(e.Company), nullString(e.Message), e.Status, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert enrollment: %w", err)
	}
	e.UpdatedAt = e.CreatedAt

	return nil
}

func (r *EnrollmentRepository) GetByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	query := fmt.Sprintf(`SELECT %s FROM enrollments WHERE id = $1`, enrollmentColumns)
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get enrollment: %w", err)
	}

	return scanEnrollment(row.Scan)
}

// GetByUser returns the user's most recent application.
func (r *EnrollmentRepository) GetByUser(ctx context.Context, userID string) (*domain.Enrollment, error) {
	query := fmt.Sprintf(`SELECT %s FROM enrollments
						  WHERE user_id = $1
						  ORDER BY created_at DESC
						  LIMIT 1`, enrollmentColumns)
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get enrollment by user: %w", err)
	}

	return scanEnrollment(row.Scan)
}

func (r *EnrollmentRepository) List(ctx context.Context) ([]*domain.Enrollment, error) {
	query := fmt.Sprintf(`SELECT %s FROM enrollments ORDER BY created_at DESC`, enrollmentColumns)
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	defer rows.Close()

	var res []*domain.Enrollment
	for rows.Next() {
		e, err := scanEnrollment(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EnrollmentRepository) UpdateStatus(ctx context.Context, id string, status domain.EnrollmentStatus) (*domain.Enrollment, error) {
	query := `UPDATE enrollments SET status = $1, updated_at = now() WHERE id = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, status, id)
	if err != nil {
		return nil, fmt.Errorf("update enrollment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("enrollment rows affected: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrEnrollmentNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *EnrollmentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete enrollment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("enrollment rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrEnrollmentNotFound
	}

	return nil
}

func (r *EnrollmentRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM enrollments WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete enrollments by user: %w", err)
	}

	return nil
}

func scanEnrollment(scan func(dest ...any) error) (*domain.Enrollment, error) {
	var e domain.Enrollment
	if err := scan(
		&e.ID, &e.UserID, &e.FirstName, &e.LastName, &e.Email,
		&e.Phone, &e.Company, &e.Message, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("scan enrollment: %w", err)
	}

	return &e, nil
}
