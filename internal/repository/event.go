package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const eventColumns = `id, title, slug, description, COALESCE(short_description, ''), type,
					  date_start, date_end, location, price_member, price_non_member,
					  max_participants, is_featured, sponsors, created_by, created_at, updated_at`

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events
				(id, title, slug, description, short_description, type, date_start, date_end,
				 location, price_member, price_non_member, max_participants, is_featured,
				 sponsors, created_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Slug, e.Description, nullString(e.ShortDescription), e.Type,
		e.DateStart, e.DateEnd, e.Location, e.PriceMember, e.PriceNonMember,
		e.MaxParticipants, e.IsFeatured, pq.Array(e.Sponsors), e.CreatedBy, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("insert event: %w", err)
	}
	e.CreatedAt = now
	e.UpdatedAt = now

	return nil
}

func (r *EventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE slug = $1`, eventColumns)

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, slug)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	if err = r.loadRoster(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events ORDER BY date_start DESC`, eventColumns)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for _, e := range res {
		if err = r.loadRoster(ctx, e); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func scanEvent(scan func(dest ...any) error) (*domain.Event, error) {
	var e domain.Event
	var sponsors pq.StringArray
	if err := scan(
		&e.ID, &e.Title, &e.Slug, &e.Description, &e.ShortDescription, &e.Type,
		&e.DateStart, &e.DateEnd, &e.Location, &e.PriceMember, &e.PriceNonMember,
		&e.MaxParticipants, &e.IsFeatured, &sponsors, &e.CreatedBy,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	e.Sponsors = sponsors

	return &e, nil
}

func (r *EventRepository) loadRoster(ctx context.Context, e *domain.Event) error {
	query := `SELECT er.id, er.user_id, er.status, er.registered_at,
					 er.paid_at, COALESCE(er.payment_method, ''),
					 u.first_name || ' ' || u.last_name, u.email
			  FROM event_registrations er
			  JOIN users u ON u.id = er.user_id
			  WHERE er.event_id = $1
			  ORDER BY er.registered_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, e.ID)
	if err != nil {
		return fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	e.Registrations = []domain.EventRegistration{}
	for rows.Next() {
		var reg domain.EventRegistration
		var paidAt sql.NullTime
		if err = rows.Scan(
			&reg.ID, &reg.UserID, &reg.Status, &reg.RegisteredAt,
			&paidAt, &reg.PaymentMethod, &reg.UserName, &reg.UserEmail,
		); err != nil {
			return fmt.Errorf("scan registration: %w", err)
		}
		if paidAt.Valid {
			reg.PaidAt = &paidAt.Time
		}
		e.Registrations = append(e.Registrations, reg)
	}

	return rows.Err()
}

// AddRegistration locks the event row, rejects a duplicate entry and
// appends the pending registration, all in one transaction. There is
// deliberately no capacity check here: max_participants is declared but
// not enforced at registration.
func (r *EventRepository) AddRegistration(ctx context.Context, slug string, reg *domain.EventRegistration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var eventID string
	lockQuery := `SELECT id FROM events WHERE slug = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, slug).Scan(&eventID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}

	var exists bool
	dupQuery := `SELECT EXISTS (
					SELECT 1 FROM event_registrations
					WHERE event_id = $1 AND user_id = $2)`
	if err = tx.QueryRowContext(ctx, dupQuery, eventID, reg.UserID).Scan(&exists); err != nil {
		return fmt.Errorf("check duplicate registration: %w", err)
	}
	if exists {
		return domain.ErrAlreadyRegistered
	}

	insertQuery := `INSERT INTO event_registrations (id, event_id, user_id, status, registered_at)
					VALUES ($1, $2, $3, $4, $5)`
	if _, err = tx.ExecContext(ctx, insertQuery, reg.ID, eventID, reg.UserID, reg.Status, reg.RegisteredAt); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	return tx.Commit()
}

// MarkRegistrationPaid records the transition to paid. Entries are
// payable while pending or approved; rejected and already-paid entries
// are refused.
func (r *EventRepository) MarkRegistrationPaid(ctx context.Context, slug, registrationID, paymentMethod string, paidAt time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var eventID string
	lockQuery := `SELECT id FROM events WHERE slug = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, slug).Scan(&eventID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}

	updateQuery := `UPDATE event_registrations
					SET status = $1, paid_at = $2, payment_method = $3
					WHERE id = $4 AND event_id = $5 AND status IN ($6, $7)`
	res, err := tx.ExecContext(
		ctx, updateQuery,
		domain.RegistrationStatusPaid, paidAt, paymentMethod,
		registrationID, eventID, domain.RegistrationStatusPending, domain.RegistrationStatusApproved,
	)
	if err != nil {
		return fmt.Errorf("mark registration paid: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("registration rows affected: %w", err)
	}
	if affected == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS (
						SELECT 1 FROM event_registrations WHERE id = $1 AND event_id = $2)`
		if err = tx.QueryRowContext(ctx, checkQuery, registrationID, eventID).Scan(&exists); err != nil {
			return fmt.Errorf("check registration: %w", err)
		}
		if !exists {
			return domain.ErrRegistrationNotFound
		}
		return domain.ErrRegistrationNotPayable
	}

	return tx.Commit()
}
