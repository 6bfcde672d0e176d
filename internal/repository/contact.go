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

type ContactRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewContactRepo(db *dbpg.DB) *ContactRepository {
	return &ContactRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ContactRepository) CreateContact(ctx context.Context, c *domain.Contact) error {
	query := `INSERT INTO contacts (id, ticket_id, name, email, category, message, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.TicketID, c.Name, c.Email, nullString(c.Category), c.Message, c.Status, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}

	return nil
}

func (r *ContactRepository) ListContacts(ctx context.Context) ([]*domain.Contact, error) {
	query := `SELECT id, ticket_id, name, email, COALESCE(category, ''), message, status, created_at
			  FROM contacts
			  ORDER BY created_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var res []*domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err = rows.Scan(&c.ID, &c.TicketID, &c.Name, &c.Email, &c.Category, &c.Message, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) (*domain.Contact, error) {
	query := `UPDATE contacts SET status = $1 WHERE id = $2
			  RETURNING id, ticket_id, name, email, COALESCE(category, ''), message, status, created_at`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, status, id)
	if err != nil {
		return nil, fmt.Errorf("update contact status: %w", err)
	}

	var c domain.Contact
	if err = row.Scan(&c.ID, &c.TicketID, &c.Name, &c.Email, &c.Category, &c.Message, &c.Status, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("scan contact: %w", err)
	}

	return &c, nil
}

func (r *ContactRepository) CreateSubscription(ctx context.Context, s *domain.NewsletterSubscription) error {
	query := `INSERT INTO newsletter_subscriptions (id, email, created_at)
			  VALUES ($1, $2, $3)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, s.ID, s.Email, s.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadySubscribed
		}
		return fmt.Errorf("insert subscription: %w", err)
	}

	return nil
}
