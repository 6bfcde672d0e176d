package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type StatsRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewStatsRepo(db *dbpg.DB) *StatsRepository {
	return &StatsRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *StatsRepository) AdminStats(ctx context.Context) (*domain.AdminStats, error) {
	query := `SELECT
				(SELECT COUNT(*) FROM users),
				(SELECT COUNT(*) FROM enrollments),
				(SELECT COUNT(*) FROM enrollments WHERE status = 'pending'),
				(SELECT COUNT(*) FROM enrollments WHERE status = 'approved'),
				(SELECT COUNT(*) FROM enrollments WHERE status = 'rejected'),
				(SELECT COUNT(*) FROM products),
				(SELECT COUNT(*) FROM blog_posts)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("get admin stats: %w", err)
	}

	var stats domain.AdminStats
	if err = row.Scan(
		&stats.TotalUsers, &stats.TotalEnrollments,
		&stats.PendingEnrollments, &stats.ApprovedEnrollments, &stats.RejectedEnrollments,
		&stats.TotalProducts, &stats.TotalBlogs,
	); err != nil {
		return nil, fmt.Errorf("scan admin stats: %w", err)
	}

	return &stats, nil
}

func (r *StatsRepository) UserStats(ctx context.Context) (*domain.UserStats, error) {
	query := `SELECT
				COUNT(*),
				COUNT(*) FILTER (WHERE role = $1),
				COUNT(*) FILTER (WHERE role = $2)
			  FROM users`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, domain.RoleMember, domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("get user stats: %w", err)
	}

	var stats domain.UserStats
	if err = row.Scan(&stats.TotalUsers, &stats.Members, &stats.Admins); err != nil {
		return nil, fmt.Errorf("scan user stats: %w", err)
	}

	return &stats, nil
}
