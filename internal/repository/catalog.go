package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ProductRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewProductRepo(db *dbpg.DB) *ProductRepository {
	return &ProductRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const productColumns = `id, name, description, price, COALESCE(category, ''), COALESCE(image, ''), in_stock, created_at, updated_at`

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO products (id, name, description, price, category, image, in_stock, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.Name, p.Description, p.Price,
		nullString(p.Category), nullString(p.Image), p.InStock, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	p.UpdatedAt = p.CreatedAt

	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	var p domain.Product
	if err = row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
		&p.Image, &p.InStock, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}

	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products ORDER BY created_at DESC`, productColumns)
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var res []*domain.Product
	for rows.Next() {
		var p domain.Product
		if err = rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
			&p.Image, &p.InStock, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}

func (r *ProductRepository) Update(ctx context.Context, id string, patch domain.UpdateProductInput) (*domain.Product, error) {
	sets := []string{"updated_at = now()"}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.Category != nil {
		add("category", nullString(*patch.Category))
	}
	if patch.Image != nil {
		add("image", nullString(*patch.Image))
	}
	if patch.InStock != nil {
		add("in_stock", *patch.InStock)
	}

	query := fmt.Sprintf(`UPDATE products SET %s WHERE id = $1`, strings.Join(sets, ", "))
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("product rows affected: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrProductNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("product rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

type BlogRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBlogRepo(db *dbpg.DB) *BlogRepository {
	return &BlogRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const blogColumns = `id, title, content, COALESCE(author, ''), COALESCE(image, ''), created_at, updated_at`

func (r *BlogRepository) Create(ctx context.Context, p *domain.BlogPost) error {
	query := `INSERT INTO blog_posts (id, title, content, author, image, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.Title, p.Content, nullString(p.Author), nullString(p.Image), p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert blog post: %w", err)
	}
	p.UpdatedAt = p.CreatedAt

	return nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	query := fmt.Sprintf(`SELECT %s FROM blog_posts WHERE id = $1`, blogColumns)
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get blog post: %w", err)
	}

	var p domain.BlogPost
	if err = row.Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.Image, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("scan blog post: %w", err)
	}

	return &p, nil
}

func (r *BlogRepository) List(ctx context.Context) ([]*domain.BlogPost, error) {
	query := fmt.Sprintf(`SELECT %s FROM blog_posts ORDER BY created_at DESC`, blogColumns)
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	var res []*domain.BlogPost
	for rows.Next() {
		var p domain.BlogPost
		if err = rows.Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.Image, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}

func (r *BlogRepository) Update(ctx context.Context, id string, patch domain.UpdateBlogPostInput) (*domain.BlogPost, error) {
	sets := []string{"updated_at = now()"}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Content != nil {
		add("content", *patch.Content)
	}
	if patch.Author != nil {
		add("author", nullString(*patch.Author))
	}
	if patch.Image != nil {
		add("image", nullString(*patch.Image))
	}

	query := fmt.Sprintf(`UPDATE blog_posts SET %s WHERE id = $1`, strings.Join(sets, ", "))
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update blog post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("blog post rows affected: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrBlogPostNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("blog post rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrBlogPostNotFound
	}

	return nil
}
