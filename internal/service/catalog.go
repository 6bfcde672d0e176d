package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/ibrahima697/BayySaWaarBack/internal/service/ports"
)

type ProductService struct {
	repo ports.ProductRepo
}

func NewProductService(repo ports.ProductRepo) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) Create(ctx context.Context, input domain.CreateProductInput) (*domain.Product, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}

	product := &domain.Product{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Image:       input.Image,
		InStock:     inStock,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) Update(ctx context.Context, id string, patch domain.UpdateProductInput) (*domain.Product, error) {
	if patch.Price != nil && *patch.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

type BlogService struct {
	repo ports.BlogRepo
}

func NewBlogService(repo ports.BlogRepo) *BlogService {
	return &BlogService{repo: repo}
}

func (s *BlogService) Create(ctx context.Context, input domain.CreateBlogPostInput) (*domain.BlogPost, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}

	post := &domain.BlogPost{
		ID:        uuid.New().String(),
		Title:     input.Title,
		Content:   input.Content,
		Author:    input.Author,
		Image:     input.Image,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create blog post: %w", err)
	}

	return post, nil
}

func (s *BlogService) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BlogService) List(ctx context.Context) ([]*domain.BlogPost, error) {
	return s.repo.List(ctx)
}

func (s *BlogService) Update(ctx context.Context, id string, patch domain.UpdateBlogPostInput) (*domain.BlogPost, error) {
	return s.repo.Update(ctx, id, patch)
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
