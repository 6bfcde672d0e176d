package service

import (
	"context"
	"testing"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/ibrahima697/BayySaWaarBack/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_Create_DefaultsInStock(t *testing.T) {
	repo := mocks.NewMockProductRepo(t)
	svc := NewProductService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	product, err := svc.Create(context.Background(), domain.CreateProductInput{
		Name:  "Farine de mil",
		Price: 1500,
	})

	require.NoError(t, err)
	assert.True(t, product.InStock)
	assert.NotEmpty(t, product.ID)
}

func TestProductService_Create_NegativePrice(t *testing.T) {
	svc := NewProductService(mocks.NewMockProductRepo(t))

	_, err := svc.Create(context.Background(), domain.CreateProductInput{
		Name:  "Farine de mil",
		Price: -1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProductService_Update_NegativePrice(t *testing.T) {
	svc := NewProductService(mocks.NewMockProductRepo(t))

	price := -10.0
	_, err := svc.Update(context.Background(), "p1", domain.UpdateProductInput{Price: &price})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBlogService_Create_Success(t *testing.T) {
	repo := mocks.NewMockBlogRepo(t)
	svc := NewBlogService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	post, err := svc.Create(context.Background(), domain.CreateBlogPostInput{
		Title:   "Transformer les céréales locales",
		Content: "Le mil et le sorgho...",
		Author:  "Awa Diop",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
}

func TestBlogService_Create_MissingContent(t *testing.T) {
	svc := NewBlogService(mocks.NewMockBlogRepo(t))

	_, err := svc.Create(context.Background(), domain.CreateBlogPostInput{Title: "Sans contenu"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
