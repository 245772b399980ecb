package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/internal/application/usecase"
	"github.com/jhoicas/furnistore-api/internal/infrastructure/memory"
)

func TestSeedCategories_EsIdempotente(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRegistry(memory.NewStore())
	uc := usecase.NewCategoryUseCase(repo.Categories, repo.Products)

	created, err := seedCategories(ctx, uc, defaultCategories)
	require.NoError(t, err)
	assert.Equal(t, len(defaultCategories), created)

	created, err = seedCategories(ctx, uc, defaultCategories)
	require.NoError(t, err)
	assert.Zero(t, created, "la segunda pasada no duplica")

	list, err := uc.List(ctx, dto.PageRequest{Page: 1, Limit: 100})
	require.NoError(t, err)
	assert.Len(t, list.Items, len(defaultCategories))
}

func TestSeedCategories_ErrorDeValidacionSeDevuelve(t *testing.T) {
	repo := memory.NewRegistry(memory.NewStore())
	uc := usecase.NewCategoryUseCase(repo.Categories, repo.Products)

	created, err := seedCategories(context.Background(), uc, []dto.CategoryRequest{{Name: "Sofás"}, {Name: "  "}})
	require.Error(t, err)
	assert.Equal(t, 1, created)
}
