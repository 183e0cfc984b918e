package kvstore

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/kv"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountRepository_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewDiscountRepository(store, newTestLogger())

	require.NoError(t, repo.Save(ctx, &entity.Discount{
		Code:     "SAMMA10",
		Fraction: decimal.NewFromFloat(0.1),
	}))

	raw, err := store.Get(ctx, repository.KeyDiscount)
	require.NoError(t, err)
	assert.Equal(t, "0.1", raw)

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.Fraction.Equal(decimal.NewFromFloat(0.1)))
}

func TestDiscountRepository_LoadAbsentZeroMalformed(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewDiscountRepository(store, newTestLogger())

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrDiscountNotFound)

	require.NoError(t, store.Set(ctx, repository.KeyDiscount, "0"))
	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrDiscountNotFound)

	require.NoError(t, store.Set(ctx, repository.KeyDiscount, "diez"))
	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrDiscountNotFound)
}

func TestDiscountRepository_Clear(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewDiscountRepository(store, newTestLogger())

	require.NoError(t, repo.Save(ctx, &entity.Discount{Fraction: decimal.NewFromFloat(0.2)}))
	require.NoError(t, repo.Clear(ctx))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrDiscountNotFound)
}
