package services

import (
	"context"
	"testing"
	"time"

	"github.com/listafacil/listafacil/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: 2, Name: "Feijão", Quantity: 2, Price: decimal.RequireFromString("8.50"), Category: models.CategoryMercearia},
		{ID: 1, Name: "Arroz", Quantity: 1, Price: decimal.RequireFromString("25.00"), Category: models.CategoryVariados},
	}
}

func TestDrafts_SaveAndLoad(t *testing.T) {
	s := NewDrafts(setupStore(t), testLogger())
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "u1", sampleProducts()))

	got := s.Load(ctx, "u1")
	require.Len(t, got, 2)
	assert.Equal(t, "Feijão", got[0].Name)
	assert.True(t, got[1].Price.Equal(decimal.RequireFromString("25.00")))
}

func TestDrafts_Load_AbsentIsEmpty(t *testing.T) {
	s := NewDrafts(setupStore(t), testLogger())

	got := s.Load(context.Background(), "nobody")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDrafts_Load_CorruptValueIsEmpty(t *testing.T) {
	store := newFakeStore()
	require.NoError(t, store.Set(context.Background(), "produtos_u1", "{not json"))

	s := NewDrafts(store, testLogger())
	assert.Empty(t, s.Load(context.Background(), "u1"))
}

func TestDrafts_NamespacedPerUser(t *testing.T) {
	s := NewDrafts(setupStore(t), testLogger())
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "u1", sampleProducts()))
	require.NoError(t, s.Save(ctx, "u2", nil))

	assert.Len(t, s.Load(ctx, "u1"), 2)
	assert.Empty(t, s.Load(ctx, "u2"))
}

func TestDrafts_SaveAsync_DeliversResult(t *testing.T) {
	s := NewDrafts(setupStore(t), testLogger())
	ctx := context.Background()

	done := s.SaveAsync(ctx, "u1", sampleProducts())

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for async save")
	}

	assert.Len(t, s.Load(ctx, "u1"), 2)
}

func TestDrafts_SaveAsync_FailureOnChannel(t *testing.T) {
	store := newFakeStore()
	store.fail = true
	s := NewDrafts(store, testLogger())

	done := s.SaveAsync(context.Background(), "u1", sampleProducts())

	select {
	case err := <-done:
		assert.ErrorIs(t, err, errStoreDown)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for async save")
	}
}

func TestDrafts_SaveAsync_SnapshotsInput(t *testing.T) {
	s := NewDrafts(setupStore(t), testLogger())
	ctx := context.Background()

	products := sampleProducts()
	done := s.SaveAsync(ctx, "u1", products)
	products[0].Name = "mutated after the call"
	<-done

	got := s.Load(ctx, "u1")
	require.Len(t, got, 2)
	assert.Equal(t, "Feijão", got[0].Name)
}
