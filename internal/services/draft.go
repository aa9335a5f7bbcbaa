package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/listafacil/listafacil/internal/common"
	"github.com/listafacil/listafacil/internal/logging"
	"github.com/listafacil/listafacil/internal/models"
	"github.com/listafacil/listafacil/internal/storage"
)

// Drafts persists the per-user product draft under a key namespaced by the
// anonymous identifier. The draft is write-mostly: it is written on save and
// logout, and read back only when explicitly requested.
type Drafts struct {
	store storage.Store
	log   logging.Logger
}

// NewDrafts returns a draft service backed by store.
func NewDrafts(store storage.Store, log logging.Logger) *Drafts {
	return &Drafts{store: store, log: log}
}

// Save serializes and persists the product draft for userID.
func (s *Drafts) Save(ctx context.Context, userID string, products []models.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to serialize product draft: %w", err)
	}
	if err := s.store.Set(ctx, draftKey(userID), string(data)); err != nil {
		return fmt.Errorf("failed to persist product draft: %w", err)
	}
	return nil
}

// SaveAsync persists the draft without blocking the caller. The in-memory
// state is already applied; the write follows and may transiently diverge.
// Failures are logged and also delivered on the returned channel (buffered,
// closed after one result) for callers that opt into stricter handling.
// There is no retry and no rollback.
func (s *Drafts) SaveAsync(ctx context.Context, userID string, products []models.Product) <-chan error {
	snapshot := models.CloneProducts(products)
	done := make(chan error, 1)

	go func() {
		defer close(done)
		err := s.Save(ctx, userID, snapshot)
		if err != nil {
			s.log.Error(ctx, "async draft save failed", "user_id", userID, "error", err)
		}
		done <- err
	}()

	return done
}

// Load reads the persisted draft for userID. An absent key yields an empty
// slice; a corrupt value is logged and yields an empty slice as well.
func (s *Drafts) Load(ctx context.Context, userID string) []models.Product {
	raw, err := s.store.Get(ctx, draftKey(userID))
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Error(ctx, "failed to load product draft", "user_id", userID, "error", err)
		}
		return []models.Product{}
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		s.log.Error(ctx, "failed to parse product draft", "user_id", userID, "error", err)
		return []models.Product{}
	}
	if products == nil {
		products = []models.Product{}
	}
	return products
}
