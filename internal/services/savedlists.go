package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/listafacil/listafacil/internal/common"
	"github.com/listafacil/listafacil/internal/logging"
	"github.com/listafacil/listafacil/internal/models"
	"github.com/listafacil/listafacil/internal/storage"
)

// SavedLists owns the persisted collection of named list snapshots. The
// whole collection is serialized under one key; every mutation rewrites it
// in full (whole-collection replace, no merge semantics).
type SavedLists struct {
	store storage.Store
	log   logging.Logger
	now   func() time.Time
}

// NewSavedLists returns a saved-lists service backed by store.
func NewSavedLists(store storage.Store, log logging.Logger) *SavedLists {
	return &SavedLists{store: store, log: log, now: time.Now}
}

// Load reads the persisted collection. An absent key yields an empty slice;
// storage or parse failures are logged and yield an empty slice — never a
// fatal error to the caller.
func (s *SavedLists) Load(ctx context.Context) []models.SavedList {
	raw, err := s.store.Get(ctx, keySavedLists)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Error(ctx, "failed to load saved lists", "error", err)
		}
		return []models.SavedList{}
	}

	var lists []models.SavedList
	if err := json.Unmarshal([]byte(raw), &lists); err != nil {
		s.log.Error(ctx, "failed to parse saved lists", "error", err)
		return []models.SavedList{}
	}
	if lists == nil {
		lists = []models.SavedList{}
	}
	return lists
}

// SaveAll serializes and persists the full collection, overwriting any
// prior value.
func (s *SavedLists) SaveAll(ctx context.Context, lists []models.SavedList) error {
	data, err := json.Marshal(lists)
	if err != nil {
		return fmt.Errorf("failed to serialize saved lists: %w", err)
	}
	if err := s.store.Set(ctx, keySavedLists, string(data)); err != nil {
		return fmt.Errorf("failed to persist saved lists: %w", err)
	}
	return nil
}

// Create snapshots products into a new named list with a stable UUID and a
// UTC save timestamp, appends it to the collection, persists, and returns
// the updated collection.
func (s *SavedLists) Create(ctx context.Context, name, category string, products []models.Product) ([]models.SavedList, error) {
	list := models.SavedList{
		ID:       uuid.NewString(),
		Name:     name,
		Category: category,
		Date:     s.now().UTC(),
		Products: models.CloneProducts(products),
	}

	lists := append(s.Load(ctx), list)
	if err := s.SaveAll(ctx, lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// Delete removes the list with the given id, persists the remainder and
// returns the updated collection. An unknown id is a silent no-op that
// still rewrites the collection.
func (s *SavedLists) Delete(ctx context.Context, id string) ([]models.SavedList, error) {
	lists := s.Load(ctx)

	kept := make([]models.SavedList, 0, len(lists))
	for _, l := range lists {
		if l.ID != id {
			kept = append(kept, l)
		}
	}

	if err := s.SaveAll(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}
