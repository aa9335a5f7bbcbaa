package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/listafacil/listafacil/internal/common"
	"github.com/listafacil/listafacil/internal/logging"
	"github.com/listafacil/listafacil/internal/storage"
)

// Identity owns the anonymous user identifier: generated once per
// installation, persisted, and cleared on logout. Identity is best-effort,
// not safety-critical: storage failures are logged and leave the identity
// unset rather than failing the caller.
type Identity struct {
	mu        sync.Mutex
	store     storage.Store
	log       logging.Logger
	userID    string
	anonymous bool
}

// NewIdentity returns an identity service backed by store.
func NewIdentity(store storage.Store, log logging.Logger) *Identity {
	return &Identity{store: store, log: log, anonymous: true}
}

// Ensure returns the persisted identifier, generating and persisting a new
// UUID on first run. Once an id is set in memory it is never regenerated
// within the session. Returns "" when storage is unavailable.
func (s *Identity) Ensure(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userID != "" {
		return s.userID
	}

	id, err := s.store.Get(ctx, keyAnonymousID)
	switch {
	case err == nil:
		s.userID = id
		return id
	case !errors.Is(err, common.ErrNotFound):
		s.log.Error(ctx, "failed to load anonymous id", "error", err)
		return ""
	}

	id = uuid.NewString()
	if err := s.store.Set(ctx, keyAnonymousID, id); err != nil {
		s.log.Error(ctx, "failed to persist anonymous id", "error", err)
		return ""
	}

	s.userID = id
	return id
}

// UserID returns the in-memory identifier, or "" when unset.
func (s *Identity) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// IsAnonymous reports whether the session runs under an anonymous identity.
// Always true in the current scope.
func (s *Identity) IsAnonymous() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.anonymous
}

// Clear logs the user out: it writes an empty product draft for the
// outgoing id first, so the empty state stays attributable to that id, then
// removes the persisted identifier and resets the in-memory identity.
// Failures are logged; the in-memory reset always happens.
func (s *Identity) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userID != "" {
		if err := s.store.Set(ctx, draftKey(s.userID), "[]"); err != nil {
			s.log.Error(ctx, "failed to clear product draft on logout",
				"user_id", s.userID, "error", err)
		}
	}

	if err := s.store.Remove(ctx, keyAnonymousID); err != nil {
		s.log.Error(ctx, "failed to remove anonymous id", "error", err)
	}

	s.userID = ""
	s.anonymous = true
}
