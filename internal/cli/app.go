// Package cli is the interactive view layer. It renders engine state and
// routes user commands into the core operations; no list logic lives here.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/listafacil/listafacil/internal/cart"
	"github.com/listafacil/listafacil/internal/config"
	"github.com/listafacil/listafacil/internal/logging"
	"github.com/listafacil/listafacil/internal/services"
	"github.com/listafacil/listafacil/internal/storage"

	_ "modernc.org/sqlite"
)

// App wires the engine and services behind the REPL.
type App struct {
	config     *config.Config
	log        logging.Logger
	identity   *services.Identity
	drafts     *services.Drafts
	savedLists *services.SavedLists
	list       *cart.List
	draft      cart.Draft
	db         *sql.DB
	reader     *bufio.Reader
	out        io.Writer

	// pendingSave is the completion channel of the most recent async draft
	// write. Logout awaits it so the outgoing user's draft is settled before
	// the identity is cleared.
	pendingSave <-chan error
}

// NewApp opens the local database, builds the services and hydrates the
// identity and saved lists before the list becomes interactive.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "failed to open local database", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	store := storage.NewSQLiteStore(db)

	a := &App{
		config:     cfg,
		log:        log,
		identity:   services.NewIdentity(store, log),
		drafts:     services.NewDrafts(store, log),
		savedLists: services.NewSavedLists(store, log),
		list:       cart.NewList(),
		db:         db,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}

	a.identity.Ensure(ctx)

	return a, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, scanner, a.out)
}

// Close releases the database handle.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}
