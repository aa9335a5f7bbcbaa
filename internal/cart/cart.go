// Package cart implements the in-memory shopping-list engine: product
// entries grouped by category, quantity edits, category-scoped clearing and
// the derived total / spending-limit state.
package cart

import (
	"sync"

	"github.com/listafacil/listafacil/internal/models"
	"github.com/shopspring/decimal"
)

// Phase tracks how the list reached its current (possibly empty) state, so
// the view can tell "nothing was ever added" apart from "a clear just
// emptied the list" without consulting a stale total.
type Phase int

const (
	// PhaseEmpty means no product has been added this session.
	PhaseEmpty Phase = iota
	// PhaseActive means the list holds, or has held, products since the
	// last clear.
	PhaseActive
	// PhaseJustCleared means a category clear removed the last entries.
	PhaseJustCleared
)

// ClearOutcome is the result of a category-scoped clear, reported explicitly
// so the caller can pick the right prompt.
type ClearOutcome int

const (
	// ClearNothingToDo means the list was already empty.
	ClearNothingToDo ClearOutcome = iota
	// ClearEmptied means entries were removed and the list is now empty.
	ClearEmptied
	// ClearRemainder means entries remain after the clear.
	ClearRemainder
)

// List is the active shopping list. Entries are kept newest-first. All state
// is session-local; persistence happens through the services layer on
// snapshots.
//
// Mutations normally arrive from a single goroutine (the UI loop), but the
// mutex keeps snapshots taken by asynchronous persistence writes consistent.
type List struct {
	mu       sync.Mutex
	entries  []models.Product
	nextID   int
	selected models.Category
	marked   map[models.Category]bool
	limitRaw string
	phase    Phase
}

// NewList returns an empty list with the id counter seeded at 1 and the
// first category selected.
func NewList() *List {
	return &List{
		nextID:   1,
		selected: models.Categories()[0],
		marked:   make(map[models.Category]bool),
	}
}

// SelectCategory changes the category new products are filed under.
func (l *List) SelectCategory(c models.Category) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.selected = c
}

// SelectedCategory returns the currently selected category.
func (l *List) SelectedCategory() models.Category {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.selected
}

// AddOrUpdate commits a product to the list, stamping it with the selected
// category. An existing entry with the same id is replaced in place,
// preserving its position. A new product gets the next counter id and is
// prepended so the newest entry renders first.
func (l *List) AddOrUpdate(p models.Product) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p.Category = l.selected

	for i, e := range l.entries {
		if e.ID == p.ID {
			l.entries[i] = p
			l.phase = PhaseActive
			return
		}
	}

	p.ID = l.nextID
	l.entries = append([]models.Product{p}, l.entries...)
	l.nextID++
	l.phase = PhaseActive
}

// SetQuantity sets the quantity of the entry with the given id. Absent ids
// are ignored. The caller guarantees quantity >= 1; the increment/decrement
// helpers enforce the clamp.
func (l *List) SetQuantity(id, quantity int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries[i].Quantity = quantity
			return
		}
	}
}

// IncrementQuantity adds one unit to the entry with the given id.
func (l *List) IncrementQuantity(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries[i].Quantity++
			return
		}
	}
}

// DecrementQuantity removes one unit from the entry with the given id.
// Quantity never drops below 1: decrementing at 1 is a no-op, not a removal.
func (l *List) DecrementQuantity(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].ID == id {
			if l.entries[i].Quantity > 1 {
				l.entries[i].Quantity--
			}
			return
		}
	}
}

// Remove deletes the entry with the given id. Absent ids are ignored.
func (l *List) Remove(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, e := range l.entries {
		if e.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// ToggleCategoryMark flips whether c is selected for the next clear.
func (l *List) ToggleCategoryMark(c models.Category) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.marked[c] {
		delete(l.marked, c)
	} else {
		l.marked[c] = true
	}
}

// MarkedCategories returns the categories currently marked for clearing,
// in display order.
func (l *List) MarkedCategories() []models.Category {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Category, 0, len(l.marked))
	for _, c := range models.Categories() {
		if l.marked[c] {
			out = append(out, c)
		}
	}
	return out
}

// ClearMarked clears the marked categories and resets the marks.
func (l *List) ClearMarked() ClearOutcome {
	l.mu.Lock()
	cats := make([]models.Category, 0, len(l.marked))
	for c := range l.marked {
		cats = append(cats, c)
	}
	l.marked = make(map[models.Category]bool)
	l.mu.Unlock()

	return l.ClearByCategories(cats)
}

// ClearByCategories removes every entry whose category is in cats and
// reports what happened so the view can choose between "add something
// first", "list cleared" and "a remainder is left".
func (l *List) ClearByCategories(cats []models.Category) ClearOutcome {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) == 0 {
		return ClearNothingToDo
	}

	drop := make(map[models.Category]bool, len(cats))
	for _, c := range cats {
		drop[c] = true
	}

	kept := l.entries[:0]
	for _, e := range l.entries {
		if !drop[e.Category] {
			kept = append(kept, e)
		}
	}
	l.entries = kept

	if len(l.entries) == 0 {
		l.phase = PhaseJustCleared
		return ClearEmptied
	}
	return ClearRemainder
}

// Total derives the running total: the sum of quantity * unit price over all
// entries. It is never stored; the entries are the single source of truth.
func (l *List) Total() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalLocked()
}

func (l *List) totalLocked() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.entries {
		total = total.Add(e.Subtotal())
	}
	return total
}

// SetLimit stores the spending limit exactly as the user typed it.
// Parsing happens on read so garbage input never faults a keystroke.
func (l *List) SetLimit(raw string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.limitRaw = raw
}

// Limit returns the parsed spending limit. ok is false when the limit is
// blank or not a number, which callers must treat as "no limit set".
func (l *List) Limit() (limit decimal.Decimal, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.limitLocked()
}

func (l *List) limitLocked() (decimal.Decimal, bool) {
	if l.limitRaw == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(l.limitRaw)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// LimitExceeded reports whether the total is above the spending limit.
// A blank or unparseable limit never reports exceeded.
func (l *List) LimitExceeded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limit, ok := l.limitLocked()
	if !ok {
		return false
	}
	return l.totalLocked().GreaterThan(limit)
}

// LimitExcess returns how far the total is above the limit, or zero when
// the limit is unset or not exceeded.
func (l *List) LimitExcess() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	limit, ok := l.limitLocked()
	if !ok {
		return decimal.Zero
	}
	if excess := l.totalLocked().Sub(limit); excess.IsPositive() {
		return excess
	}
	return decimal.Zero
}

// Phase returns the current session phase.
func (l *List) Phase() Phase {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.phase
}

// Len returns the number of entries.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Entries returns a copy of all entries, newest first.
func (l *List) Entries() []models.Product {
	l.mu.Lock()
	defer l.mu.Unlock()
	return models.CloneProducts(l.entries)
}

// EntriesByCategory returns a copy of the entries filed under c, preserving
// list order.
func (l *List) EntriesByCategory(c models.Category) []models.Product {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []models.Product
	for _, e := range l.entries {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// Snapshot returns an independent copy of the entries for persistence or
// saving; the copy never aliases the live list.
func (l *List) Snapshot() []models.Product {
	return l.Entries()
}

// Load replaces the entries wholesale (e.g. from a navigation payload) and
// reseeds the id counter above the highest loaded id.
func (l *List) Load(products []models.Product) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = models.CloneProducts(products)

	maxID := 0
	for _, e := range l.entries {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	l.nextID = maxID + 1

	if len(l.entries) > 0 {
		l.phase = PhaseActive
	}
}
