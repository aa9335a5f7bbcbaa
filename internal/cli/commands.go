package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/listafacil/listafacil/internal/cart"
	"github.com/listafacil/listafacil/internal/models"
)

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}

// Greeting returns the REPL prompt prefix.
func (a *App) Greeting() string {
	if a.config.DisplayName != "" {
		return a.config.DisplayName
	}
	return "lista"
}

// Categories prints the category set, marking the selected one.
func (a *App) Categories() error {
	selected := a.list.SelectedCategory()
	for i, c := range models.Categories() {
		marker := " "
		if c == selected {
			marker = "*"
		}
		a.printf("%s %d. %s", marker, i+1, c)
	}
	return nil
}

// SelectCategory switches the active category by number or name.
func (a *App) SelectCategory(args []string) error {
	if len(args) == 0 {
		return a.Categories()
	}

	cats := models.Categories()
	if n, err := strconv.Atoi(args[0]); err == nil && n >= 1 && n <= len(cats) {
		a.list.SelectCategory(cats[n-1])
		a.printf("Category: %s", cats[n-1])
		return nil
	}

	c := models.Category(strings.Join(args, " "))
	if !c.Valid() {
		a.printf("Unknown category: %s", args[0])
		return nil
	}
	a.list.SelectCategory(c)
	a.printf("Category: %s", c)
	return nil
}

// AddProduct prompts for the draft fields, commits and files the product
// under the selected category.
func (a *App) AddProduct(ctx context.Context) error {
	a.draft.Reset()

	var err error
	if a.draft.Name, err = GetSimpleText(a.reader, "Product name", a.out); err != nil {
		return err
	}
	if a.draft.Quantity, err = GetSimpleText(a.reader, "Quantity", a.out); err != nil {
		return err
	}
	if a.draft.Price, err = GetSimpleText(a.reader, "Unit price", a.out); err != nil {
		return err
	}

	product, err := a.draft.Commit()
	if err != nil {
		a.printf("Not added: %v", err)
		return nil
	}

	a.list.AddOrUpdate(product)
	a.persistDraft(ctx)
	a.printf("Added to %s.", a.list.SelectedCategory())
	return nil
}

// EditProduct reloads an entry into the draft, prompts with current values
// as defaults and recommits through the same path as a new product.
func (a *App) EditProduct(ctx context.Context, args []string) error {
	id, ok := a.parseID(args, "edit <id>")
	if !ok {
		return nil
	}

	var entry *models.Product
	for _, e := range a.list.Entries() {
		if e.ID == id {
			entry = &e
			break
		}
	}
	if entry == nil {
		a.printf("No product with id %d.", id)
		return nil
	}

	a.draft.LoadProduct(*entry)

	var err error
	if a.draft.Name, err = GetTextWithDefault(a.reader, "Product name", a.draft.Name, a.out); err != nil {
		return err
	}
	if a.draft.Quantity, err = GetTextWithDefault(a.reader, "Quantity", a.draft.Quantity, a.out); err != nil {
		return err
	}
	if a.draft.Price, err = GetTextWithDefault(a.reader, "Unit price", a.draft.Price, a.out); err != nil {
		return err
	}

	product, err := a.draft.Commit()
	if err != nil {
		a.printf("Not changed: %v", err)
		return nil
	}

	a.list.AddOrUpdate(product)
	a.persistDraft(ctx)
	a.printf("Updated.")
	return nil
}

// Increment adds one unit to an entry.
func (a *App) Increment(ctx context.Context, args []string) error {
	if id, ok := a.parseID(args, "inc <id>"); ok {
		a.list.IncrementQuantity(id)
		a.persistDraft(ctx)
	}
	return nil
}

// Decrement removes one unit from an entry; quantity never drops below 1.
func (a *App) Decrement(ctx context.Context, args []string) error {
	if id, ok := a.parseID(args, "dec <id>"); ok {
		a.list.DecrementQuantity(id)
		a.persistDraft(ctx)
	}
	return nil
}

// RemoveProduct deletes an entry.
func (a *App) RemoveProduct(ctx context.Context, args []string) error {
	if id, ok := a.parseID(args, "del <id>"); ok {
		a.list.Remove(id)
		a.persistDraft(ctx)
		a.printf("Removed.")
	}
	return nil
}

// SetLimit stores the spending limit as typed; garbage input simply means
// "no limit set".
func (a *App) SetLimit(args []string) error {
	a.list.SetLimit(strings.Join(args, ""))
	a.ShowTotal()
	return nil
}

// ShowList renders the entries of the selected category.
func (a *App) ShowList() error {
	selected := a.list.SelectedCategory()
	entries := a.list.EntriesByCategory(selected)
	a.printf("-- %s --", selected)
	if len(entries) == 0 {
		a.printf("(no products)")
	}
	for _, e := range entries {
		a.printf("[%d] %s  x%d  R$ %s  = R$ %s",
			e.ID, e.Name, e.Quantity, e.Price.StringFixed(2), e.Subtotal().StringFixed(2))
	}
	a.ShowTotal()
	return nil
}

// ShowAll renders every entry, newest first.
func (a *App) ShowAll() error {
	entries := a.list.Entries()
	if len(entries) == 0 {
		a.printf("(no products)")
	}
	for _, e := range entries {
		a.printf("[%d] %-12s %s  x%d  R$ %s",
			e.ID, e.Category, e.Name, e.Quantity, e.Price.StringFixed(2))
	}
	a.ShowTotal()
	return nil
}

// ShowTotal prints the running total and the limit status.
func (a *App) ShowTotal() {
	a.printf("Total: R$ %s", a.list.Total().StringFixed(2))
	if a.list.LimitExceeded() {
		a.printf("Limit exceeded by R$ %s!", a.list.LimitExcess().StringFixed(2))
	}
}

// Mark toggles a category for the next clear.
func (a *App) Mark(args []string) error {
	c := models.Category(strings.Join(args, " "))
	cats := models.Categories()
	if n, err := strconv.Atoi(strings.Join(args, "")); err == nil && n >= 1 && n <= len(cats) {
		c = cats[n-1]
	}
	if !c.Valid() {
		a.printf("Unknown category.")
		return nil
	}
	a.list.ToggleCategoryMark(c)
	marked := a.list.MarkedCategories()
	names := make([]string, len(marked))
	for i, m := range marked {
		names[i] = string(m)
	}
	a.printf("Marked for clearing: %s", strings.Join(names, ", "))
	return nil
}

// Clear removes every entry in the marked categories and reports the
// outcome.
func (a *App) Clear(ctx context.Context) error {
	switch a.list.ClearMarked() {
	case cart.ClearNothingToDo:
		a.printf("Your list is empty. Add a product first.")
	case cart.ClearEmptied:
		a.printf("List cleared.")
	case cart.ClearRemainder:
		a.persistDraft(ctx)
		a.printf("Marked categories cleared. Remaining total: R$ %s",
			a.list.Total().StringFixed(2))
		return nil
	}
	a.persistDraft(ctx)
	return nil
}

// SaveList snapshots the current list under a chosen name and label.
func (a *App) SaveList(ctx context.Context) error {
	if a.list.Len() == 0 {
		a.printf("Nothing to save.")
		return nil
	}

	name, err := GetSimpleText(a.reader, "List name", a.out)
	if err != nil {
		return err
	}
	label, err := GetSimpleText(a.reader, "Label (e.g. Semanal)", a.out)
	if err != nil {
		return err
	}

	lists, err := a.savedLists.Create(ctx, name, label, a.list.Snapshot())
	if err != nil {
		a.log.Error(ctx, "failed to save list", "error", err)
		a.printf("Could not save the list right now.")
		return nil
	}

	a.persistDraft(ctx)
	a.printf("Saved. You have %d list(s).", len(lists))
	return nil
}

// Lists shows the saved lists.
func (a *App) Lists(ctx context.Context) error {
	lists := a.savedLists.Load(ctx)
	if len(lists) == 0 {
		a.printf("No saved lists yet.")
		return nil
	}
	for i, l := range lists {
		a.printf("%d. %s (%s) — %s, %d product(s)",
			i+1, l.Name, l.Category, l.Date.Format("02/01/2006 15:04"), len(l.Products))
	}
	return nil
}

// ShowSaved prints the products of one saved list.
func (a *App) ShowSaved(ctx context.Context, args []string) error {
	list, ok := a.pickSaved(ctx, args, "show <n>")
	if !ok {
		return nil
	}
	a.printf("%s (%s) — %s", list.Name, list.Category, list.Date.Format("02/01/2006 15:04"))
	for _, p := range list.Products {
		a.printf("  %s  x%d  R$ %s", p.Name, p.Quantity, p.Price.StringFixed(2))
	}
	return nil
}

// DeleteSaved removes one saved list and reprints the remainder.
func (a *App) DeleteSaved(ctx context.Context, args []string) error {
	list, ok := a.pickSaved(ctx, args, "delsaved <n>")
	if !ok {
		return nil
	}
	updated, err := a.savedLists.Delete(ctx, list.ID)
	if err != nil {
		a.log.Error(ctx, "failed to delete saved list", "id", list.ID, "error", err)
		a.printf("Could not delete the list right now.")
		return nil
	}
	a.printf("Deleted. %d list(s) remaining.", len(updated))
	return nil
}

// Logout clears the anonymous identity and starts a fresh session list.
// Any in-flight draft write is awaited first so it cannot land after the
// logout empties the outgoing user's draft.
func (a *App) Logout(ctx context.Context) error {
	if a.pendingSave != nil {
		<-a.pendingSave
		a.pendingSave = nil
	}
	a.identity.Clear(ctx)
	a.list = cart.NewList()
	a.draft.Reset()
	a.identity.Ensure(ctx)
	a.printf("Logged out. A fresh list was started.")
	return nil
}

// persistDraft fires an asynchronous write of the current entries under the
// current user. Failures are logged by the service; the result channel is
// deliberately not awaited.
func (a *App) persistDraft(ctx context.Context) {
	userID := a.identity.UserID()
	if userID == "" {
		return
	}
	a.pendingSave = a.drafts.SaveAsync(ctx, userID, a.list.Snapshot())
}

func (a *App) parseID(args []string, usage string) (int, bool) {
	if len(args) == 0 {
		a.printf("Usage: %s", usage)
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		a.printf("Usage: %s", usage)
		return 0, false
	}
	return id, true
}

func (a *App) pickSaved(ctx context.Context, args []string, usage string) (models.SavedList, bool) {
	lists := a.savedLists.Load(ctx)
	if len(args) == 0 {
		a.printf("Usage: %s", usage)
		return models.SavedList{}, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(lists) {
		a.printf("No saved list number %s.", args[0])
		return models.SavedList{}, false
	}
	return lists[n-1], true
}
