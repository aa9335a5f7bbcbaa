package models

import "time"

// SavedList is a named, timestamped snapshot of a shopping list.
//
// ID is a stable UUID assigned at save time; deletion matches on it rather
// than on value equality, so two identical snapshots stay distinguishable.
type SavedList struct {
	ID string `json:"id"`

	// Name chosen by the user at save time.
	Name string `json:"nome"`

	// Category is a free-form descriptive label, not restricted to the
	// active-list category set.
	Category string `json:"categoria"`

	// Date is the save timestamp in UTC.
	Date time.Time `json:"data"`

	// Products is an independent snapshot, never aliased with the
	// active list.
	Products []Product `json:"produtos"`
}

// Clone returns a deep copy of the list.
func (l SavedList) Clone() SavedList {
	out := l
	out.Products = CloneProducts(l.Products)
	return out
}
