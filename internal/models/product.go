// Package models defines the domain types shared by the list engine,
// the persistence services and the CLI.
package models

import "github.com/shopspring/decimal"

// Category is one of the fixed product categories shown on the home screen.
type Category string

const (
	CategoryVariados   Category = "Variados"
	CategoryHortifruti Category = "Hortifruti"
	CategoryAdega      Category = "Adega"
	CategoryPadaria    Category = "Padaria"
	CategoryAcougue    Category = "Açougue"
	CategoryMercearia  Category = "Mercearia"
	CategoryFrios      Category = "Frios"
	CategoryOutros     Category = "Outros"
)

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return []Category{
		CategoryVariados,
		CategoryHortifruti,
		CategoryAdega,
		CategoryPadaria,
		CategoryAcougue,
		CategoryMercearia,
		CategoryFrios,
		CategoryOutros,
	}
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Product is one entry of the active shopping list.
//
// JSON field names stay in Portuguese so persisted values remain
// wire-compatible with lists written by earlier releases.
type Product struct {
	// ID is unique within the active list, assigned by the engine counter.
	ID int `json:"id"`

	// Name of the product, never empty once committed.
	Name string `json:"nome"`

	// Quantity is always >= 1.
	Quantity int `json:"quantidade"`

	// Price is the non-negative unit price. Stored unrounded; display
	// formatting rounds to two decimal places.
	Price decimal.Decimal `json:"preco"`

	// Category the product was filed under when committed.
	Category Category `json:"categoria"`
}

// Subtotal returns Quantity * Price.
func (p Product) Subtotal() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// CloneProducts returns an independent copy of products, so snapshots do not
// alias the active list.
func CloneProducts(products []Product) []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}
