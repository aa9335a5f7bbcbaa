package cart

import (
	"strconv"
	"strings"

	"github.com/listafacil/listafacil/internal/common"
	"github.com/listafacil/listafacil/internal/models"
	"github.com/shopspring/decimal"
)

// Draft holds the transient fields a user is editing before committing a
// product to the list. Quantity and Price stay raw strings until Commit so
// partial input never faults.
type Draft struct {
	// ID is zero for a fresh product, or the id of the entry being edited.
	ID       int
	Name     string
	Quantity string
	Price    string
}

// LoadProduct fills the draft from an existing entry, so an edit round-trips
// through the same commit path as a new product.
func (d *Draft) LoadProduct(p models.Product) {
	d.ID = p.ID
	d.Name = p.Name
	d.Quantity = strconv.Itoa(p.Quantity)
	d.Price = p.Price.String()
}

// Reset clears all draft fields.
func (d *Draft) Reset() {
	*d = Draft{}
}

// Commit validates the draft and turns it into a product. The category is
// stamped later by List.AddOrUpdate.
//
// Validation: name must be non-empty, quantity a whole number >= 1, price a
// non-negative decimal.
func (d *Draft) Commit() (models.Product, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return models.Product{}, common.ErrEmptyName
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(d.Quantity))
	if err != nil || quantity < 1 {
		return models.Product{}, common.ErrInvalidQuantity
	}

	price, err := decimal.NewFromString(strings.TrimSpace(d.Price))
	if err != nil || price.IsNegative() {
		return models.Product{}, common.ErrInvalidPrice
	}

	return models.Product{
		ID:       d.ID,
		Name:     name,
		Quantity: quantity,
		Price:    price,
	}, nil
}
