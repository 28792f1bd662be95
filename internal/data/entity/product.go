package entity

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Brand       string    `db:"brand"`
	Category    string    `db:"category"`
	Color       string    `db:"color"`
	Description string    `db:"description"`
	Gender      string    `db:"gender"`
	Image       string    `db:"image"`
	Price       float64   `db:"price"`
	Size        string    `db:"size"`
	Stock       int       `db:"stock"`
	CreatedAt   time.Time `db:"created_at"`
	AmountSold  int       `db:"amount_sold"`
}

// ProductColorVariety is the normalized color/size/stock detail of a
// product. Sizes and Stocks are aligned by index.
type ProductColorVariety struct {
	ProductID uuid.UUID `db:"product_id"`
	Color     string    `db:"color"`
	Sizes     []string  `db:"sizes"`
	Stocks    []int32   `db:"stocks"`
}

// ProductFilter holds the optional catalog filters. Nil fields are
// absent and never contribute a predicate.
type ProductFilter struct {
	Price    *float64
	Size     *string
	Category *string
	Gender   *string
	Brand    *string
}

// Empty reports whether no filter is set
func (f ProductFilter) Empty() bool {
	return f.Price == nil && f.Size == nil && f.Category == nil &&
		f.Gender == nil && f.Brand == nil
}
