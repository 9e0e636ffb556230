// Package pricing derives booking prices from a selection and a guest count.
package pricing

import (
	"github.com/m04kA/SMC-CateringService/internal/domain"
)

// Engine computes prices against a catalog. Integer arithmetic only.
type Engine struct {
	catalog *domain.Catalog
}

// NewEngine creates a pricing engine over catalog
func NewEngine(catalog *domain.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Catalog returns the catalog the engine prices against
func (e *Engine) Catalog() *domain.Catalog {
	return e.catalog
}

// Compute returns the total price:
//
//	sum(item prices) + PerHead*guests + StyleFee
//
// Unknown items price at 0. A non-positive guest count contributes nothing.
func (e *Engine) Compute(selection domain.Selection, guests int) int {
	total := 0
	for _, category := range domain.Categories {
		for _, item := range selection.Items(category) {
			total += e.catalog.Price(category, item)
		}
	}
	return total + e.perHeadTotal(guests) + e.catalog.StyleFee
}

// Breakdown itemizes Compute for receipts. Breakdown(s, g).Total == Compute(s, g).
func (e *Engine) Breakdown(selection domain.Selection, guests int) Breakdown {
	if guests < 0 {
		guests = 0
	}

	b := Breakdown{
		Items:        make([]ItemLine, 0),
		Guests:       guests,
		PerHead:      e.catalog.PerHead,
		PerHeadTotal: e.perHeadTotal(guests),
		StyleFee:     e.catalog.StyleFee,
	}

	for _, category := range domain.Categories {
		for _, item := range selection.Items(category) {
			price := e.catalog.Price(category, item)
			b.Items = append(b.Items, ItemLine{
				Category:  category,
				Item:      item,
				UnitPrice: price,
				Known:     e.isKnown(category, item),
			})
			b.ItemsTotal += price
		}
	}

	b.Total = b.ItemsTotal + b.PerHeadTotal + b.StyleFee
	return b
}

func (e *Engine) perHeadTotal(guests int) int {
	if guests <= 0 {
		return 0
	}
	return e.catalog.PerHead * guests
}

func (e *Engine) isKnown(category domain.Category, item string) bool {
	_, ok := e.catalog.Items[category][item]
	return ok
}
