package catalog

import (
	"fmt"

	"github.com/huynhtrandev/brewpoint-backend/pkg/enums"
)

// Product carries the pricing data the cart needs. Catalog management is an
// admin concern outside this service; this is a read-only surface.
type Product struct {
	ID         string                  `json:"id"`
	Name       string                  `json:"name"`
	BasePrice  int                     `json:"base_price"`
	SizeDeltas map[enums.DrinkSize]int `json:"size_deltas"`
}

// Topping is an add-on with a flat price.
type Topping struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Catalog resolves products and toppings for price snapshots.
type Catalog interface {
	Product(id string) (*Product, error)
	Topping(id string) (*Topping, error)
}

// Static is an in-memory catalog seeded at process start.
type Static struct {
	products     map[string]Product
	toppings     map[string]Topping
	productOrder []string
	toppingOrder []string
}

// NewStatic builds a catalog over the given items. Listing order follows the
// seed order.
func NewStatic(products []Product, toppings []Topping) *Static {
	s := &Static{
		products: make(map[string]Product, len(products)),
		toppings: make(map[string]Topping, len(toppings)),
	}
	for _, p := range products {
		s.products[p.ID] = p
		s.productOrder = append(s.productOrder, p.ID)
	}
	for _, t := range toppings {
		s.toppings[t.ID] = t
		s.toppingOrder = append(s.toppingOrder, t.ID)
	}
	return s
}

// Products returns the menu's drinks in seed order.
func (s *Static) Products() []Product {
	out := make([]Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		out = append(out, s.products[id])
	}
	return out
}

// Toppings returns the available add-ons in seed order.
func (s *Static) Toppings() []Topping {
	out := make([]Topping, 0, len(s.toppingOrder))
	for _, id := range s.toppingOrder {
		out = append(out, s.toppings[id])
	}
	return out
}

func (s *Static) Product(id string) (*Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, fmt.Errorf("unknown product %q", id)
	}
	return &p, nil
}

func (s *Static) Topping(id string) (*Topping, error) {
	t, ok := s.toppings[id]
	if !ok {
		return nil, fmt.Errorf("unknown topping %q", id)
	}
	return &t, nil
}

// Seed returns the default menu. Prices are in VND.
func Seed() *Static {
	sizeDeltas := map[enums.DrinkSize]int{
		enums.DrinkSizeSmall:  0,
		enums.DrinkSizeMedium: 6000,
		enums.DrinkSizeLarge:  10000,
	}
	products := []Product{
		{ID: "pr-ca-phe-sua-da", Name: "Ca Phe Sua Da", BasePrice: 29000, SizeDeltas: sizeDeltas},
		{ID: "pr-bac-xiu", Name: "Bac Xiu", BasePrice: 32000, SizeDeltas: sizeDeltas},
		{ID: "pr-tra-dao", Name: "Peach Tea", BasePrice: 45000, SizeDeltas: sizeDeltas},
		{ID: "pr-matcha-latte", Name: "Matcha Latte", BasePrice: 55000, SizeDeltas: sizeDeltas},
		{ID: "pr-cold-brew", Name: "Cold Brew", BasePrice: 49000, SizeDeltas: sizeDeltas},
	}
	toppings := []Topping{
		{ID: "tp-pearl", Name: "Black Pearl", Price: 7000},
		{ID: "tp-grass-jelly", Name: "Grass Jelly", Price: 7000},
		{ID: "tp-cheese-foam", Name: "Cheese Foam", Price: 12000},
		{ID: "tp-espresso-shot", Name: "Extra Espresso Shot", Price: 10000},
	}
	return NewStatic(products, toppings)
}
