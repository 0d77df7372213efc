package cart

import (
	"sort"
	"strings"

	"github.com/huynhtrandev/brewpoint-backend/internal/catalog"
	"github.com/huynhtrandev/brewpoint-backend/pkg/enums"
	pkgerrors "github.com/huynhtrandev/brewpoint-backend/pkg/errors"
)

// Item is one merged cart line. UnitPrice is snapshotted at add time and is
// never recomputed when catalog prices change later.
type Item struct {
	Key        string                `json:"key"`
	ProductID  string                `json:"product_id"`
	Name       string                `json:"name"`
	Size       enums.DrinkSize       `json:"size"`
	SugarLevel enums.AdjustmentLevel `json:"sugar_level"`
	IceLevel   enums.AdjustmentLevel `json:"ice_level"`
	ToppingIDs []string              `json:"topping_ids"`
	UnitPrice  int                   `json:"unit_price"`
	Quantity   int                   `json:"quantity"`
}

// Cart holds the merged lines for one customer.
type Cart struct {
	Items []Item `json:"items"`
}

// AddInput is one product configuration to add.
type AddInput struct {
	ProductID  string
	Size       enums.DrinkSize
	SugarLevel enums.AdjustmentLevel
	IceLevel   enums.AdjustmentLevel
	ToppingIDs []string
	Quantity   int
}

// LineKey normalizes a configuration into its composite identity. Two
// configurations with the same key must merge into one line.
func LineKey(productID string, size enums.DrinkSize, sugar, ice enums.AdjustmentLevel, toppingIDs []string) string {
	sorted := make([]string, len(toppingIDs))
	copy(sorted, toppingIDs)
	sort.Strings(sorted)
	parts := append([]string{productID, size.String(), sugar.String(), ice.String()}, sorted...)
	return strings.Join(parts, "|")
}

// Add merges the configuration into the cart, pricing the line from the
// catalog at add time.
func (c *Cart) Add(cat catalog.Catalog, input AddInput) (*Item, error) {
	if input.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}
	if !input.Size.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid drink size")
	}
	if !input.SugarLevel.IsValid() || !input.IceLevel.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid sugar or ice level")
	}

	product, err := cat.Product(input.ProductID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
	}

	unitPrice := product.BasePrice + product.SizeDeltas[input.Size]
	for _, toppingID := range input.ToppingIDs {
		topping, err := cat.Topping(toppingID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "topping not found")
		}
		unitPrice += topping.Price
	}

	key := LineKey(input.ProductID, input.Size, input.SugarLevel, input.IceLevel, input.ToppingIDs)
	for i := range c.Items {
		if c.Items[i].Key == key {
			c.Items[i].Quantity += input.Quantity
			return &c.Items[i], nil
		}
	}

	sorted := make([]string, len(input.ToppingIDs))
	copy(sorted, input.ToppingIDs)
	sort.Strings(sorted)

	item := Item{
		Key:        key,
		ProductID:  input.ProductID,
		Name:       product.Name,
		Size:       input.Size,
		SugarLevel: input.SugarLevel,
		IceLevel:   input.IceLevel,
		ToppingIDs: sorted,
		UnitPrice:  unitPrice,
		Quantity:   input.Quantity,
	}
	c.Items = append(c.Items, item)
	return &c.Items[len(c.Items)-1], nil
}

// Remove drops the line with the given key. Unknown keys are a no-op.
func (c *Cart) Remove(key string) {
	for i := range c.Items {
		if c.Items[i].Key == key {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Invoked when the bound branch changes: items
// priced under another branch's menu must never survive a switch.
func (c *Cart) Clear() {
	c.Items = nil
}

// Subtotal sums the merged lines.
func (c *Cart) Subtotal() int {
	total := 0
	for _, item := range c.Items {
		total += item.UnitPrice * item.Quantity
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
