package produce

import (
	"strconv"
	"strings"
)

// Defaults applied when an item is created without a category or unit.
const (
	DefaultCategory = "Uncategorized"
	DefaultUnit     = "unit"
)

// Normalize returns the identity key for an item name: trimmed and
// case-folded. No two items in a ledger may share a normalized name.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Item is a single produce entry: a named, quantity- and price-tracked
// stock line. Quantity and price are mutated only through the validated
// setters, so they can never go negative.
type Item struct {
	name     string
	quantity int64
	price    Money
	category string
	unit     string
}

// NewItem creates an item, applying the default category and unit when the
// arguments are empty. The name must be non-empty after trimming, and
// quantity and price must be non-negative.
func NewItem(name string, quantity int64, price Money, category, unit string) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, Invalidf("item name cannot be empty")
	}
	if category == "" {
		category = DefaultCategory
	}
	if unit == "" {
		unit = DefaultUnit
	}
	it := &Item{name: name, category: category, unit: unit}
	if err := it.SetQuantity(quantity); err != nil {
		return nil, err
	}
	if err := it.SetPrice(price); err != nil {
		return nil, err
	}
	return it, nil
}

func (i *Item) Name() string     { return i.name }
func (i *Item) Quantity() int64  { return i.quantity }
func (i *Item) Price() Money     { return i.price }
func (i *Item) Category() string { return i.category }
func (i *Item) Unit() string     { return i.unit }

// Key returns the normalized name under which the item is indexed.
func (i *Item) Key() string { return Normalize(i.name) }

// Value returns the current stock value: quantity times unit price.
func (i *Item) Value() Money { return i.price.MulInt(i.quantity) }

// SetQuantity replaces the stock quantity. Negative values are rejected.
func (i *Item) SetQuantity(quantity int64) error {
	if quantity < 0 {
		return Invalidf("quantity cannot be negative, got %d", quantity)
	}
	i.quantity = quantity
	return nil
}

// SetPrice replaces the unit price. Negative values are rejected.
func (i *Item) SetPrice(price Money) error {
	if price.IsNegative() {
		return Invalidf("price cannot be negative, got %s", price.StringFixed())
	}
	i.price = price
	return nil
}

// String renders the item the way the stock listing shows it.
func (i *Item) String() string {
	var b strings.Builder
	b.WriteString(i.name)
	b.WriteString(" | ")
	b.WriteString(i.category)
	b.WriteString(" | ")
	b.WriteString(strconv.FormatInt(i.quantity, 10))
	b.WriteString(" ")
	b.WriteString(i.unit)
	b.WriteString(" | ")
	b.WriteString(i.price.String())
	b.WriteString(" each")
	return b.String()
}

// MarshalJSON writes the item record with a stable field order.
func (i *Item) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", i.name)
	w.Append("quantity", i.quantity)
	w.Append("price_per_unit", i.price)
	w.Append("category", i.category)
	w.Append("unit_of_measurement", i.unit)
	return w.MarshalJSON()
}
