package domain

import (
	"sort"
	"strings"
)

// Catalog is the static price table together with the fixed fees
type Catalog struct {
	Items    map[Category]map[string]int
	PerHead  int // charged per guest
	StyleFee int // flat, independent of the chosen style
	Styles   []string
	Sets     map[string]Selection // preset packages, keyed by upper-case name
}

// DefaultCatalog returns the built-in price table
func DefaultCatalog() *Catalog {
	return &Catalog{
		Items: map[Category]map[string]int{
			CategoryMainDishes: {"Adobo": 1200, "Caldereta": 1200, "Menudo": 1800, "Sinigang": 1700, "KareKare": 1200},
			CategorySideDishes: {"Rice": 1000, "Lumpia": 1500, "SweetSour": 1700, "FruitSalad": 1100, "CornSalad": 1700},
			CategoryDesserts:   {"Ice Cream": 600, "LecheFlan": 1800, "Brownies": 1700, "FruitTart": 900, "HaloHalo": 1000},
			CategoryDrinks:     {"Water": 1200, "IcedTea": 1400, "SoftDrinks": 1500, "Juice": 1600, "Coffee": 1700},
		},
		PerHead:  DefaultPerHead,
		StyleFee: DefaultStyleFee,
		Styles:   []string{"Standard", "Elegant", "Garden", "Minimal", "Custom"},
		Sets: map[string]Selection{
			"A": {MainDishes: []string{"Adobo"}, SideDishes: []string{"Rice"}, Desserts: []string{"Ice Cream"}, Drinks: []string{"Water"}},
			"B": {MainDishes: []string{"Caldereta"}, SideDishes: []string{"Lumpia"}, Desserts: []string{"LecheFlan"}, Drinks: []string{"IcedTea"}},
			"C": {MainDishes: []string{"Menudo"}, SideDishes: []string{"SweetSour"}, Desserts: []string{"Brownies"}, Drinks: []string{"SoftDrinks"}},
		},
	}
}

// Price returns the unit price of item in category c, 0 if either is unknown
func (c *Catalog) Price(category Category, item string) int {
	items, ok := c.Items[category]
	if !ok {
		return 0
	}
	return items[item]
}

// ItemNames returns the item names of a category sorted alphabetically
func (c *Catalog) ItemNames(category Category) []string {
	names := make([]string, 0, len(c.Items[category]))
	for name := range c.Items[category] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasStyles returns true if the catalog restricts styles to an enumerated set
func (c *Catalog) HasStyles() bool {
	return len(c.Styles) > 0
}

// HasStyle returns true if style is allowed. Any style is allowed when the catalog has none.
func (c *Catalog) HasStyle(style string) bool {
	if !c.HasStyles() {
		return true
	}
	for _, s := range c.Styles {
		if s == style {
			return true
		}
	}
	return false
}

// DefaultStyle is the first listed style, or empty when styles are free-form
func (c *Catalog) DefaultStyle() string {
	if !c.HasStyles() {
		return ""
	}
	return c.Styles[0]
}

// Set returns the preset selection with the given name (case-insensitive)
func (c *Catalog) Set(name string) (Selection, bool) {
	s, ok := c.Sets[strings.ToUpper(strings.TrimSpace(name))]
	return s, ok
}

// SetNames returns preset names sorted alphabetically
func (c *Catalog) SetNames() []string {
	names := make([]string, 0, len(c.Sets))
	for name := range c.Sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
