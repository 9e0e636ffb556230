package domain

import "strings"

// Category is one of the fixed menu categories of the catalog
type Category string

const (
	CategoryMainDishes Category = "mainDishes"
	CategorySideDishes Category = "sideDishes"
	CategoryDesserts   Category = "desserts"
	CategoryDrinks     Category = "drinks"
)

// Categories lists the menu categories in display order
var Categories = []Category{
	CategoryMainDishes,
	CategorySideDishes,
	CategoryDesserts,
	CategoryDrinks,
}

// Selection is the set of chosen item names per category
type Selection struct {
	MainDishes []string `json:"mainDishes"`
	SideDishes []string `json:"sideDishes"`
	Desserts   []string `json:"desserts"`
	Drinks     []string `json:"drinks"`
}

// Items returns the items chosen in category c
func (s Selection) Items(c Category) []string {
	switch c {
	case CategoryMainDishes:
		return s.MainDishes
	case CategorySideDishes:
		return s.SideDishes
	case CategoryDesserts:
		return s.Desserts
	case CategoryDrinks:
		return s.Drinks
	default:
		return nil
	}
}

// Normalized returns a copy with blank and duplicate items removed.
// Order of first occurrence is kept and nil categories become empty slices.
func (s Selection) Normalized() Selection {
	return Selection{
		MainDishes: uniqueItems(s.MainDishes),
		SideDishes: uniqueItems(s.SideDishes),
		Desserts:   uniqueItems(s.Desserts),
		Drinks:     uniqueItems(s.Drinks),
	}
}

// IsEmpty returns true if nothing is selected in any category
func (s Selection) IsEmpty() bool {
	return len(s.MainDishes)+len(s.SideDishes)+len(s.Desserts)+len(s.Drinks) == 0
}

func uniqueItems(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Booking represents one customer's catering order and event details.
// JSON field names are the persisted document layout.
type Booking struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
	EventDate string `json:"eventDate"` // YYYY-MM-DD
	Venue     string `json:"venue"`
	Guests    int    `json:"guests"`
	Style     string `json:"style"`
	Selection
	// Total is a price snapshot taken at save time, never recomputed
	Total int `json:"total"`
}

// MatchesName returns true if the booking name contains query, case-insensitively.
// An empty query matches every booking.
func (b *Booking) MatchesName(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.Name), strings.ToLower(query))
}
