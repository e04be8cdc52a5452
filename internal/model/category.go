package model

import "fmt"

// Category is a supported spending category. The set is closed: receipts are
// always filed under one of the five values below.
type Category string

// Supported categories, in fixed declaration order. The order is part of the
// engine's observable behavior: score ties resolve to the earliest entry.
const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryShopping      Category = "shopping"
	CategoryEntertainment Category = "entertainment"
	CategoryBills         Category = "bills"
)

// AllCategories returns every supported category in declaration order.
func AllCategories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryEntertainment,
		CategoryBills,
	}
}

// ParseCategory validates external input (config, CLI flags) against the
// closed category set.
func ParseCategory(s string) (Category, error) {
	for _, c := range AllCategories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

func (c Category) String() string {
	return string(c)
}
