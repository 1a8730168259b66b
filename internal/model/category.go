// Package model defines the data structures used throughout the application.
//
// Three records are persisted: PackingList owns GearItems, GearItem owns
// AlternateProducts. Everything else in this package is either derived
// (summaries, detailed views) or an input shape for a create/update call.
package model

// Category is a fixed classification tag for a gear item.
type Category string

const (
	CategoryShelter     Category = "shelter"
	CategorySleepSystem Category = "sleep_system"
	CategoryCooking     Category = "cooking"
	CategoryClothing    Category = "clothing"
	CategoryNavigation  Category = "navigation"
	CategorySafety      Category = "safety"
	CategoryHygiene     Category = "hygiene"
	CategoryElectronics Category = "electronics"
	CategoryFood        Category = "food"
	CategoryWater       Category = "water"
	CategoryOther       Category = "other"
)

// Categories lists every valid category in declaration order.
var Categories = []Category{
	CategoryShelter,
	CategorySleepSystem,
	CategoryCooking,
	CategoryClothing,
	CategoryNavigation,
	CategorySafety,
	CategoryHygiene,
	CategoryElectronics,
	CategoryFood,
	CategoryWater,
	CategoryOther,
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
