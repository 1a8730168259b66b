package model

import "time"

// GearItem is one piece of equipment tracked within a packing list.
// IndividualWeight is the per-unit weight in grams.
type GearItem struct {
	ID               int64     `json:"id"`
	PackingListID    int64     `json:"packing_list_id"`
	Name             string    `json:"name"`
	IndividualWeight float64   `json:"individual_weight"`
	Quantity         int       `json:"quantity"`
	Category         Category  `json:"category"`
	Notes            *string   `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TotalWeight is IndividualWeight × Quantity.
func (g GearItem) TotalWeight() float64 {
	return g.IndividualWeight * float64(g.Quantity)
}

// GearItemDetail is a GearItem as shown in the detail view.
type GearItemDetail struct {
	GearItem
	TotalWeight       float64            `json:"total_weight"`
	AlternateProducts []AlternateProduct `json:"alternate_products"`
}

// CreateGearItemInput is the payload for adding a gear item to a list.
type CreateGearItemInput struct {
	PackingListID    int64    `json:"packing_list_id" validate:"gt=0"`
	Name             string   `json:"name" validate:"required,max=200"`
	IndividualWeight float64  `json:"individual_weight" validate:"gt=0"`
	Quantity         int      `json:"quantity" validate:"gt=0"`
	Category         Category `json:"category" validate:"required,gearcategory"`
	Notes            *string  `json:"notes"`
}

// UpdateGearItemInput carries a partial update of a gear item.
// Only Notes is nullable; the other fields reject an explicit null.
type UpdateGearItemInput struct {
	Name             Optional[string]   `json:"name" validate:"omitempty,min=1,max=200"`
	IndividualWeight Optional[float64]  `json:"individual_weight" validate:"omitempty,gt=0"`
	Quantity         Optional[int]      `json:"quantity" validate:"omitempty,gt=0"`
	Category         Optional[Category] `json:"category" validate:"omitempty,gearcategory"`
	Notes            Optional[string]   `json:"notes"`
}

// IsEmpty reports whether the update carries no fields at all.
func (in UpdateGearItemInput) IsEmpty() bool {
	return !in.Name.Set && !in.IndividualWeight.Set && !in.Quantity.Set &&
		!in.Category.Set && !in.Notes.Set
}
