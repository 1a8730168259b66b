package model

import "time"

// AlternateProduct is a substitute option recorded against a gear item, used
// for comparison shopping.
//
// Unlike PackingList and GearItem it has no UpdatedAt: only the creation time
// is tracked, even though its fields can be updated.
type AlternateProduct struct {
	ID          int64     `json:"id"`
	GearItemID  int64     `json:"gear_item_id"`
	Name        string    `json:"name"`
	Weight      float64   `json:"weight"`
	ProductLink *string   `json:"product_link"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateAlternateProductInput is the payload for recording an alternate.
type CreateAlternateProductInput struct {
	GearItemID  int64   `json:"gear_item_id" validate:"gt=0"`
	Name        string  `json:"name" validate:"required,max=200"`
	Weight      float64 `json:"weight" validate:"gt=0"`
	ProductLink *string `json:"product_link" validate:"omitempty,url"`
	Notes       *string `json:"notes"`
}

// UpdateAlternateProductInput carries a partial update of an alternate.
type UpdateAlternateProductInput struct {
	Name        Optional[string]  `json:"name" validate:"omitempty,min=1,max=200"`
	Weight      Optional[float64] `json:"weight" validate:"omitempty,gt=0"`
	ProductLink Optional[string]  `json:"product_link" validate:"omitempty,url"`
	Notes       Optional[string]  `json:"notes"`
}

// IsEmpty reports whether the update carries no fields at all.
func (in UpdateAlternateProductInput) IsEmpty() bool {
	return !in.Name.Set && !in.Weight.Set && !in.ProductLink.Set && !in.Notes.Set
}
