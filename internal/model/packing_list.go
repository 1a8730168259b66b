package model

import "time"

// PackingList is a named collection of gear for one trip.
//
// Description is a *string because the column is nullable: a nil pointer
// serialises as JSON null, an empty string stays "".
type PackingList struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DetailedPackingList is the read model returned by the detail view: the
// list's own fields, every gear item enriched with its alternates and total
// weight, and the aggregate summary.
//
// The embedded PackingList is flattened into the same JSON object by
// encoding/json, so clients see id/name/description next to gear_items.
type DetailedPackingList struct {
	PackingList
	GearItems []GearItemDetail   `json:"gear_items"`
	Summary   PackingListSummary `json:"summary"`
}

// CreatePackingListInput is the payload for creating a packing list.
type CreatePackingListInput struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description *string `json:"description"`
}

// UpdatePackingListInput carries a partial update. Absent fields are left
// untouched; Description may be explicitly set to null.
type UpdatePackingListInput struct {
	Name        Optional[string] `json:"name" validate:"omitempty,min=1,max=200"`
	Description Optional[string] `json:"description"`
}

// IsEmpty reports whether the update carries no fields at all.
func (in UpdatePackingListInput) IsEmpty() bool {
	return !in.Name.Set && !in.Description.Set
}
