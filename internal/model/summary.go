package model

// PackingListSummary holds the aggregate weight statistics of one list.
//
// CategoryBreakdown has one entry per category that has at least one item.
// Its order is unspecified; consumers must not depend on it.
type PackingListSummary struct {
	PackingListID     int64               `json:"packing_list_id"`
	TotalWeight       float64             `json:"total_weight"`
	TotalItems        int                 `json:"total_items"`
	CategoryBreakdown []CategoryBreakdown `json:"category_breakdown"`
}

// CategoryBreakdown is the weight and unit count of one category.
type CategoryBreakdown struct {
	Category  Category `json:"category"`
	Weight    float64  `json:"weight"`
	ItemCount int      `json:"item_count"`
}

// DeleteResult is returned by every delete operation. Success is false when
// no row matched the id; that is not an error.
type DeleteResult struct {
	Success bool `json:"success"`
}
