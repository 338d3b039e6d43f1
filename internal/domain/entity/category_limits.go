package entity

// CategoryLimits maps a category to its monthly spending threshold.
// The map is sparse: an absent category has no limit. Present values are
// strictly positive.
type CategoryLimits map[Category]float64
