// Package entity defines the core business entities for the domain layer.
package entity

// Category is one of the fixed expense category labels.
type Category string

const (
	CategoryFoodGroceries Category = "Food & Groceries"
	CategoryTransport     Category = "Transport"
	CategoryBills         Category = "Bills"
	CategoryRent          Category = "Rent"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealth        Category = "Health"
	CategoryEducation     Category = "Education"
	CategorySubscriptions Category = "Subscriptions"
	CategoryElectronics   Category = "Electronics and Gadget"
	CategorySportsFitness Category = "Sports & Fitness"
	CategoryHangouts      Category = "Hangouts"
	CategoryOther         Category = "Other"
)

// Categories returns every category label in display order.
func Categories() []Category {
	return []Category{
		CategoryFoodGroceries,
		CategoryTransport,
		CategoryBills,
		CategoryRent,
		CategoryShopping,
		CategoryEntertainment,
		CategoryHealth,
		CategoryEducation,
		CategorySubscriptions,
		CategoryElectronics,
		CategorySportsFitness,
		CategoryHangouts,
		CategoryOther,
	}
}

// IsValidCategory reports whether the label is one of the fixed categories.
func IsValidCategory(label string) bool {
	for _, c := range Categories() {
		if string(c) == label {
			return true
		}
	}
	return false
}

// NormalizeCategory maps a free-form label onto the fixed category set.
// Unrecognized labels fall back to CategoryOther.
func NormalizeCategory(label string) Category {
	if IsValidCategory(label) {
		return Category(label)
	}
	return CategoryOther
}
