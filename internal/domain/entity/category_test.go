package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory("Food & Groceries"))
	assert.True(t, IsValidCategory("Electronics and Gadget"))
	assert.True(t, IsValidCategory("Other"))
	assert.False(t, IsValidCategory("food & groceries"), "labels are case sensitive")
	assert.False(t, IsValidCategory("Groceries"))
	assert.False(t, IsValidCategory(""))
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, CategoryRent, NormalizeCategory("Rent"))
	assert.Equal(t, CategoryOther, NormalizeCategory("Pet Supplies"))
	assert.Equal(t, CategoryOther, NormalizeCategory(""))
}

func TestCategories(t *testing.T) {
	categories := Categories()
	assert.Len(t, categories, 13)
	assert.Equal(t, CategoryFoodGroceries, categories[0])
	assert.Equal(t, CategoryOther, categories[len(categories)-1])
}
