package repo

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProductUpdateAssignments(t *testing.T) {
	assert.True(t, ProductUpdate{}.IsEmpty())

	price := decimal.RequireFromString("9.99")
	sold := false
	name := "Mug"
	pu := ProductUpdate{IsSold: &sold, RetailPrice: &price, Name: &name}

	got := pu.assignments()
	assert.Equal(t, []assignment{
		{"product_name", "Mug"},
		{"product_retail_price", price},
		{"is_sold", false},
	}, got)
	assert.False(t, pu.IsEmpty())
}

func TestProductUpdateAssignments_ClearStoresNull(t *testing.T) {
	pu := ProductUpdate{ClearDescription: true, ClearUniqueCode: true}

	assert.False(t, pu.IsEmpty())
	assert.Equal(t, []assignment{
		{"unique_code", nil},
		{"description", nil},
	}, pu.assignments())
}
