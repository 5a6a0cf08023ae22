package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hamza99-sudo/wondershop-client/internal/domain/entity"
)

func TestFindVariant_ExactPairOnly(t *testing.T) {
	p := entity.Product{
		ID: "p1",
		Variants: []entity.Variant{
			{ID: "v1", Size: "M", Color: "bleu", Quantity: 3},
			{ID: "v2", Size: "M", Color: "blanc", Quantity: 0},
			{ID: "v3", Size: "L", Color: "bleu", Quantity: 7},
		},
	}

	v := p.FindVariant("M", "blanc")
	require.NotNil(t, v)
	assert.Equal(t, "v2", v.ID)
	assert.False(t, v.InStock())

	// No permissive fallback on a partial match: the size alone is ambiguous.
	assert.Nil(t, p.FindVariant("M", ""))
	assert.Nil(t, p.FindVariant("", "bleu"))
	assert.Nil(t, p.FindVariant("XL", "bleu"))
}

func TestSnapshotFreezesPricing(t *testing.T) {
	p := entity.Product{
		ID:              "p1",
		Name:            "Boubou brodé",
		SKU:             "BOU-001",
		RetailPrice:     decimal.NewFromInt(1000),
		WholesalePrice:  decimal.NewFromInt(800),
		MinWholesaleQty: 10,
		Images:          []string{"/uploads/a.jpg"},
	}

	snap := p.Snapshot()

	assert.Equal(t, "p1", snap.ID)
	assert.True(t, snap.RetailPrice.Equal(decimal.NewFromInt(1000)))
	assert.True(t, snap.WholesalePrice.Equal(decimal.NewFromInt(800)))
	assert.Equal(t, 10, snap.MinWholesaleQty)
	assert.Equal(t, []string{"/uploads/a.jpg"}, snap.Images)
}

func TestLinePricingRule(t *testing.T) {
	line := entity.CartLine{
		ProductID: "p1",
		Product: entity.ProductSnapshot{
			RetailPrice:     decimal.NewFromInt(1000),
			WholesalePrice:  decimal.NewFromInt(800),
			MinWholesaleQty: 10,
		},
		Quantity: 9,
	}

	assert.True(t, line.UnitPrice(entity.OrderTypeRetail).Equal(decimal.NewFromInt(1000)))
	assert.True(t, line.UnitPrice(entity.OrderTypeWholesale).Equal(decimal.NewFromInt(1000)), "9 < 10")

	line.Quantity = 10
	assert.True(t, line.UnitPrice(entity.OrderTypeWholesale).Equal(decimal.NewFromInt(800)))
	assert.True(t, line.LineTotal(entity.OrderTypeWholesale).Equal(decimal.NewFromInt(8000)))
}

func TestRoleValidation(t *testing.T) {
	for _, r := range entity.AllRoles() {
		assert.True(t, r.IsValid(), string(r))
	}
	assert.False(t, entity.Role("SUPERADMIN").IsValid())
	assert.False(t, entity.Role("admin").IsValid(), "roles are uppercase on the wire")

	assert.True(t, entity.RoleCashier.In(entity.StaffRoles()...))
	assert.False(t, entity.RoleCustomer.In(entity.StaffRoles()...))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Awa Diop", entity.UserProfile{FirstName: "Awa", LastName: "Diop"}.DisplayName())
	assert.Equal(t, "Awa", entity.UserProfile{FirstName: "Awa"}.DisplayName())
	assert.Equal(t, "a@b.sn", entity.UserProfile{Email: "a@b.sn"}.DisplayName())
}
