package services

import (
	"errors"
	"testing"

	"github.com/franciscosanchezn/pizza-delivery-api/internal/catalog"
	"github.com/franciscosanchezn/pizza-delivery-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePizzaLine(t *testing.T) {
	db := setupTestDB(t)
	menu := seedTestMenu(t, db)
	resolver := NewCartItemResolver(catalog.NewLookup(db))

	items, err := resolver.Resolve([]models.CartItemRequest{
		{
			ItemType:    models.OrderItemTypePizza,
			PizzaTypeID: menu.Type.ID,
			FlavorIDs:   []string{menu.Flavor1.ID, menu.Flavor2.ID},
			CrustID:     menu.Crust.ID,
			Quantity:    1,
			TotalPrice:  63.00,
		},
	})
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, models.OrderItemTypePizza, item.ItemType)
	require.NotNil(t, item.PizzaType)
	assert.Equal(t, menu.Type.ID, item.PizzaType.ID)
	assert.Len(t, item.Flavors, 2)
	require.NotNil(t, item.Crust)
	assert.Equal(t, menu.Crust.ID, item.Crust.ID)
	assert.Equal(t, 63.00, item.TotalPrice)
}

func TestResolveBeverageLine(t *testing.T) {
	db := setupTestDB(t)
	menu := seedTestMenu(t, db)
	resolver := NewCartItemResolver(catalog.NewLookup(db))

	items, err := resolver.Resolve([]models.CartItemRequest{
		{
			ItemType:   models.OrderItemTypeBeverage,
			BeverageID: menu.Beverage.ID,
			Quantity:   2,
			TotalPrice: 20.00,
		},
	})
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, models.OrderItemTypeBeverage, item.ItemType)
	require.NotNil(t, item.Beverage)
	assert.Equal(t, menu.Beverage.ID, item.Beverage.ID)
	assert.Nil(t, item.PizzaType)
}

func TestResolveExtraTargetsFlavor(t *testing.T) {
	db := setupTestDB(t)
	menu := seedTestMenu(t, db)
	resolver := NewCartItemResolver(catalog.NewLookup(db))

	items, err := resolver.Resolve([]models.CartItemRequest{
		{
			ItemType:    models.OrderItemTypePizza,
			PizzaTypeID: menu.Type.ID,
			FlavorIDs:   []string{menu.Flavor1.ID, menu.Flavor2.ID},
			ExtraSelections: []models.ExtraSelection{
				{ExtraID: menu.Extra.ID, FlavorID: menu.Flavor1.ID},
				{ExtraID: menu.Extra.ID},
			},
			Quantity: 1,
		},
	})
	require.NoError(t, err)
	require.Len(t, items[0].AppliedExtras, 2)

	targeted := items[0].AppliedExtras[0].Target()
	flavorTarget, ok := targeted.(models.SpecificFlavor)
	require.True(t, ok)
	assert.Equal(t, menu.Flavor1.ID, flavorTarget.Flavor.ID)

	whole := items[0].AppliedExtras[1].Target()
	_, ok = whole.(models.WholeItem)
	assert.True(t, ok)
}

func TestResolveEmptyFlavorsRejected(t *testing.T) {
	db := setupTestDB(t)
	menu := seedTestMenu(t, db)
	resolver := NewCartItemResolver(catalog.NewLookup(db))

	_, err := resolver.Resolve([]models.CartItemRequest{
		{
			ItemType:    models.OrderItemTypePizza,
			PizzaTypeID: menu.Type.ID,
			FlavorIDs:   []string{},
			Quantity:    1,
		},
	})
	require.Error(t, err)
	var validation *models.ValidationError
	assert.True(t, errors.As(err, &validation))
}

func TestResolveUnknownReferences(t *testing.T) {
	db := setupTestDB(t)
	menu := seedTestMenu(t, db)
	resolver := NewCartItemResolver(catalog.NewLookup(db))

	testCases := []struct {
		name       string
		line       models.CartItemRequest
		expectKind string
		expectID   string
	}{
		{
			name: "unknown pizza type",
			line: models.CartItemRequest{
				ItemType:    models.OrderItemTypePizza,
				PizzaTypeID: "no-such-type",
				FlavorIDs:   []string{menu.Flavor1.ID},
			},
			expectKind: models.KindPizzaType,
			expectID:   "no-such-type",
		},
		{
			name: "unknown flavor in batch",
			line: models.CartItemRequest{
				ItemType:    models.OrderItemTypePizza,
				PizzaTypeID: menu.Type.ID,
				FlavorIDs:   []string{menu.Flavor1.ID, "no-such-flavor"},
			},
			expectKind: models.KindPizzaFlavor,
			expectID:   "no-such-flavor",
		},
		{
			name: "unknown crust",
			line: models.CartItemRequest{
				ItemType:    models.OrderItemTypePizza,
				PizzaTypeID: menu.Type.ID,
				FlavorIDs:   []string{menu.Flavor1.ID},
				CrustID:     "no-such-crust",
			},
			expectKind: models.KindPizzaCrust,
			expectID:   "no-such-crust",
		},
		{
			name: "unknown extra",
			line: models.CartItemRequest{
				ItemType:        models.OrderItemTypePizza,
				PizzaTypeID:     menu.Type.ID,
				FlavorIDs:       []string{menu.Flavor1.ID},
				ExtraSelections: []models.ExtraSelection{{ExtraID: "no-such-extra"}},
			},
			expectKind: models.KindPizzaExtra,
			expectID:   "no-such-extra",
		},
		{
			name: "unknown beverage",
			line: models.CartItemRequest{
				ItemType:   models.OrderItemTypeBeverage,
				BeverageID: "no-such-beverage",
			},
			expectKind: models.KindBeverage,
			expectID:   "no-such-beverage",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolver.Resolve([]models.CartItemRequest{tt.line})
			require.Error(t, err)
			var notFound *models.NotFoundError
			require.True(t, errors.As(err, &notFound))
			assert.Equal(t, tt.expectKind, notFound.Kind)
			assert.Equal(t, tt.expectID, notFound.ID)
		})
	}
}

func TestResolveUnknownItemType(t *testing.T) {
	db := setupTestDB(t)
	seedTestMenu(t, db)
	resolver := NewCartItemResolver(catalog.NewLookup(db))

	_, err := resolver.Resolve([]models.CartItemRequest{
		{ItemType: "DESSERT", Quantity: 1},
	})
	require.Error(t, err)
	var validation *models.ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Contains(t, validation.Reason, "DESSERT")
}

func TestResolvePreservesLineOrder(t *testing.T) {
	db := setupTestDB(t)
	menu := seedTestMenu(t, db)
	resolver := NewCartItemResolver(catalog.NewLookup(db))

	items, err := resolver.Resolve([]models.CartItemRequest{
		{ItemType: models.OrderItemTypeBeverage, BeverageID: menu.Beverage.ID, Quantity: 1},
		{ItemType: models.OrderItemTypePizza, PizzaTypeID: menu.Type.ID, FlavorIDs: []string{menu.Flavor1.ID}, Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, models.OrderItemTypeBeverage, items[0].ItemType)
	assert.Equal(t, models.OrderItemTypePizza, items[1].ItemType)
}
