package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusValid(t *testing.T) {
	valid := []OrderStatus{
		OrderStatusReceived,
		OrderStatusPreparing,
		OrderStatusOutForDelivery,
		OrderStatusCompleted,
		OrderStatusCancelled,
	}
	for _, status := range valid {
		assert.True(t, status.Valid(), "expected %s to be valid", status)
	}

	assert.False(t, OrderStatus("BAKING").Valid())
	assert.False(t, OrderStatus("").Valid())
	// statuses are case sensitive
	assert.False(t, OrderStatus("received").Valid())
}

func TestExtraTargetRoundTrip(t *testing.T) {
	extra := PizzaExtra{ID: "extra-1", Name: "Extra Cheese"}
	flavor := PizzaFlavor{ID: "flavor-1", Name: "Margherita"}

	whole := NewAppliedExtra(extra, WholeItem{})
	assert.Equal(t, "extra-1", whole.ExtraID)
	assert.Nil(t, whole.AppliedToFlavorID)
	_, ok := whole.Target().(WholeItem)
	assert.True(t, ok)

	targeted := NewAppliedExtra(extra, SpecificFlavor{Flavor: flavor})
	require.NotNil(t, targeted.AppliedToFlavorID)
	assert.Equal(t, "flavor-1", *targeted.AppliedToFlavorID)
	got, ok := targeted.Target().(SpecificFlavor)
	require.True(t, ok)
	assert.Equal(t, "flavor-1", got.Flavor.ID)
}

func TestAddressMatches(t *testing.T) {
	saved := Address{
		Street:       "Rua das Flores",
		Number:       "123",
		Complement:   "Apto 12",
		Neighborhood: "Centro",
		City:         "Sao Paulo",
		ZipCode:      "01000-000",
	}

	same := DeliveryAddress{Street: "Rua das Flores", Number: "123", ZipCode: "01000-000"}
	assert.True(t, saved.Matches(same))

	// complement and neighborhood do not participate in identity
	differentComplement := same
	differentComplement.Complement = "Casa"
	differentComplement.Neighborhood = "Jardins"
	assert.True(t, saved.Matches(differentComplement))

	differentNumber := same
	differentNumber.Number = "456"
	assert.False(t, saved.Matches(differentNumber))

	differentZip := same
	differentZip.ZipCode = "02000-000"
	assert.False(t, saved.Matches(differentZip))
}

func TestToOrderResponse(t *testing.T) {
	flavor := PizzaFlavor{ID: "flavor-1", Name: "Margherita"}
	pizzaType := PizzaType{ID: "type-1", Name: "Large"}
	extra := PizzaExtra{ID: "extra-1", Name: "Extra Cheese"}
	now := time.Now()

	order := Order{
		ID: "order-1",
		Items: []OrderItem{
			{
				ID:        "item-1",
				ItemType:  OrderItemTypePizza,
				PizzaType: &pizzaType,
				Flavors:   []PizzaFlavor{flavor},
				AppliedExtras: []OrderItemExtra{
					NewAppliedExtra(extra, SpecificFlavor{Flavor: flavor}),
					NewAppliedExtra(extra, WholeItem{}),
				},
				Quantity:   1,
				TotalPrice: 58.00,
			},
			{
				ID:       "item-2",
				ItemType: OrderItemTypeBeverage,
				Beverage: &Beverage{ID: "bev-1", Name: "Cola 2L"},
				Quantity: 1,
			},
		},
		CustomerUser:          &CustomerUser{ID: "cust-1", Name: "Ana", Email: "ana@example.com"},
		DeliveryType:          DeliveryTypePickup,
		Status:                OrderStatusReceived,
		CreatedAt:             now,
		EstimatedDeliveryTime: now.Add(45 * time.Minute),
		TotalAmount:           68.00,
	}

	resp := ToOrderResponse(&order)

	assert.Equal(t, "order-1", resp.ID)
	assert.Equal(t, OrderStatusReceived, resp.Status)
	assert.Equal(t, "cust-1", resp.Customer.ID)
	assert.Equal(t, "ana@example.com", resp.Customer.Email)
	require.Len(t, resp.Items, 2)

	pizza := resp.Items[0]
	require.Len(t, pizza.AppliedExtras, 2)
	require.NotNil(t, pizza.AppliedExtras[0].AppliedToFlavor)
	assert.Equal(t, "flavor-1", pizza.AppliedExtras[0].AppliedToFlavor.ID)
	assert.Nil(t, pizza.AppliedExtras[1].AppliedToFlavor)

	beverage := resp.Items[1]
	require.NotNil(t, beverage.Beverage)
	assert.Empty(t, beverage.AppliedExtras)
}

func TestCustomerPasswordNeverSerialized(t *testing.T) {
	password := "hashed-secret"
	customer := CustomerUser{
		ID:       "cust-1",
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: &password,
	}

	data, err := json.Marshal(customer)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hashed-secret")
}
