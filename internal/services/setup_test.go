package services

import (
	"testing"

	"github.com/franciscosanchezn/pizza-delivery-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.PizzaType{},
		&models.PizzaFlavor{},
		&models.PizzaExtra{},
		&models.PizzaCrust{},
		&models.BeverageCategory{},
		&models.Beverage{},
		&models.CustomerUser{},
		&models.Address{},
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderItemExtra{},
	)
	require.NoError(t, err)

	return db
}

// testMenu is the catalog fixture shared by the service tests.
type testMenu struct {
	Type     models.PizzaType
	Flavor1  models.PizzaFlavor
	Flavor2  models.PizzaFlavor
	Extra    models.PizzaExtra
	Crust    models.PizzaCrust
	Category models.BeverageCategory
	Beverage models.Beverage
}

func seedTestMenu(t *testing.T, db *gorm.DB) testMenu {
	menu := testMenu{
		Extra: models.PizzaExtra{Name: "Extra Cheese", Price: 3.50},
		Crust: models.PizzaCrust{Name: "Cheese Stuffed", Price: 6.00},
	}
	require.NoError(t, db.Create(&menu.Extra).Error)
	require.NoError(t, db.Create(&menu.Crust).Error)

	menu.Type = models.PizzaType{
		Name:            "Large",
		BasePrice:       45.00,
		AvailableExtras: []models.PizzaExtra{menu.Extra},
		AvailableCrusts: []models.PizzaCrust{menu.Crust},
	}
	require.NoError(t, db.Create(&menu.Type).Error)

	menu.Flavor1 = models.PizzaFlavor{Name: "Margherita", Price: 10.00}
	menu.Flavor2 = models.PizzaFlavor{Name: "Pepperoni", Price: 12.00}
	require.NoError(t, db.Create(&menu.Flavor1).Error)
	require.NoError(t, db.Create(&menu.Flavor2).Error)

	menu.Category = models.BeverageCategory{Name: "Soft Drinks"}
	require.NoError(t, db.Create(&menu.Category).Error)
	menu.Beverage = models.Beverage{Name: "Cola 2L", Price: 10.00, CategoryID: &menu.Category.ID}
	require.NoError(t, db.Create(&menu.Beverage).Error)

	return menu
}

func createTestCustomer(t *testing.T, db *gorm.DB, email string) models.CustomerUser {
	customer := models.CustomerUser{Name: "Test Customer", Email: email}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}
