package catalog

import (
	"errors"

	"github.com/franciscosanchezn/pizza-delivery-api/internal/models"
	"gorm.io/gorm"
)

// Lookup resolves catalog entity ids against the stored menu. Single-id
// getters return a *models.NotFoundError when the id does not exist; the
// batch getters simply omit missing ids, so callers that care about gaps
// must check the result length themselves.
type Lookup interface {
	PizzaTypeByID(id string) (*models.PizzaType, error)
	PizzaTypesByIDs(ids []string) ([]models.PizzaType, error)
	FlavorByID(id string) (*models.PizzaFlavor, error)
	FlavorsByIDs(ids []string) ([]models.PizzaFlavor, error)
	ExtraByID(id string) (*models.PizzaExtra, error)
	CrustByID(id string) (*models.PizzaCrust, error)
	BeverageByID(id string) (*models.Beverage, error)
	BeverageCategoryByID(id string) (*models.BeverageCategory, error)
}

type gormLookup struct {
	db *gorm.DB
}

// NewLookup creates a Lookup backed by the given gorm connection. Passing a
// transaction handle scopes every resolution to that transaction.
func NewLookup(db *gorm.DB) Lookup {
	return &gormLookup{db: db}
}

// notFound maps gorm's record-not-found to the domain error, leaving other
// storage errors untouched.
func notFound(err error, kind, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFound(kind, id)
	}
	return err
}

func (l *gormLookup) PizzaTypeByID(id string) (*models.PizzaType, error) {
	var pizzaType models.PizzaType
	if err := l.db.Preload("AvailableExtras").Preload("AvailableCrusts").
		First(&pizzaType, "id = ?", id).Error; err != nil {
		return nil, notFound(err, models.KindPizzaType, id)
	}
	return &pizzaType, nil
}

func (l *gormLookup) PizzaTypesByIDs(ids []string) ([]models.PizzaType, error) {
	if len(ids) == 0 {
		return []models.PizzaType{}, nil
	}
	var types []models.PizzaType
	if err := l.db.Find(&types, "id IN ?", ids).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (l *gormLookup) FlavorByID(id string) (*models.PizzaFlavor, error) {
	var flavor models.PizzaFlavor
	if err := l.db.First(&flavor, "id = ?", id).Error; err != nil {
		return nil, notFound(err, models.KindPizzaFlavor, id)
	}
	return &flavor, nil
}

func (l *gormLookup) FlavorsByIDs(ids []string) ([]models.PizzaFlavor, error) {
	if len(ids) == 0 {
		return []models.PizzaFlavor{}, nil
	}
	var flavors []models.PizzaFlavor
	if err := l.db.Find(&flavors, "id IN ?", ids).Error; err != nil {
		return nil, err
	}
	return flavors, nil
}

func (l *gormLookup) ExtraByID(id string) (*models.PizzaExtra, error) {
	var extra models.PizzaExtra
	if err := l.db.First(&extra, "id = ?", id).Error; err != nil {
		return nil, notFound(err, models.KindPizzaExtra, id)
	}
	return &extra, nil
}

func (l *gormLookup) CrustByID(id string) (*models.PizzaCrust, error) {
	var crust models.PizzaCrust
	if err := l.db.First(&crust, "id = ?", id).Error; err != nil {
		return nil, notFound(err, models.KindPizzaCrust, id)
	}
	return &crust, nil
}

func (l *gormLookup) BeverageByID(id string) (*models.Beverage, error) {
	var beverage models.Beverage
	if err := l.db.Preload("Category").First(&beverage, "id = ?", id).Error; err != nil {
		return nil, notFound(err, models.KindBeverage, id)
	}
	return &beverage, nil
}

func (l *gormLookup) BeverageCategoryByID(id string) (*models.BeverageCategory, error) {
	var category models.BeverageCategory
	if err := l.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, notFound(err, models.KindBeverageCategory, id)
	}
	return &category, nil
}
