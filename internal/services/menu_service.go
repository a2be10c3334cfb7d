package services

import (
	"errors"

	"github.com/franciscosanchezn/pizza-delivery-api/internal/catalog"
	"github.com/franciscosanchezn/pizza-delivery-api/internal/models"
	"gorm.io/gorm"
)

// MenuService provides catalog administration. Every edit that touches
// pizza-type association edges runs the edge reconciliation inside one
// transaction, so the symmetric relations never dangle.
type MenuService interface {
	GetAllTypes() ([]models.PizzaType, error)
	GetTypeByID(id string) (*models.PizzaType, error)
	CreateType(req models.PizzaTypeRequest) (*models.PizzaType, error)
	UpdateType(id string, req models.PizzaTypeRequest) (*models.PizzaType, error)
	DeleteType(id string) error
	// GetExtrasByTypeID lists the extras available on one pizza type
	GetExtrasByTypeID(typeID string) ([]models.PizzaExtra, error)
	// GetCrustsByTypeID lists the crusts available on one pizza type
	GetCrustsByTypeID(typeID string) ([]models.PizzaCrust, error)

	GetAllFlavors() ([]models.PizzaFlavor, error)
	CreateFlavor(req models.FlavorUpdateRequest) (*models.PizzaFlavor, error)
	UpdateFlavor(id string, req models.FlavorUpdateRequest) (*models.PizzaFlavor, error)
	DeleteFlavor(id string) error

	GetAllExtras() ([]models.PizzaExtra, error)
	CreateExtra(req models.ExtraUpdateRequest) (*models.PizzaExtra, error)
	UpdateExtra(id string, req models.ExtraUpdateRequest) (*models.PizzaExtra, error)
	DeleteExtra(id string) error

	GetAllCrusts() ([]models.PizzaCrust, error)
	CreateCrust(req models.CrustUpdateRequest) (*models.PizzaCrust, error)
	UpdateCrust(id string, req models.CrustUpdateRequest) (*models.PizzaCrust, error)
	DeleteCrust(id string) error

	GetAllBeverages() ([]models.Beverage, error)
	CreateBeverage(req models.BeverageRequest) (*models.Beverage, error)
	UpdateBeverage(id string, req models.BeverageRequest) (*models.Beverage, error)
	DeleteBeverage(id string) error

	GetAllBeverageCategories() ([]models.BeverageCategory, error)
	CreateBeverageCategory(req models.BeverageCategoryRequest) (*models.BeverageCategory, error)
	UpdateBeverageCategory(id string, req models.BeverageCategoryRequest) (*models.BeverageCategory, error)
	DeleteBeverageCategory(id string) error
}

// menuService is the implementation of the MenuService interface
type menuService struct {
	db *gorm.DB
}

// NewMenuService creates a new instance of MenuService
func NewMenuService(db *gorm.DB) MenuService {
	return &menuService{db: db}
}

// --- Pizza types ---

func (s *menuService) GetAllTypes() ([]models.PizzaType, error) {
	var types []models.PizzaType
	if err := s.db.Preload("AvailableExtras").Preload("AvailableCrusts").
		Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (s *menuService) GetTypeByID(id string) (*models.PizzaType, error) {
	return catalog.NewLookup(s.db).PizzaTypeByID(id)
}

func (s *menuService) CreateType(req models.PizzaTypeRequest) (*models.PizzaType, error) {
	pizzaType := &models.PizzaType{
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pizzaType).Error; err != nil {
			return err
		}
		return s.replaceTypeAssociations(tx, pizzaType, req.ExtraIDs, req.CrustIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.GetTypeByID(pizzaType.ID)
}

func (s *menuService) UpdateType(id string, req models.PizzaTypeRequest) (*models.PizzaType, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var pizzaType models.PizzaType
		if err := tx.First(&pizzaType, "id = ?", id).Error; err != nil {
			return typeNotFound(err, id)
		}
		pizzaType.Name = req.Name
		pizzaType.Description = req.Description
		pizzaType.BasePrice = req.BasePrice
		if err := tx.Save(&pizzaType).Error; err != nil {
			return err
		}
		return s.replaceTypeAssociations(tx, &pizzaType, req.ExtraIDs, req.CrustIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.GetTypeByID(id)
}

// replaceTypeAssociations re-resolves the submitted extra and crust ids and
// replaces both edge sets. Ids that do not resolve are dropped by the batch
// lookup.
func (s *menuService) replaceTypeAssociations(tx *gorm.DB, pizzaType *models.PizzaType, extraIDs, crustIDs []string) error {
	var extras []models.PizzaExtra
	if len(extraIDs) > 0 {
		if err := tx.Find(&extras, "id IN ?", extraIDs).Error; err != nil {
			return err
		}
	}
	if err := tx.Model(pizzaType).Association("AvailableExtras").Replace(extras); err != nil {
		return err
	}

	var crusts []models.PizzaCrust
	if len(crustIDs) > 0 {
		if err := tx.Find(&crusts, "id IN ?", crustIDs).Error; err != nil {
			return err
		}
	}
	return tx.Model(pizzaType).Association("AvailableCrusts").Replace(crusts)
}

func (s *menuService) DeleteType(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var pizzaType models.PizzaType
		if err := tx.First(&pizzaType, "id = ?", id).Error; err != nil {
			return typeNotFound(err, id)
		}
		// clear both edge sets before the row goes away
		if err := tx.Model(&pizzaType).Association("AvailableExtras").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&pizzaType).Association("AvailableCrusts").Clear(); err != nil {
			return err
		}
		return tx.Delete(&pizzaType).Error
	})
}

func (s *menuService) GetExtrasByTypeID(typeID string) ([]models.PizzaExtra, error) {
	pizzaType, err := s.GetTypeByID(typeID)
	if err != nil {
		return nil, err
	}
	return pizzaType.AvailableExtras, nil
}

func (s *menuService) GetCrustsByTypeID(typeID string) ([]models.PizzaCrust, error) {
	pizzaType, err := s.GetTypeByID(typeID)
	if err != nil {
		return nil, err
	}
	return pizzaType.AvailableCrusts, nil
}

// --- Flavors ---

func (s *menuService) GetAllFlavors() ([]models.PizzaFlavor, error) {
	var flavors []models.PizzaFlavor
	if err := s.db.Preload("PizzaTypes").Find(&flavors).Error; err != nil {
		return nil, err
	}
	return flavors, nil
}

func (s *menuService) CreateFlavor(req models.FlavorUpdateRequest) (*models.PizzaFlavor, error) {
	flavor := &models.PizzaFlavor{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(flavor).Error; err != nil {
			return err
		}
		return replaceFlavorTypes(tx, flavor, req.PizzaTypeIDs)
	})
	if err != nil {
		return nil, err
	}
	return flavor, nil
}

func (s *menuService) UpdateFlavor(id string, req models.FlavorUpdateRequest) (*models.PizzaFlavor, error) {
	var flavor models.PizzaFlavor
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&flavor, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFound(models.KindPizzaFlavor, id)
			}
			return err
		}
		flavor.Name = req.Name
		flavor.Description = req.Description
		flavor.Price = req.Price
		if err := tx.Save(&flavor).Error; err != nil {
			return err
		}
		return replaceFlavorTypes(tx, &flavor, req.PizzaTypeIDs)
	})
	if err != nil {
		return nil, err
	}
	return &flavor, nil
}

func replaceFlavorTypes(tx *gorm.DB, flavor *models.PizzaFlavor, typeIDs []string) error {
	var types []models.PizzaType
	if len(typeIDs) > 0 {
		if err := tx.Find(&types, "id IN ?", typeIDs).Error; err != nil {
			return err
		}
	}
	return tx.Model(flavor).Association("PizzaTypes").Replace(types)
}

func (s *menuService) DeleteFlavor(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var flavor models.PizzaFlavor
		if err := tx.First(&flavor, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFound(models.KindPizzaFlavor, id)
			}
			return err
		}
		if err := tx.Model(&flavor).Association("PizzaTypes").Clear(); err != nil {
			return err
		}
		return tx.Delete(&flavor).Error
	})
}

// --- Extras ---

func (s *menuService) GetAllExtras() ([]models.PizzaExtra, error) {
	var extras []models.PizzaExtra
	if err := s.db.Find(&extras).Error; err != nil {
		return nil, err
	}
	return extras, nil
}

func (s *menuService) CreateExtra(req models.ExtraUpdateRequest) (*models.PizzaExtra, error) {
	extra := &models.PizzaExtra{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(extra).Error; err != nil {
			return err
		}
		return syncExtraAssociations(tx, extra, req.PizzaTypeIDs)
	})
	if err != nil {
		return nil, err
	}
	return extra, nil
}

func (s *menuService) UpdateExtra(id string, req models.ExtraUpdateRequest) (*models.PizzaExtra, error) {
	var extra models.PizzaExtra
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&extra, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFound(models.KindPizzaExtra, id)
			}
			return err
		}
		extra.Name = req.Name
		extra.Description = req.Description
		extra.Price = req.Price
		if err := tx.Save(&extra).Error; err != nil {
			return err
		}
		return syncExtraAssociations(tx, &extra, req.PizzaTypeIDs)
	})
	if err != nil {
		return nil, err
	}
	return &extra, nil
}

// DeleteExtra removes every pizza-type edge before deleting the extra, so no
// pizza type is left referencing a dead id.
func (s *menuService) DeleteExtra(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var extra models.PizzaExtra
		if err := tx.First(&extra, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFound(models.KindPizzaExtra, id)
			}
			return err
		}
		if err := syncExtraAssociations(tx, &extra, nil); err != nil {
			return err
		}
		return tx.Delete(&extra).Error
	})
}

// --- Crusts ---

func (s *menuService) GetAllCrusts() ([]models.PizzaCrust, error) {
	var crusts []models.PizzaCrust
	if err := s.db.Find(&crusts).Error; err != nil {
		return nil, err
	}
	return crusts, nil
}

func (s *menuService) CreateCrust(req models.CrustUpdateRequest) (*models.PizzaCrust, error) {
	crust := &models.PizzaCrust{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(crust).Error; err != nil {
			return err
		}
		return syncCrustAssociations(tx, crust, req.PizzaTypeIDs)
	})
	if err != nil {
		return nil, err
	}
	return crust, nil
}

func (s *menuService) UpdateCrust(id string, req models.CrustUpdateRequest) (*models.PizzaCrust, error) {
	var crust models.PizzaCrust
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&crust, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFound(models.KindPizzaCrust, id)
			}
			return err
		}
		crust.Name = req.Name
		crust.Description = req.Description
		crust.Price = req.Price
		if err := tx.Save(&crust).Error; err != nil {
			return err
		}
		return syncCrustAssociations(tx, &crust, req.PizzaTypeIDs)
	})
	if err != nil {
		return nil, err
	}
	return &crust, nil
}

func (s *menuService) DeleteCrust(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var crust models.PizzaCrust
		if err := tx.First(&crust, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFound(models.KindPizzaCrust, id)
			}
			return err
		}
		if err := syncCrustAssociations(tx, &crust, nil); err != nil {
			return err
		}
		return tx.Delete(&crust).Error
	})
}

// --- Beverages ---

func (s *menuService) GetAllBeverages() ([]models.Beverage, error) {
	var beverages []models.Beverage
	if err := s.db.Preload("Category").Find(&beverages).Error; err != nil {
		return nil, err
	}
	return beverages, nil
}

func (s *menuService) CreateBeverage(req models.BeverageRequest) (*models.Beverage, error) {
	category, err := catalog.NewLookup(s.db).BeverageCategoryByID(req.CategoryID)
	if err != nil {
		return nil, err
	}
	beverage := &models.Beverage{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Alcoholic:   req.Alcoholic,
		CategoryID:  &category.ID,
		Category:    category,
	}
	if err := s.db.Create(beverage).Error; err != nil {
		return nil, err
	}
	return beverage, nil
}

func (s *menuService) UpdateBeverage(id string, req models.BeverageRequest) (*models.Beverage, error) {
	var beverage models.Beverage
	if err := s.db.First(&beverage, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFound(models.KindBeverage, id)
		}
		return nil, err
	}
	category, err := catalog.NewLookup(s.db).BeverageCategoryByID(req.CategoryID)
	if err != nil {
		return nil, err
	}
	beverage.Name = req.Name
	beverage.Description = req.Description
	beverage.Price = req.Price
	beverage.Alcoholic = req.Alcoholic
	beverage.CategoryID = &category.ID
	beverage.Category = category
	if err := s.db.Save(&beverage).Error; err != nil {
		return nil, err
	}
	return &beverage, nil
}

func (s *menuService) DeleteBeverage(id string) error {
	result := s.db.Delete(&models.Beverage{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFound(models.KindBeverage, id)
	}
	return nil
}

// --- Beverage categories ---

func (s *menuService) GetAllBeverageCategories() ([]models.BeverageCategory, error) {
	var categories []models.BeverageCategory
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *menuService) CreateBeverageCategory(req models.BeverageCategoryRequest) (*models.BeverageCategory, error) {
	category := &models.BeverageCategory{Name: req.Name}
	if err := s.db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (s *menuService) UpdateBeverageCategory(id string, req models.BeverageCategoryRequest) (*models.BeverageCategory, error) {
	var category models.BeverageCategory
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFound(models.KindBeverageCategory, id)
		}
		return nil, err
	}
	category.Name = req.Name
	if err := s.db.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *menuService) DeleteBeverageCategory(id string) error {
	result := s.db.Delete(&models.BeverageCategory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFound(models.KindBeverageCategory, id)
	}
	return nil
}

func typeNotFound(err error, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFound(models.KindPizzaType, id)
	}
	return err
}
