package services

import (
	"github.com/franciscosanchezn/pizza-delivery-api/internal/models"
	"gorm.io/gorm"
)

// The pizza-type <-> extra and pizza-type <-> crust relations are symmetric
// edge sets stored in join tables. They are only ever mutated here, by
// reconciling the currently recorded edges against a desired set, so that
// after any create/update/delete the edges are exactly the desired set on
// both sides with no duplicates.

// diffEdges computes the minimal change turning current into desired.
// Duplicates collapse and input order is irrelevant; diffEdges(x, x) returns
// two empty sets, which makes reconciliation idempotent.
func diffEdges(current, desired []string) (toAdd, toRemove []string) {
	currentSet := make(map[string]bool, len(current))
	for _, id := range current {
		currentSet[id] = true
	}
	desiredSet := make(map[string]bool, len(desired))
	for _, id := range desired {
		desiredSet[id] = true
	}

	toAdd = []string{}
	seen := make(map[string]bool, len(desired))
	for _, id := range desired {
		if !currentSet[id] && !seen[id] {
			toAdd = append(toAdd, id)
			seen[id] = true
		}
	}
	toRemove = []string{}
	removed := make(map[string]bool, len(current))
	for _, id := range current {
		if !desiredSet[id] && !removed[id] {
			toRemove = append(toRemove, id)
			removed[id] = true
		}
	}
	return toAdd, toRemove
}

// pizzaTypesWithExtra is the reverse edge lookup: every pizza type currently
// listing the extra.
func pizzaTypesWithExtra(tx *gorm.DB, extraID string) ([]models.PizzaType, error) {
	var types []models.PizzaType
	err := tx.
		Joins("JOIN pizza_type_extras pte ON pte.pizza_type_id = pizza_types.id").
		Where("pte.pizza_extra_id = ?", extraID).
		Find(&types).Error
	return types, err
}

func pizzaTypesWithCrust(tx *gorm.DB, crustID string) ([]models.PizzaType, error) {
	var types []models.PizzaType
	err := tx.
		Joins("JOIN pizza_type_crusts ptc ON ptc.pizza_type_id = pizza_types.id").
		Where("ptc.pizza_crust_id = ?", crustID).
		Find(&types).Error
	return types, err
}

func pizzaTypeIDs(types []models.PizzaType) []string {
	ids := make([]string, 0, len(types))
	for _, t := range types {
		ids = append(ids, t.ID)
	}
	return ids
}

func indexPizzaTypes(types []models.PizzaType) map[string]models.PizzaType {
	byID := make(map[string]models.PizzaType, len(types))
	for _, t := range types {
		byID[t.ID] = t
	}
	return byID
}

// syncExtraAssociations reconciles the pizza types listing the extra against
// desiredTypeIDs. Desired ids that do not resolve to a pizza type are
// dropped by the batch lookup rather than failing the edit.
func syncExtraAssociations(tx *gorm.DB, extra *models.PizzaExtra, desiredTypeIDs []string) error {
	current, err := pizzaTypesWithExtra(tx, extra.ID)
	if err != nil {
		return err
	}

	toAdd, toRemove := diffEdges(pizzaTypeIDs(current), desiredTypeIDs)

	currentByID := indexPizzaTypes(current)
	for _, id := range toRemove {
		pizzaType := currentByID[id]
		if err := tx.Model(&pizzaType).Association("AvailableExtras").Delete(extra); err != nil {
			return err
		}
	}

	if len(toAdd) == 0 {
		return nil
	}
	var types []models.PizzaType
	if err := tx.Find(&types, "id IN ?", toAdd).Error; err != nil {
		return err
	}
	for i := range types {
		if err := tx.Model(&types[i]).Association("AvailableExtras").Append(extra); err != nil {
			return err
		}
	}
	return nil
}

// syncCrustAssociations mirrors syncExtraAssociations for crusts.
func syncCrustAssociations(tx *gorm.DB, crust *models.PizzaCrust, desiredTypeIDs []string) error {
	current, err := pizzaTypesWithCrust(tx, crust.ID)
	if err != nil {
		return err
	}

	toAdd, toRemove := diffEdges(pizzaTypeIDs(current), desiredTypeIDs)

	currentByID := indexPizzaTypes(current)
	for _, id := range toRemove {
		pizzaType := currentByID[id]
		if err := tx.Model(&pizzaType).Association("AvailableCrusts").Delete(crust); err != nil {
			return err
		}
	}

	if len(toAdd) == 0 {
		return nil
	}
	var types []models.PizzaType
	if err := tx.Find(&types, "id IN ?", toAdd).Error; err != nil {
		return err
	}
	for i := range types {
		if err := tx.Model(&types[i]).Association("AvailableCrusts").Append(crust); err != nil {
			return err
		}
	}
	return nil
}
