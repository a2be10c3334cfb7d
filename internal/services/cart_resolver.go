package services

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-delivery-api/internal/catalog"
	"github.com/franciscosanchezn/pizza-delivery-api/internal/models"
)

// ErrEmptyFlavorSelection is returned for a pizza line submitted without
// flavors.
var ErrEmptyFlavorSelection = models.NewValidation("at least one flavor must be selected")

// CartItemResolver turns untrusted cart lines into validated order line
// items carrying live catalog references. It only reads; the first
// unresolvable reference aborts the whole cart.
type CartItemResolver struct {
	catalog catalog.Lookup
}

// NewCartItemResolver creates a resolver over the given catalog lookup.
func NewCartItemResolver(lookup catalog.Lookup) *CartItemResolver {
	return &CartItemResolver{catalog: lookup}
}

// Resolve validates every cart line in order. The returned items preserve
// the input order and embed the resolved catalog entities, not just ids.
func (r *CartItemResolver) Resolve(lines []models.CartItemRequest) ([]models.OrderItem, error) {
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		var (
			item models.OrderItem
			err  error
		)
		switch line.ItemType {
		case models.OrderItemTypePizza:
			item, err = r.resolvePizzaLine(line)
		case models.OrderItemTypeBeverage:
			item, err = r.resolveBeverageLine(line)
		default:
			err = models.NewValidation(fmt.Sprintf("unknown order item type: %q", line.ItemType))
		}
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *CartItemResolver) resolvePizzaLine(line models.CartItemRequest) (models.OrderItem, error) {
	pizzaType, err := r.catalog.PizzaTypeByID(line.PizzaTypeID)
	if err != nil {
		return models.OrderItem{}, err
	}

	flavors, err := r.resolveFlavors(line.FlavorIDs)
	if err != nil {
		return models.OrderItem{}, err
	}

	item := models.OrderItem{
		ItemType:     models.OrderItemTypePizza,
		PizzaTypeID:  &pizzaType.ID,
		PizzaType:    pizzaType,
		Flavors:      flavors,
		Observations: line.Observations,
		Quantity:     line.Quantity,
		TotalPrice:   line.TotalPrice,
	}

	if line.CrustID != "" {
		crust, err := r.catalog.CrustByID(line.CrustID)
		if err != nil {
			return models.OrderItem{}, err
		}
		item.CrustID = &crust.ID
		item.Crust = crust
	}

	for _, selection := range line.ExtraSelections {
		applied, err := r.resolveExtraSelection(selection)
		if err != nil {
			return models.OrderItem{}, err
		}
		item.AppliedExtras = append(item.AppliedExtras, applied)
	}

	return item, nil
}

// resolveFlavors batch-resolves the flavor ids of a pizza line. The batch
// lookup omits missing ids, so the gap is detected here and reported as a
// NotFound naming the first missing id.
func (r *CartItemResolver) resolveFlavors(ids []string) ([]models.PizzaFlavor, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyFlavorSelection
	}
	flavors, err := r.catalog.FlavorsByIDs(ids)
	if err != nil {
		return nil, err
	}
	found := make(map[string]bool, len(flavors))
	for _, flavor := range flavors {
		found[flavor.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return nil, models.NewNotFound(models.KindPizzaFlavor, id)
		}
	}
	return flavors, nil
}

// resolveExtraSelection resolves one extra and, when a flavor target is
// given, the flavor it applies to. Without a target the extra covers the
// whole item.
func (r *CartItemResolver) resolveExtraSelection(selection models.ExtraSelection) (models.OrderItemExtra, error) {
	extra, err := r.catalog.ExtraByID(selection.ExtraID)
	if err != nil {
		return models.OrderItemExtra{}, err
	}

	var target models.ExtraTarget = models.WholeItem{}
	if selection.FlavorID != "" {
		flavor, err := r.catalog.FlavorByID(selection.FlavorID)
		if err != nil {
			return models.OrderItemExtra{}, err
		}
		target = models.SpecificFlavor{Flavor: *flavor}
	}

	return models.NewAppliedExtra(*extra, target), nil
}

func (r *CartItemResolver) resolveBeverageLine(line models.CartItemRequest) (models.OrderItem, error) {
	beverage, err := r.catalog.BeverageByID(line.BeverageID)
	if err != nil {
		return models.OrderItem{}, err
	}
	return models.OrderItem{
		ItemType:     models.OrderItemTypeBeverage,
		BeverageID:   &beverage.ID,
		Beverage:     beverage,
		Observations: line.Observations,
		Quantity:     line.Quantity,
		TotalPrice:   line.TotalPrice,
	}, nil
}
