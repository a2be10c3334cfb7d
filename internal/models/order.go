package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "DELIVERY"
	DeliveryTypePickup   DeliveryType = "PICKUP"
)

type OrderStatus string

const (
	OrderStatusReceived       OrderStatus = "RECEIVED"
	OrderStatusPreparing      OrderStatus = "PREPARING"
	OrderStatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusCompleted      OrderStatus = "COMPLETED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

// Valid reports whether s is one of the five known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusReceived, OrderStatusPreparing, OrderStatusOutForDelivery,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type OrderItemType string

const (
	OrderItemTypePizza    OrderItemType = "PIZZA"
	OrderItemTypeBeverage OrderItemType = "BEVERAGE"
)

// Payment carries the chosen method; card fields are only meaningful when
// the method is CARD.
type Payment struct {
	Method    string `json:"method"`
	CardBrand string `json:"cardBrand"`
	CardType  string `json:"cardType"`
}

// DeliveryAddress is the address snapshot embedded in an order. It is copied
// at submission time and never updated when the customer edits saved
// addresses later.
type DeliveryAddress struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
}

// Order is the aggregate produced by order assembly. After creation only
// Status changes; the items collection is fixed.
type Order struct {
	ID                    string           `gorm:"primaryKey" json:"id"`
	Items                 []OrderItem      `gorm:"foreignKey:OrderID" json:"items"`
	CustomerUserID        string           `gorm:"index" json:"-"`
	CustomerUser          *CustomerUser    `json:"customerUser,omitempty"`
	DeliveryType          DeliveryType     `json:"deliveryType"`
	DeliveryAddress       *DeliveryAddress `gorm:"embedded;embeddedPrefix:delivery_" json:"deliveryAddress"`
	Payment               Payment          `gorm:"embedded;embeddedPrefix:payment_" json:"payment"`
	Status                OrderStatus      `json:"status"`
	CreatedAt             time.Time        `json:"createdAt"`
	EstimatedDeliveryTime time.Time        `json:"estimatedDeliveryTime"`
	TotalAmount           float64          `json:"totalAmount"`
	Observations          string           `json:"observations"`
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderItem is one line of an order, either a pizza or a beverage. The pizza
// fields are nil for beverage lines and vice versa; ItemType is the
// discriminant.
type OrderItem struct {
	ID            string           `gorm:"primaryKey" json:"id"`
	OrderID       string           `gorm:"index" json:"-"`
	ItemType      OrderItemType    `json:"itemType"`
	PizzaTypeID   *string          `json:"-"`
	PizzaType     *PizzaType       `json:"pizzaType,omitempty"`
	Flavors       []PizzaFlavor    `gorm:"many2many:order_item_flavors" json:"flavors,omitempty"`
	AppliedExtras []OrderItemExtra `gorm:"foreignKey:OrderItemID" json:"appliedExtras,omitempty"`
	CrustID       *string          `json:"-"`
	Crust         *PizzaCrust      `json:"crust,omitempty"`
	BeverageID    *string          `json:"-"`
	Beverage      *Beverage        `json:"beverage,omitempty"`
	Observations  string           `json:"observations"`
	Quantity      int              `json:"quantity"`
	TotalPrice    float64          `json:"totalPrice"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// OrderItemExtra records one extra applied to a pizza line, with the flavor
// it targets. A nil AppliedToFlavor means the extra covers the whole item.
type OrderItemExtra struct {
	ID                string       `gorm:"primaryKey" json:"id"`
	OrderItemID       string       `gorm:"index" json:"-"`
	ExtraID           string       `json:"-"`
	Extra             PizzaExtra   `json:"extra"`
	AppliedToFlavorID *string      `json:"-"`
	AppliedToFlavor   *PizzaFlavor `json:"appliedToFlavor,omitempty"`
}

func (e *OrderItemExtra) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// ExtraTarget is where an applied extra goes on a pizza line: the whole item
// or one specific flavor. The two cases are closed so callers can switch
// exhaustively instead of testing a nullable reference.
type ExtraTarget interface {
	isExtraTarget()
}

type WholeItem struct{}

func (WholeItem) isExtraTarget() {}

type SpecificFlavor struct {
	Flavor PizzaFlavor
}

func (SpecificFlavor) isExtraTarget() {}

// NewAppliedExtra builds the persisted row for an extra applied to a target.
func NewAppliedExtra(extra PizzaExtra, target ExtraTarget) OrderItemExtra {
	applied := OrderItemExtra{ExtraID: extra.ID, Extra: extra}
	switch t := target.(type) {
	case SpecificFlavor:
		flavor := t.Flavor
		applied.AppliedToFlavorID = &flavor.ID
		applied.AppliedToFlavor = &flavor
	}
	return applied
}

// Target recovers the applied-extra target from the stored row.
func (e OrderItemExtra) Target() ExtraTarget {
	if e.AppliedToFlavor != nil {
		return SpecificFlavor{Flavor: *e.AppliedToFlavor}
	}
	return WholeItem{}
}
