package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PizzaType is a base pizza on the menu. Extras and crusts are symmetric
// many-to-many edges managed by the menu association synchronizer; nothing
// else mutates them.
type PizzaType struct {
	ID              string       `gorm:"primaryKey" json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	BasePrice       float64      `json:"basePrice"`
	ImageURL        string       `json:"imageUrl"`
	AvailableExtras []PizzaExtra `gorm:"many2many:pizza_type_extras" json:"availableExtras"`
	AvailableCrusts []PizzaCrust `gorm:"many2many:pizza_type_crusts" json:"availableCrusts"`
}

func (t *PizzaType) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// PizzaFlavor is a topping combination valid for a set of pizza types.
type PizzaFlavor struct {
	ID          string      `gorm:"primaryKey" json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	ImageURL    string      `json:"imageUrl"`
	PizzaTypes  []PizzaType `gorm:"many2many:flavor_pizza_types" json:"pizzaTypes"`
}

func (f *PizzaFlavor) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// PizzaExtra is an add-on (e.g. extra cheese). Its pizza-type edges live in
// the pizza_type_extras join table and are reached through PizzaType.
type PizzaExtra struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func (e *PizzaExtra) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// PizzaCrust is a crust option; edges mirror PizzaExtra's.
type PizzaCrust struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func (c *PizzaCrust) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Beverage belongs to exactly one category; this is an owning reference,
// not a two-way edge.
type Beverage struct {
	ID          string           `gorm:"primaryKey" json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	ImageURL    string           `json:"imageUrl"`
	Alcoholic   bool             `gorm:"not null;default:false" json:"alcoholic"`
	CategoryID  *string          `json:"-"`
	Category    *BeverageCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (b *Beverage) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

type BeverageCategory struct {
	ID   string `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
}

func (c *BeverageCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
