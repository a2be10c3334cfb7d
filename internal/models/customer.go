package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerUser is a registered customer. Password is nil for accounts that
// authenticate externally and is never serialized.
type CustomerUser struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  *string   `json:"-"`
	Whatsapp  string    `json:"whatsapp"`
	CPF       string    `json:"cpf"`
	BirthDate string    `json:"birthDate"`
	Addresses []Address `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"addresses"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (CustomerUser) TableName() string {
	return "customer_users"
}

func (u *CustomerUser) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Address is a saved delivery location owned by one customer.
type Address struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
	CustomerID   string `gorm:"index" json:"-"`
}

func (a *Address) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Matches reports whether the saved address and a submitted delivery address
// are the same location. Street, number and zip code identify an address;
// complement and neighborhood do not.
func (a Address) Matches(d DeliveryAddress) bool {
	return a.Street == d.Street && a.Number == d.Number && a.ZipCode == d.ZipCode
}
