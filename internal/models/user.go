package models

import (
	"time"
)

// User is a staff account for the admin side of the API. Customers live in
// CustomerUser; the two are never mixed.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	Name      string
	Password  string `gorm:"not null" json:"-"`
	Role      string `gorm:"default:'admin'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
