package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	Name      string
	Password  string `gorm:"not null"`
	Role      string `gorm:"default:'admin'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func main() {
	// Parse command line flags
	email := flag.String("email", "admin@pizza.com", "Staff user email")
	password := flag.String("password", "admin-secret-123", "Staff user password")
	role := flag.String("role", "admin", "User role (admin or user)")
	dbPath := flag.String("db", "pizza-delivery.sqlite", "Path to the SQLite database")
	flag.Parse()

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Check if the user already exists
	var existing User
	if err := db.Where("email = ?", *email).First(&existing).Error; err == nil {
		fmt.Printf("Staff user already exists!\n")
		fmt.Printf("Email: %s (ID: %d, Role: %s)\n", existing.Email, existing.ID, existing.Role)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := User{
		Email:     *email,
		Name:      fmt.Sprintf("%s User", *role),
		Password:  string(hash),
		Role:      *role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(&user).Error; err != nil {
		log.Fatal("Failed to create user:", err)
	}

	fmt.Printf("✓ Staff user created with role '%s'!\n", *role)
	fmt.Printf("Email: %s\n", *email)
	fmt.Printf("Password: %s\n", *password)
	fmt.Println("\nUse these credentials for testing:")
	fmt.Printf("curl -X POST http://localhost:8080/api/v1/auth/admin/login \\\n")
	fmt.Printf("  -H 'Content-Type: application/json' \\\n")
	fmt.Printf("  -d '{\"email\":\"%s\",\"password\":\"%s\"}'\n", *email, *password)
}
