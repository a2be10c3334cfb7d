package services

import (
	"errors"

	"github.com/franciscosanchezn/pizza-delivery-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned on a failed login. It deliberately does
// not distinguish unknown email from wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CustomerService manages customer accounts and their saved addresses.
type CustomerService interface {
	// Register creates a customer account with a bcrypt-hashed credential
	Register(req models.RegisterRequest) (*models.CustomerUser, error)
	// Authenticate verifies email + password and returns the customer
	Authenticate(email, password string) (*models.CustomerUser, error)
	GetByEmail(email string) (*models.CustomerUser, error)
	// GetAllCustomers lists customers with their order totals (admin view)
	GetAllCustomers() ([]models.CustomerResponse, error)
	UpdateCustomer(id string, req models.CustomerUpdateRequest) (*models.CustomerUser, error)
	DeleteCustomer(id string) error
	UpdateAddress(id string, req models.AddressUpdateRequest) (*models.Address, error)
	DeleteAddress(id string) error
}

type customerService struct {
	db *gorm.DB
}

// NewCustomerService creates a new instance of CustomerService
func NewCustomerService(db *gorm.DB) CustomerService {
	return &customerService{db: db}
}

func (s *customerService) Register(req models.RegisterRequest) (*models.CustomerUser, error) {
	var existing models.CustomerUser
	if err := s.db.First(&existing, "email = ?", req.Email).Error; err == nil {
		return nil, models.NewConflict("email already in use: " + req.Email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	password := string(hash)

	customer := &models.CustomerUser{
		Name:     req.Name,
		Email:    req.Email,
		Password: &password,
		Whatsapp: req.Whatsapp,
		CPF:      req.CPF,
	}
	if err := s.db.Create(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Authenticate(email, password string) (*models.CustomerUser, error) {
	customer, err := s.GetByEmail(email)
	if err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	// externally-authenticated accounts have no local credential
	if customer.Password == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(*customer.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return customer, nil
}

func (s *customerService) GetByEmail(email string) (*models.CustomerUser, error) {
	return findCustomerByEmail(s.db, email)
}

func (s *customerService) GetAllCustomers() ([]models.CustomerResponse, error) {
	var customers []models.CustomerUser
	if err := s.db.Preload("Addresses").Find(&customers).Error; err != nil {
		return nil, err
	}

	type orderTotals struct {
		CustomerUserID string
		TotalOrders    int
		TotalSpent     float64
	}
	var totals []orderTotals
	if err := s.db.Model(&models.Order{}).
		Select("customer_user_id, COUNT(*) AS total_orders, SUM(total_amount) AS total_spent").
		Group("customer_user_id").
		Scan(&totals).Error; err != nil {
		return nil, err
	}
	totalsByID := make(map[string]orderTotals, len(totals))
	for _, t := range totals {
		totalsByID[t.CustomerUserID] = t
	}

	responses := make([]models.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		t := totalsByID[c.ID]
		addresses := c.Addresses
		if addresses == nil {
			addresses = []models.Address{}
		}
		responses = append(responses, models.CustomerResponse{
			ID:          c.ID,
			Name:        c.Name,
			Email:       c.Email,
			Whatsapp:    c.Whatsapp,
			CPF:         c.CPF,
			Addresses:   addresses,
			TotalOrders: t.TotalOrders,
			TotalSpent:  t.TotalSpent,
		})
	}
	return responses, nil
}

func (s *customerService) UpdateCustomer(id string, req models.CustomerUpdateRequest) (*models.CustomerUser, error) {
	var customer models.CustomerUser
	if err := s.db.Preload("Addresses").First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFound(models.KindCustomer, id)
		}
		return nil, err
	}
	customer.Name = req.Name
	customer.Email = req.Email
	customer.Whatsapp = req.Whatsapp
	customer.CPF = req.CPF
	if err := s.db.Save(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *customerService) DeleteCustomer(id string) error {
	result := s.db.Delete(&models.CustomerUser{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFound(models.KindCustomer, id)
	}
	return nil
}

func (s *customerService) UpdateAddress(id string, req models.AddressUpdateRequest) (*models.Address, error) {
	var address models.Address
	if err := s.db.First(&address, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFound(models.KindAddress, id)
		}
		return nil, err
	}
	address.Street = req.Street
	address.Number = req.Number
	address.Complement = req.Complement
	address.Neighborhood = req.Neighborhood
	address.City = req.City
	address.ZipCode = req.ZipCode
	if err := s.db.Save(&address).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (s *customerService) DeleteAddress(id string) error {
	result := s.db.Delete(&models.Address{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFound(models.KindAddress, id)
	}
	return nil
}
