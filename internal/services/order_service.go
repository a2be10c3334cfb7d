package services

import (
	"errors"
	"time"

	"github.com/franciscosanchezn/pizza-delivery-api/internal/catalog"
	"github.com/franciscosanchezn/pizza-delivery-api/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DeliveryLeadTime is the fixed estimate added to an order's creation time.
// It is a kitchen policy constant, never client-controlled.
const DeliveryLeadTime = 45 * time.Minute

// OrderService assembles, stores and tracks orders.
type OrderService interface {
	// GetAllOrders retrieves every order, newest first
	GetAllOrders() ([]models.Order, error)
	// GetOrderByID retrieves one fully rehydrated order
	GetOrderByID(id string) (*models.Order, error)
	// GetOrdersByCustomerEmail retrieves a customer's orders, newest first
	GetOrdersByCustomerEmail(email string) ([]models.Order, error)
	// CreateOrder validates and persists a cart submission for the
	// authenticated customer in a single transaction
	CreateOrder(req models.CreateOrderRequest, customerEmail string) (*models.Order, error)
	// UpdateOrderStatus sets the order's lifecycle status
	UpdateOrderStatus(id string, status models.OrderStatus) (*models.Order, error)
}

type orderService struct {
	db *gorm.DB
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB) OrderService {
	return &orderService{db: db}
}

// orderPreloads rehydrates the full aggregate: line items with their catalog
// snapshots, applied extras with their targets, and the owning customer.
func orderPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items.PizzaType").
		Preload("Items.Flavors").
		Preload("Items.Crust").
		Preload("Items.Beverage.Category").
		Preload("Items.AppliedExtras.Extra").
		Preload("Items.AppliedExtras.AppliedToFlavor").
		Preload("CustomerUser")
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := orderPreloads(s.db).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) GetOrderByID(id string) (*models.Order, error) {
	var order models.Order
	if err := orderPreloads(s.db).First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFound(models.KindOrder, id)
		}
		return nil, err
	}
	return &order, nil
}

func (s *orderService) GetOrdersByCustomerEmail(email string) ([]models.Order, error) {
	customer, err := findCustomerByEmail(s.db, email)
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := orderPreloads(s.db).
		Where("customer_user_id = ?", customer.ID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder resolves the cart, assembles the order aggregate and commits
// it together with any new delivery address. Either everything is persisted
// or nothing is: a single unresolvable reference rolls the whole submission
// back.
func (s *orderService) CreateOrder(req models.CreateOrderRequest, customerEmail string) (*models.Order, error) {
	var order *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		customer, err := findCustomerByEmail(tx, customerEmail)
		if err != nil {
			return err
		}

		resolver := NewCartItemResolver(catalog.NewLookup(tx))
		items, err := resolver.Resolve(req.Items)
		if err != nil {
			return err
		}

		now := time.Now()
		order = &models.Order{
			Items:                 items,
			CustomerUserID:        customer.ID,
			CustomerUser:          customer,
			DeliveryType:          req.DeliveryType,
			DeliveryAddress:       req.DeliveryAddress,
			Payment:               req.Payment,
			Status:                models.OrderStatusReceived,
			CreatedAt:             now,
			EstimatedDeliveryTime: now.Add(DeliveryLeadTime),
			TotalAmount:           req.TotalAmount,
			Observations:          req.Observations,
		}

		if req.DeliveryType == models.DeliveryTypeDelivery && req.DeliveryAddress != nil {
			if err := saveAddressForCustomer(tx, customer, *req.DeliveryAddress); err != nil {
				return err
			}
		}

		return tx.Create(order).Error
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"order_id": order.ID,
		"customer": customerEmail,
		"items":    len(order.Items),
	}).Info("Order created")
	return order, nil
}

// saveAddressForCustomer persists the delivery address as a saved customer
// address unless an equal one already exists. Equality is street + number +
// zip code, so re-submitting the same location never accumulates rows.
func saveAddressForCustomer(tx *gorm.DB, customer *models.CustomerUser, delivery models.DeliveryAddress) error {
	for _, existing := range customer.Addresses {
		if existing.Matches(delivery) {
			return nil
		}
	}
	address := models.Address{
		Street:       delivery.Street,
		Number:       delivery.Number,
		Complement:   delivery.Complement,
		Neighborhood: delivery.Neighborhood,
		City:         delivery.City,
		ZipCode:      delivery.ZipCode,
		CustomerID:   customer.ID,
	}
	return tx.Create(&address).Error
}

// UpdateOrderStatus sets the status supplied by an operator. There is no
// enforced transition graph: any known status is accepted for any order.
func (s *orderService) UpdateOrderStatus(id string, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, models.NewValidation("unknown order status: " + string(status))
	}

	var order models.Order
	if err := orderPreloads(s.db).First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFound(models.KindOrder, id)
		}
		return nil, err
	}

	order.Status = status
	if err := s.db.Model(&models.Order{}).Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"order_id": id, "status": status}).Info("Order status updated")
	return &order, nil
}

// findCustomerByEmail loads a customer with saved addresses. Identity is
// validated upstream, so a miss here is surfaced as NotFound:Customer and
// treated by callers as an invariant violation.
func findCustomerByEmail(db *gorm.DB, email string) (*models.CustomerUser, error) {
	var customer models.CustomerUser
	if err := db.Preload("Addresses").First(&customer, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFound(models.KindCustomer, email)
		}
		return nil, err
	}
	return &customer, nil
}
