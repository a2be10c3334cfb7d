package models

import "time"

// ExtraSelection is one extra chosen on a pizza cart line. FlavorID is empty
// when the extra goes on the whole pizza.
type ExtraSelection struct {
	ExtraID  string `json:"extraId"`
	FlavorID string `json:"flavorId"`
}

// CartItemRequest is one untrusted cart line. ItemType is the discriminant:
// PIZZA lines use the pizza fields, BEVERAGE lines use BeverageID. Quantity
// and TotalPrice come from the client and are stored as submitted.
type CartItemRequest struct {
	ItemType OrderItemType `json:"itemType"`

	// Pizza fields
	PizzaTypeID     string           `json:"pizzaTypeId"`
	FlavorIDs       []string         `json:"flavorIds"`
	ExtraSelections []ExtraSelection `json:"extraSelections"`
	CrustID         string           `json:"crustId"`

	// Beverage fields
	BeverageID string `json:"beverageId"`

	// Common fields
	Observations string  `json:"observations"`
	Quantity     int     `json:"quantity"`
	TotalPrice   float64 `json:"totalPrice"`
}

// CreateOrderRequest is the order submission payload. Any client-supplied
// status or timestamps are ignored by order assembly.
type CreateOrderRequest struct {
	Items           []CartItemRequest `json:"items"`
	DeliveryType    DeliveryType      `json:"deliveryType"`
	DeliveryAddress *DeliveryAddress  `json:"deliveryAddress"`
	Payment         Payment           `json:"payment"`
	TotalAmount     float64           `json:"totalAmount"`
	Observations    string            `json:"observations"`
}

// OrderStatusUpdate is the operator status-change payload.
type OrderStatusUpdate struct {
	Status OrderStatus `json:"status"`
}

// ExtraUpdateRequest creates or updates a pizza extra together with the
// desired set of pizza types it is available on.
type ExtraUpdateRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	PizzaTypeIDs []string `json:"pizzaTypeIds"`
}

// CrustUpdateRequest mirrors ExtraUpdateRequest for crusts.
type CrustUpdateRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	PizzaTypeIDs []string `json:"pizzaTypeIds"`
}

// FlavorUpdateRequest creates or updates a flavor and the pizza types it is
// valid for.
type FlavorUpdateRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	PizzaTypeIDs []string `json:"pizzaTypeIds"`
}

// PizzaTypeRequest creates or updates a pizza type. The extra and crust id
// lists are re-resolved against the catalog on save.
type PizzaTypeRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	BasePrice   float64  `json:"basePrice"`
	ExtraIDs    []string `json:"extraIds"`
	CrustIDs    []string `json:"crustIds"`
}

// BeverageRequest creates or updates a beverage; CategoryID must resolve.
type BeverageRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Alcoholic   bool    `json:"alcoholic"`
	CategoryID  string  `json:"categoryId"`
}

type BeverageCategoryRequest struct {
	Name string `json:"name"`
}

// RegisterRequest is the customer sign-up payload.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Whatsapp string `json:"whatsapp"`
	CPF      string `json:"cpf"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AddressUpdateRequest edits a saved customer address.
type AddressUpdateRequest struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
}

// CustomerUpdateRequest is the admin edit of a customer profile.
type CustomerUpdateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Whatsapp string `json:"whatsapp"`
	CPF      string `json:"cpf"`
}

// CustomerSummary is the customer view embedded in order responses. It never
// carries the credential.
type CustomerSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CustomerResponse is the admin customer listing entry with order totals.
type CustomerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Whatsapp    string    `json:"whatsapp"`
	CPF         string    `json:"cpf"`
	Addresses   []Address `json:"addresses"`
	TotalOrders int       `json:"totalOrders"`
	TotalSpent  float64   `json:"totalSpent"`
}

// AppliedExtraResponse is one applied extra in an order response.
// AppliedToFlavor is nil when the extra covers the whole item.
type AppliedExtraResponse struct {
	Extra           PizzaExtra   `json:"extra"`
	AppliedToFlavor *PizzaFlavor `json:"appliedToFlavor"`
}

// OrderItemResponse is a rehydrated order line with full catalog snapshots.
type OrderItemResponse struct {
	ID            string                 `json:"id"`
	ItemType      OrderItemType          `json:"itemType"`
	PizzaType     *PizzaType             `json:"pizzaType,omitempty"`
	Flavors       []PizzaFlavor          `json:"flavors,omitempty"`
	AppliedExtras []AppliedExtraResponse `json:"appliedExtras"`
	Crust         *PizzaCrust            `json:"crust,omitempty"`
	Beverage      *Beverage              `json:"beverage,omitempty"`
	Observations  string                 `json:"observations"`
	Quantity      int                    `json:"quantity"`
	TotalPrice    float64                `json:"totalPrice"`
}

// OrderResponse is the API-facing order shape.
type OrderResponse struct {
	ID                    string              `json:"id"`
	Items                 []OrderItemResponse `json:"items"`
	Customer              CustomerSummary     `json:"customer"`
	DeliveryType          DeliveryType        `json:"deliveryType"`
	DeliveryAddress       *DeliveryAddress    `json:"deliveryAddress"`
	Payment               Payment             `json:"payment"`
	Status                OrderStatus         `json:"status"`
	CreatedAt             time.Time           `json:"createdAt"`
	EstimatedDeliveryTime time.Time           `json:"estimatedDeliveryTime"`
	TotalAmount           float64             `json:"totalAmount"`
	Observations          string              `json:"observations"`
}

// ToOrderResponse maps an order aggregate to its API shape. Applied extras
// are only mapped for pizza lines.
func ToOrderResponse(order *Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		applied := []AppliedExtraResponse{}
		if item.ItemType == OrderItemTypePizza {
			for _, extra := range item.AppliedExtras {
				resp := AppliedExtraResponse{Extra: extra.Extra}
				switch target := extra.Target().(type) {
				case SpecificFlavor:
					flavor := target.Flavor
					resp.AppliedToFlavor = &flavor
				case WholeItem:
					// applies to the whole line
				}
				applied = append(applied, resp)
			}
		}
		items = append(items, OrderItemResponse{
			ID:            item.ID,
			ItemType:      item.ItemType,
			PizzaType:     item.PizzaType,
			Flavors:       item.Flavors,
			AppliedExtras: applied,
			Crust:         item.Crust,
			Beverage:      item.Beverage,
			Observations:  item.Observations,
			Quantity:      item.Quantity,
			TotalPrice:    item.TotalPrice,
		})
	}

	resp := OrderResponse{
		ID:                    order.ID,
		Items:                 items,
		DeliveryType:          order.DeliveryType,
		DeliveryAddress:       order.DeliveryAddress,
		Payment:               order.Payment,
		Status:                order.Status,
		CreatedAt:             order.CreatedAt,
		EstimatedDeliveryTime: order.EstimatedDeliveryTime,
		TotalAmount:           order.TotalAmount,
		Observations:          order.Observations,
	}
	if order.CustomerUser != nil {
		resp.Customer = CustomerSummary{
			ID:    order.CustomerUser.ID,
			Name:  order.CustomerUser.Name,
			Email: order.CustomerUser.Email,
		}
	}
	return resp
}
