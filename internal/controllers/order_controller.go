package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-delivery-api/internal/models"
	"github.com/franciscosanchezn/pizza-delivery-api/internal/services"
	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests related to orders
type OrderController interface {
	// GetOrderByID retrieves one order for public tracking
	GetOrderByID(c *gin.Context)
	// CreateOrder submits a cart for the authenticated customer
	CreateOrder(c *gin.Context)
	// GetMyOrders lists the authenticated customer's orders
	GetMyOrders(c *gin.Context)
	// GetAllOrders lists every order (admin)
	GetAllOrders(c *gin.Context)
	// UpdateOrderStatus sets an order's lifecycle status (admin)
	UpdateOrderStatus(c *gin.Context)
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) OrderController {
	return &orderController{service: service}
}

// GetOrderByID godoc
// @Summary Track an order
// @Description Get a single order with fully resolved catalog snapshots
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.OrderResponse
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/orders/{id} [get]
func (c *orderController) GetOrderByID(ctx *gin.Context) {
	order, err := c.service.GetOrderByID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.ToOrderResponse(order))
}

// CreateOrder godoc
// @Summary Submit an order
// @Description Validate and persist the submitted cart as one atomic order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Order submission"
// @Success 201 {object} models.OrderResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/orders [post]
func (c *orderController) CreateOrder(ctx *gin.Context) {
	email, ok := authenticatedEmail(ctx)
	if !ok {
		return
	}

	var req models.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	order, err := c.service.CreateOrder(req, email)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, models.ToOrderResponse(order))
}

// GetMyOrders godoc
// @Summary List my orders
// @Tags orders
// @Produce json
// @Success 200 {array} models.OrderResponse
// @Security BearerAuth
// @Router /api/v1/protected/me/orders [get]
func (c *orderController) GetMyOrders(ctx *gin.Context) {
	email, ok := authenticatedEmail(ctx)
	if !ok {
		return
	}
	orders, err := c.service.GetOrdersByCustomerEmail(email)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetAllOrders godoc
// @Summary List all orders
// @Tags orders
// @Produce json
// @Success 200 {array} models.OrderResponse
// @Security BearerAuth
// @Router /api/v1/protected/admin/orders [get]
func (c *orderController) GetAllOrders(ctx *gin.Context) {
	orders, err := c.service.GetAllOrders()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param status body models.OrderStatusUpdate true "New status"
// @Success 200 {object} models.OrderResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/orders/{id}/status [patch]
func (c *orderController) UpdateOrderStatus(ctx *gin.Context) {
	var update models.OrderStatusUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}
	order, err := c.service.UpdateOrderStatus(ctx.Param("id"), update.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.ToOrderResponse(order))
}

// authenticatedEmail reads the email the JWT middleware stored; a miss means
// the route was wired without the middleware.
func authenticatedEmail(ctx *gin.Context) (string, bool) {
	email, exists := ctx.Get("userEmail")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, "User not authenticated"))
		return "", false
	}
	value, ok := email.(string)
	if !ok || value == "" {
		ctx.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, "User not authenticated"))
		return "", false
	}
	return value, true
}

func toOrderResponses(orders []models.Order) []models.OrderResponse {
	responses := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, models.ToOrderResponse(&orders[i]))
	}
	return responses
}
