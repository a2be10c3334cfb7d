package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/franciscosanchezn/pizza-delivery-api/internal/auth"
	"github.com/franciscosanchezn/pizza-delivery-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-delivery-api/internal/models"
	"github.com/franciscosanchezn/pizza-delivery-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "test-jwt-secret-key-32-characters"

type testAPI struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupTestAPI(t *testing.T) *testAPI {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.PizzaType{},
		&models.PizzaFlavor{},
		&models.PizzaExtra{},
		&models.PizzaCrust{},
		&models.BeverageCategory{},
		&models.Beverage{},
		&models.CustomerUser{},
		&models.Address{},
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderItemExtra{},
	))

	customerService := services.NewCustomerService(db)
	userService := services.NewUserService(db)
	orderService := services.NewOrderService(db)
	tokens := auth.NewTokenGenerator(testJWTSecret, time.Hour)

	authController := NewAuthController(customerService, userService, tokens)
	orderController := NewOrderController(orderService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	authApi := router.Group("/api/v1/auth")
	authApi.POST("/register", authController.Register)
	authApi.POST("/login", authController.Login)
	authApi.POST("/admin/login", authController.AdminLogin)

	protectedApi := router.Group("/api/v1/protected")
	protectedApi.Use(middleware.JWTAuth([]byte(testJWTSecret)))
	protectedApi.POST("/orders", orderController.CreateOrder)
	protectedApi.GET("/me/orders", orderController.GetMyOrders)
	adminApi := protectedApi.Group("/admin")
	adminApi.Use(middleware.RequireRole("admin"))
	adminApi.GET("/orders", orderController.GetAllOrders)

	return &testAPI{db: db, router: router}
}

func (a *testAPI) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, api *testAPI, email, password string) string {
	w := api.do(t, "POST", "/api/v1/auth/register", models.RegisterRequest{
		Name: "Ana", Email: email, Password: password,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(t, "POST", "/api/v1/auth/login", models.LoginRequest{
		Email: email, Password: password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Contains(t, response, "token")
	assert.Equal(t, "Bearer", response["type"])
	return response["token"].(string)
}

func TestRegisterAndLoginFlow(t *testing.T) {
	api := setupTestAPI(t)

	token := registerAndLogin(t, api, "ana@example.com", "secret-password")
	assert.Contains(t, token, ".") // JWT format

	// duplicate registration conflicts
	w := api.do(t, "POST", "/api/v1/auth/register", models.RegisterRequest{
		Name: "Ana", Email: "ana@example.com", Password: "secret-password",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	// wrong password is rejected without detail
	w = api.do(t, "POST", "/api/v1/auth/login", models.LoginRequest{
		Email: "ana@example.com", Password: "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	api := setupTestAPI(t)

	// short password fails binding
	w := api.do(t, "POST", "/api/v1/auth/register", models.RegisterRequest{
		Name: "Ana", Email: "ana@example.com", Password: "123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// malformed email fails binding
	w = api.do(t, "POST", "/api/v1/auth/register", models.RegisterRequest{
		Name: "Ana", Email: "not-an-email", Password: "secret-password",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderEndpoint(t *testing.T) {
	api := setupTestAPI(t)
	token := registerAndLogin(t, api, "ana@example.com", "secret-password")

	category := models.BeverageCategory{Name: "Soft Drinks"}
	require.NoError(t, api.db.Create(&category).Error)
	beverage := models.Beverage{Name: "Cola 2L", Price: 10.00, CategoryID: &category.ID}
	require.NoError(t, api.db.Create(&beverage).Error)

	req := models.CreateOrderRequest{
		Items: []models.CartItemRequest{{
			ItemType:   models.OrderItemTypeBeverage,
			BeverageID: beverage.ID,
			Quantity:   1,
			TotalPrice: 10.00,
		}},
		DeliveryType: models.DeliveryTypePickup,
		TotalAmount:  10.00,
	}

	// unauthenticated submission is rejected
	w := api.do(t, "POST", "/api/v1/protected/orders", req, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(t, "POST", "/api/v1/protected/orders", req, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.OrderStatusReceived, created.Status)
	assert.Equal(t, "ana@example.com", created.Customer.Email)
	require.Len(t, created.Items, 1)

	// the order shows up under the customer's own listing
	w = api.do(t, "GET", "/api/v1/protected/me/orders", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var mine []models.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	assert.Len(t, mine, 1)
}

func TestCreateOrderUnknownReference(t *testing.T) {
	api := setupTestAPI(t)
	token := registerAndLogin(t, api, "ana@example.com", "secret-password")

	w := api.do(t, "POST", "/api/v1/protected/orders", models.CreateOrderRequest{
		Items: []models.CartItemRequest{{
			ItemType:   models.OrderItemTypeBeverage,
			BeverageID: "no-such-beverage",
			Quantity:   1,
		}},
		DeliveryType: models.DeliveryTypePickup,
	}, token)
	require.Equal(t, http.StatusNotFound, w.Code)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, models.ErrNotFound, apiErr.Code)
	assert.Equal(t, models.KindBeverage, apiErr.Details["kind"])
}

func TestAdminLoginAndRoleEnforcement(t *testing.T) {
	api := setupTestAPI(t)

	userService := services.NewUserService(api.db)
	require.NoError(t, userService.CreateUser(&models.User{
		Email:    "admin@pizza.com",
		Password: "admin-secret",
		Role:     "admin",
	}))

	w := api.do(t, "POST", "/api/v1/auth/admin/login", models.LoginRequest{
		Email: "admin@pizza.com", Password: "admin-secret",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	adminToken := response["token"].(string)

	w = api.do(t, "GET", "/api/v1/protected/admin/orders", nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	// a customer token cannot reach admin routes
	customerToken := registerAndLogin(t, api, "ana@example.com", "secret-password")
	w = api.do(t, "GET", "/api/v1/protected/admin/orders", nil, customerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
