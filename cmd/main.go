package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/franciscosanchezn/pizza-delivery-api/internal/auth"
	"github.com/franciscosanchezn/pizza-delivery-api/internal/config"
	"github.com/franciscosanchezn/pizza-delivery-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-delivery-api/internal/database"
	"github.com/franciscosanchezn/pizza-delivery-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-delivery-api/internal/models"
	"github.com/franciscosanchezn/pizza-delivery-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db                 *gorm.DB
	configuration      *config.Config
	orderController    controllers.OrderController
	menuController     controllers.MenuController
	customerController controllers.CustomerController
	authController     controllers.AuthController
)

// @title Pizza Delivery API
// @version 1.0
// @description Ordering backend for a pizza delivery shop
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	orderService := services.NewOrderService(db)
	menuService := services.NewMenuService(db)
	customerService := services.NewCustomerService(db)
	userService := services.NewUserService(db)
	tokens := auth.NewTokenGenerator(configuration.JWTSecret, auth.DefaultTokenTTL)

	orderController = controllers.NewOrderController(orderService)
	menuController = controllers.NewMenuController(menuService)
	customerController = controllers.NewCustomerController(customerService)
	authController = controllers.NewAuthController(customerService, userService, tokens)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection, migrates the schema and
// seeds a starter menu when the catalog is empty
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
	})
	checkPanicErr(err)

	// Migrate the schema
	err = db.AutoMigrate(
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
	)
	checkPanicErr(err)

	// Seed only when the catalog is empty
	var count int64
	db.Model(&models.PizzaType{}).Count(&count)
	if count == 0 {
		log.Info("Database is empty, seeding initial data")
		seedDatabase()
	} else {
		log.Info("Database already seeded with initial data")
	}
	return db
}

// seedDatabase seeds the catalog with a starter menu
func seedDatabase() {
	log.Info("Seeding database with initial data")

	extras := []models.PizzaExtra{
		{Name: "Extra Cheese", Description: "Double mozzarella", Price: 3.50},
		{Name: "Bacon", Description: "Crispy bacon bits", Price: 4.00},
	}
	for i := range extras {
		db.Create(&extras[i])
	}

	crusts := []models.PizzaCrust{
		{Name: "Traditional", Description: "Classic hand-tossed crust", Price: 0},
		{Name: "Cheese Stuffed", Description: "Crust filled with cheese", Price: 6.00},
	}
	for i := range crusts {
		db.Create(&crusts[i])
	}

	types := []models.PizzaType{
		{Name: "Small", Description: "4 slices, 1 flavor", BasePrice: 25.00, AvailableExtras: extras, AvailableCrusts: crusts},
		{Name: "Large", Description: "8 slices, up to 2 flavors", BasePrice: 45.00, AvailableExtras: extras, AvailableCrusts: crusts},
	}
	for i := range types {
		db.Create(&types[i])
	}

	flavors := []models.PizzaFlavor{
		{Name: "Margherita", Description: "Tomato sauce, mozzarella and basil", Price: 10.00, PizzaTypes: types},
		{Name: "Pepperoni", Description: "Tomato sauce, mozzarella and pepperoni", Price: 12.00, PizzaTypes: types},
		{Name: "Vegetarian", Description: "Tomato sauce, mozzarella, bell peppers and olives", Price: 11.00, PizzaTypes: types},
	}
	for i := range flavors {
		db.Create(&flavors[i])
	}

	category := models.BeverageCategory{Name: "Soft Drinks"}
	db.Create(&category)
	beverages := []models.Beverage{
		{Name: "Cola 2L", Description: "Family size bottle", Price: 10.00, CategoryID: &category.ID},
		{Name: "Orange Soda", Description: "350ml can", Price: 5.00, CategoryID: &category.ID},
	}
	for i := range beverages {
		db.Create(&beverages[i])
	}

	log.Info("Database seeded successfully")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	v1 := router.Group("/api/v1")
	{
		publicApi := v1.Group("/public")
		{
			menu := publicApi.Group("/menu")
			{
				menu.GET("/types", menuController.GetAllTypes)
				menu.GET("/types/:id/extras", menuController.GetExtrasForType)
				menu.GET("/types/:id/crusts", menuController.GetCrustsForType)
				menu.GET("/flavors", menuController.GetAllFlavors)
				menu.GET("/extras", menuController.GetAllExtras)
				menu.GET("/crusts", menuController.GetAllCrusts)
				menu.GET("/beverages", menuController.GetAllBeverages)
				menu.GET("/beverage-categories", menuController.GetAllBeverageCategories)
			}

			// Public order tracking
			publicApi.GET("/orders/:id", orderController.GetOrderByID)
		}

		// Authentication routes (public but for auth purposes)
		authApi := v1.Group("/auth")
		{
			authApi.POST("/register", authController.Register)
			authApi.POST("/login", authController.Login)
			authApi.POST("/admin/login", authController.AdminLogin)
		}

		// Protected routes (requires JWT authentication)
		protectedApi := v1.Group("/protected")
		protectedApi.Use(middleware.JWTAuth([]byte(configuration.JWTSecret)))
		{
			protectedApi.POST("/orders", orderController.CreateOrder)
			protectedApi.GET("/me/orders", orderController.GetMyOrders)

			adminApi := protectedApi.Group("/admin")
			adminApi.Use(middleware.RequireRole("admin"))
			{
				adminApi.GET("/orders", orderController.GetAllOrders)
				adminApi.PATCH("/orders/:id/status", orderController.UpdateOrderStatus)

				menu := adminApi.Group("/menu")
				{
					menu.POST("/types", menuController.CreateType)
					menu.PUT("/types/:id", menuController.UpdateType)
					menu.DELETE("/types/:id", menuController.DeleteType)
					menu.POST("/flavors", menuController.CreateFlavor)
					menu.PUT("/flavors/:id", menuController.UpdateFlavor)
					menu.DELETE("/flavors/:id", menuController.DeleteFlavor)
					menu.POST("/extras", menuController.CreateExtra)
					menu.PUT("/extras/:id", menuController.UpdateExtra)
					menu.DELETE("/extras/:id", menuController.DeleteExtra)
					menu.POST("/crusts", menuController.CreateCrust)
					menu.PUT("/crusts/:id", menuController.UpdateCrust)
					menu.DELETE("/crusts/:id", menuController.DeleteCrust)
					menu.POST("/beverages", menuController.CreateBeverage)
					menu.PUT("/beverages/:id", menuController.UpdateBeverage)
					menu.DELETE("/beverages/:id", menuController.DeleteBeverage)
					menu.POST("/beverage-categories", menuController.CreateBeverageCategory)
					menu.PUT("/beverage-categories/:id", menuController.UpdateBeverageCategory)
					menu.DELETE("/beverage-categories/:id", menuController.DeleteBeverageCategory)
				}

				adminApi.GET("/customers", customerController.GetAllCustomers)
				adminApi.PUT("/customers/:id", customerController.UpdateCustomer)
				adminApi.DELETE("/customers/:id", customerController.DeleteCustomer)
				adminApi.PUT("/addresses/:id", customerController.UpdateAddress)
				adminApi.DELETE("/addresses/:id", customerController.DeleteAddress)
			}
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizza-delivery-api",
	})
}
