package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-delivery-api/internal/auth"
	"github.com/franciscosanchezn/pizza-delivery-api/internal/models"
	"github.com/franciscosanchezn/pizza-delivery-api/internal/services"
	"github.com/gin-gonic/gin"
)

// AuthController handles customer registration and login. Token issuance is
// deliberately minimal: a signed JWT the middleware can validate, nothing
// more.
type AuthController interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	AdminLogin(c *gin.Context)
}

type authController struct {
	customers services.CustomerService
	users     services.UserService
	tokens    *auth.TokenGenerator
}

// NewAuthController creates a new instance of AuthController
func NewAuthController(customers services.CustomerService, users services.UserService, tokens *auth.TokenGenerator) AuthController {
	return &authController{customers: customers, users: users, tokens: tokens}
}

// Register godoc
// @Summary Register a customer account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration"
// @Success 201 {object} models.CustomerUser
// @Failure 409 {object} models.APIError
// @Router /api/v1/auth/register [post]
func (c *authController) Register(ctx *gin.Context) {
	var req models.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}
	customer, err := c.customers.Register(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, customer)
}

// Login godoc
// @Summary Customer login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.APIError
// @Router /api/v1/auth/login [post]
func (c *authController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}
	customer, err := c.customers.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, "Invalid email or password"))
			return
		}
		respondError(ctx, err)
		return
	}
	c.respondWithToken(ctx, customer.ID, customer.Email, "user")
}

// AdminLogin godoc
// @Summary Staff login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.APIError
// @Router /api/v1/auth/admin/login [post]
func (c *authController) AdminLogin(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}
	user, err := c.users.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, "Invalid email or password"))
			return
		}
		respondError(ctx, err)
		return
	}
	c.respondWithToken(ctx, strconv.FormatUint(uint64(user.ID), 10), user.Email, user.Role)
}

func (c *authController) respondWithToken(ctx *gin.Context, subjectID, email, role string) {
	token, err := c.tokens.Generate(subjectID, email, role)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Could not generate token"))
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"token":      token,
		"type":       "Bearer",
		"expires_in": int(c.tokens.TTL().Seconds()),
	})
}
