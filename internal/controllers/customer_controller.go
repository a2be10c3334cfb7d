package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-delivery-api/internal/models"
	"github.com/franciscosanchezn/pizza-delivery-api/internal/services"
	"github.com/gin-gonic/gin"
)

// CustomerController handles admin customer management.
type CustomerController interface {
	GetAllCustomers(c *gin.Context)
	UpdateCustomer(c *gin.Context)
	DeleteCustomer(c *gin.Context)
	UpdateAddress(c *gin.Context)
	DeleteAddress(c *gin.Context)
}

type customerController struct {
	service services.CustomerService
}

// NewCustomerController creates a new instance of CustomerController
func NewCustomerController(service services.CustomerService) CustomerController {
	return &customerController{service: service}
}

// GetAllCustomers godoc
// @Summary List customers with order totals
// @Tags customers
// @Produce json
// @Success 200 {array} models.CustomerResponse
// @Security BearerAuth
// @Router /api/v1/protected/admin/customers [get]
func (c *customerController) GetAllCustomers(ctx *gin.Context) {
	customers, err := c.service.GetAllCustomers()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, customers)
}

// UpdateCustomer godoc
// @Summary Update a customer profile
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param customer body models.CustomerUpdateRequest true "Customer fields"
// @Success 200 {object} models.CustomerUser
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/customers/{id} [put]
func (c *customerController) UpdateCustomer(ctx *gin.Context) {
	var req models.CustomerUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}
	updated, err := c.service.UpdateCustomer(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func (c *customerController) DeleteCustomer(ctx *gin.Context) {
	if err := c.service.DeleteCustomer(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

func (c *customerController) UpdateAddress(ctx *gin.Context) {
	var req models.AddressUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}
	updated, err := c.service.UpdateAddress(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func (c *customerController) DeleteAddress(ctx *gin.Context) {
	if err := c.service.DeleteAddress(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
