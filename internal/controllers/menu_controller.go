package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-delivery-api/internal/models"
	"github.com/franciscosanchezn/pizza-delivery-api/internal/services"
	"github.com/gin-gonic/gin"
)

// MenuController handles HTTP requests for the public menu and its
// administration.
type MenuController interface {
	GetAllTypes(c *gin.Context)
	CreateType(c *gin.Context)
	UpdateType(c *gin.Context)
	DeleteType(c *gin.Context)
	GetExtrasForType(c *gin.Context)
	GetCrustsForType(c *gin.Context)

	GetAllFlavors(c *gin.Context)
	CreateFlavor(c *gin.Context)
	UpdateFlavor(c *gin.Context)
	DeleteFlavor(c *gin.Context)

	GetAllExtras(c *gin.Context)
	CreateExtra(c *gin.Context)
	UpdateExtra(c *gin.Context)
	DeleteExtra(c *gin.Context)

	GetAllCrusts(c *gin.Context)
	CreateCrust(c *gin.Context)
	UpdateCrust(c *gin.Context)
	DeleteCrust(c *gin.Context)

	GetAllBeverages(c *gin.Context)
	CreateBeverage(c *gin.Context)
	UpdateBeverage(c *gin.Context)
	DeleteBeverage(c *gin.Context)

	GetAllBeverageCategories(c *gin.Context)
	CreateBeverageCategory(c *gin.Context)
	UpdateBeverageCategory(c *gin.Context)
	DeleteBeverageCategory(c *gin.Context)
}

type menuController struct {
	service services.MenuService
}

// NewMenuController creates a new instance of MenuController
func NewMenuController(service services.MenuService) MenuController {
	return &menuController{service: service}
}

// GetAllTypes godoc
// @Summary List pizza types
// @Tags menu
// @Produce json
// @Success 200 {array} models.PizzaType
// @Router /api/v1/public/menu/types [get]
func (c *menuController) GetAllTypes(ctx *gin.Context) {
	types, err := c.service.GetAllTypes()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, types)
}

// CreateType godoc
// @Summary Create a pizza type
// @Tags menu
// @Accept json
// @Produce json
// @Param type body models.PizzaTypeRequest true "Pizza type"
// @Success 201 {object} models.PizzaType
// @Security BearerAuth
// @Router /api/v1/protected/admin/menu/types [post]
func (c *menuController) CreateType(ctx *gin.Context) {
	var req models.PizzaTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}
	created, err := c.service.CreateType(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateType godoc
// @Summary Update a pizza type
// @Tags menu
// @Accept json
// @Produce json
// @Param id path string true "Pizza type ID"
// @Param type body models.PizzaTypeRequest true "Pizza type"
// @Success 200 {object} models.PizzaType
// @Security BearerAuth
// @Router /api/v1/protected/admin/menu/types/{id} [put]
func (c *menuController) UpdateType(ctx *gin.Context) {
	var req models.PizzaTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}
	updated, err := c.service.UpdateType(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteType godoc
// @Summary Delete a pizza type
// @Tags menu
// @Param id path string true "Pizza type ID"
// @Success 204
// @Security BearerAuth
// @Router /api/v1/protected/admin/menu/types/{id} [delete]
func (c *menuController) DeleteType(ctx *gin.Context) {
	if err := c.service.DeleteType(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// GetExtrasForType godoc
// @Summary List the extras available on a pizza type
// @Tags menu
// @Produce json
// @Param id path string true "Pizza type ID"
// @Success 200 {array} models.PizzaExtra
// @Router /api/v1/public/menu/types/{id}/extras [get]
func (c *menuController) GetExtrasForType(ctx *gin.Context) {
	extras, err := c.service.GetExtrasByTypeID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, extras)
}

// GetCrustsForType godoc
// @Summary List the crusts available on a pizza type
// @Tags menu
// @Produce json
// @Param id path string true "Pizza type ID"
// @Success 200 {array} models.PizzaCrust
// @Router /api/v1/public/menu/types/{id}/crusts [get]
func (c *menuController) GetCrustsForType(ctx *gin.Context) {
	crusts, err := c.service.GetCrustsByTypeID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, crusts)
}

// GetAllFlavors godoc
// @Summary List flavors
// @Tags menu
// @Produce json
// @Success 200 {array} models.PizzaFlavor
// @Router /api/v1/public/menu/flavors [get]
func (c *menuController) GetAllFlavors(ctx *gin.Context) {
	flavors, err := c.service.GetAllFlavors()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, flavors)
}

func (c *menuController) CreateFlavor(ctx *gin.Context) {
	var req models.FlavorUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}
	created, err := c.service.CreateFlavor(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *menuController) UpdateFlavor(ctx *gin.Context) {
	var req models.FlavorUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}
	updated, err := c.service.UpdateFlavor(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func (c *menuController) DeleteFlavor(ctx *gin.Context) {
	if err := c.service.DeleteFlavor(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// GetAllExtras godoc
// @Summary List extras
// @Tags menu
// @Produce json
// @Success 200 {array} models.PizzaExtra
// @Router /api/v1/public/menu/extras [get]
func (c *menuController) GetAllExtras(ctx *gin.Context) {
	extras, err := c.service.GetAllExtras()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, extras)
}

// CreateExtra godoc
// @Summary Create an extra and associate it with pizza types
// @Tags menu
// @Accept json
// @Produce json
// @Param extra body models.ExtraUpdateRequest true "Extra with desired pizza type ids"
// @Success 201 {object} models.PizzaExtra
// @Security BearerAuth
// @Router /api/v1/protected/admin/menu/extras [post]
func (c *menuController) CreateExtra(ctx *gin.Context) {
	var req models.ExtraUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}
	created, err := c.service.CreateExtra(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateExtra godoc
// @Summary Update an extra and reconcile its pizza type associations
// @Tags menu
// @Accept json
// @Produce json
// @Param id path string true "Extra ID"
// @Param extra body models.ExtraUpdateRequest true "Extra with desired pizza type ids"
// @Success 200 {object} models.PizzaExtra
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/menu/extras/{id} [put]
func (c *menuController) UpdateExtra(ctx *gin.Context) {
	var req models.ExtraUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}
	updated, err := c.service.UpdateExtra(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteExtra godoc
// @Summary Delete an extra, clearing its pizza type associations first
// @Tags menu
// @Param id path string true "Extra ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/menu/extras/{id} [delete]
func (c *menuController) DeleteExtra(ctx *gin.Context) {
	if err := c.service.DeleteExtra(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// GetAllCrusts godoc
// @Summary List crusts
// @Tags menu
// @Produce json
// @Success 200 {array} models.PizzaCrust
// @Router /api/v1/public/menu/crusts [get]
func (c *menuController) GetAllCrusts(ctx *gin.Context) {
	crusts, err := c.service.GetAllCrusts()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, crusts)
}

func (c *menuController) CreateCrust(ctx *gin.Context) {
	var req models.CrustUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}
	created, err := c.service.CreateCrust(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *menuController) UpdateCrust(ctx *gin.Context) {
	var req models.CrustUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}
	updated, err := c.service.UpdateCrust(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func (c *menuController) DeleteCrust(ctx *gin.Context) {
	if err := c.service.DeleteCrust(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// GetAllBeverages godoc
// @Summary List beverages
// @Tags menu
// @Produce json
// @Success 200 {array} models.Beverage
// @Router /api/v1/public/menu/beverages [get]
func (c *menuController) GetAllBeverages(ctx *gin.Context) {
	beverages, err := c.service.GetAllBeverages()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, beverages)
}

func (c *menuController) CreateBeverage(ctx *gin.Context) {
	var req models.BeverageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}
	created, err := c.service.CreateBeverage(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *menuController) UpdateBeverage(ctx *gin.Context) {
	var req models.BeverageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}
	updated, err := c.service.UpdateBeverage(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func (c *menuController) DeleteBeverage(ctx *gin.Context) {
	if err := c.service.DeleteBeverage(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// GetAllBeverageCategories godoc
// @Summary List beverage categories
// @Tags menu
// @Produce json
// @Success 200 {array} models.BeverageCategory
// @Router /api/v1/public/menu/beverage-categories [get]
func (c *menuController) GetAllBeverageCategories(ctx *gin.Context) {
	categories, err := c.service.GetAllBeverageCategories()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

func (c *menuController) CreateBeverageCategory(ctx *gin.Context) {
	var req models.BeverageCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}
	created, err := c.service.CreateBeverageCategory(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *menuController) UpdateBeverageCategory(ctx *gin.Context) {
	var req models.BeverageCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}
	updated, err := c.service.UpdateBeverageCategory(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func (c *menuController) DeleteBeverageCategory(ctx *gin.Context) {
	if err := c.service.DeleteBeverageCategory(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
