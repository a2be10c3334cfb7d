package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/pizza-delivery-api/internal/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// respondError maps domain errors to HTTP responses. NotFound, Validation
// and Conflict carry client-caused failures; anything else is an internal
// error and the detail stays in the log.
func respondError(ctx *gin.Context, err error) {
	var notFound *models.NotFoundError
	if errors.As(err, &notFound) {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, notFound.Error(), map[string]interface{}{
			"kind": notFound.Kind,
			"id":   notFound.ID,
		}))
		return
	}

	var validation *models.ValidationError
	if errors.As(err, &validation) {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, validation.Error()))
		return
	}

	var conflict *models.ConflictError
	if errors.As(err, &conflict) {
		ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrConflict, conflict.Error()))
		return
	}

	log.WithError(err).Error("Unhandled error in request")
	ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Internal server error"))
}
