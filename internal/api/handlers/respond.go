// server/internal/api/handlers/respond.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"booking-management-api-server/internal/models"
	"booking-management-api-server/internal/repository"

	"github.com/gin-gonic/gin"
)

// badRequest answers a validation failure. Nothing has been written at this point.
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.Fail(message))
}

// storeFailure maps a repository error onto the envelope: ErrNotFound becomes a
// 404 carrying notFoundMessage, anything else a 500 carrying the raw cause.
func storeFailure(c *gin.Context, op string, err error, notFoundMessage string) {
	if notFoundMessage != "" && errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.Fail(notFoundMessage))
		return
	}
	log.Printf("%s failed: %v", op, err)
	c.JSON(http.StatusInternalServerError, models.Fail(err.Error()))
}
