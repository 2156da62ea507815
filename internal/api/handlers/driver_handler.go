// server/internal/api/handlers/driver_handler.go
package handlers

import (
	"net/http"

	"booking-management-api-server/internal/models"
	"booking-management-api-server/internal/repository"
	"booking-management-api-server/internal/socket"

	"github.com/gin-gonic/gin"
)

type DriverHandler struct {
	Drivers repository.DriverRepository
	Hub     *socket.Hub
}

type CreateDriverRequest struct {
	Name       string `json:"name" binding:"required"`
	CarDetails string `json:"carDetails" binding:"required"`
}

type UpdateAvailabilityRequest struct {
	Availability models.Availability `json:"availability"`
}

// GetAllDrivers lists every driver.
func (h *DriverHandler) GetAllDrivers(c *gin.Context) {
	drivers, err := h.Drivers.List(c.Request.Context())
	if err != nil {
		storeFailure(c, "list drivers", err, "")
		return
	}
	c.JSON(http.StatusOK, models.OK(drivers))
}

// CreateDriver registers a driver; new drivers always start Available.
func (h *DriverHandler) CreateDriver(c *gin.Context) {
	var req CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Name and car details are required")
		return
	}

	driver := models.Driver{Name: req.Name, CarDetails: req.CarDetails}
	if err := h.Drivers.Create(c.Request.Context(), &driver); err != nil {
		storeFailure(c, "create driver", err, "")
		return
	}

	h.Hub.Publish(socket.EventDriverCreated, driver)
	c.JSON(http.StatusOK, models.OK(driver))
}

// UpdateAvailability handles PATCH /drivers/:id.
func (h *DriverHandler) UpdateAvailability(c *gin.Context) {
	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Availability.Valid() {
		badRequest(c, "Valid availability status is required")
		return
	}

	id := c.Param("id")
	if err := h.Drivers.UpdateAvailability(c.Request.Context(), id, req.Availability); err != nil {
		storeFailure(c, "update driver availability", err, "Driver not found")
		return
	}

	h.Hub.Publish(socket.EventDriverAvailabilityUpdated, gin.H{"_id": id, "availability": req.Availability})
	c.JSON(http.StatusOK, models.OKMessage("Availability updated successfully"))
}
