// server/internal/api/handlers/booking_handler.go
package handlers

import (
	"net/http"

	"booking-management-api-server/internal/models"
	"booking-management-api-server/internal/repository"
	"booking-management-api-server/internal/socket"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	Bookings repository.BookingRepository
	Hub      *socket.Hub
}

type CreateBookingRequest struct {
	CustomerName   string `json:"customerName" binding:"required"`
	PickupLocation string `json:"pickupLocation" binding:"required"`
	DropLocation   string `json:"dropLocation" binding:"required"`
	DriverID       string `json:"driverId" binding:"required"`
}

type UpdateBookingStatusRequest struct {
	BookingID string               `json:"bookingId" binding:"required"`
	Status    models.BookingStatus `json:"status" binding:"required"`
}

// GetAllBookings lists every booking.
func (h *BookingHandler) GetAllBookings(c *gin.Context) {
	bookings, err := h.Bookings.List(c.Request.Context())
	if err != nil {
		storeFailure(c, "list bookings", err, "")
		return
	}
	c.JSON(http.StatusOK, models.OK(bookings))
}

// CreateBooking stores a Pending booking for the given driver. The driver id is
// only checked for shape, not for existence.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "All fields are required")
		return
	}

	driverID, err := repository.ParseID(repository.DriversCollection, req.DriverID)
	if err != nil {
		storeFailure(c, "create booking", err, "")
		return
	}

	booking := models.Booking{
		CustomerName:   req.CustomerName,
		PickupLocation: req.PickupLocation,
		DropLocation:   req.DropLocation,
		DriverID:       driverID,
	}
	if err := h.Bookings.Create(c.Request.Context(), &booking); err != nil {
		storeFailure(c, "create booking", err, "")
		return
	}

	h.Hub.Publish(socket.EventBookingCreated, booking)
	c.JSON(http.StatusOK, models.OK(booking))
}

// UpdateBookingStatus handles PATCH /bookings.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Booking ID and status are required")
		return
	}
	if !req.Status.Valid() {
		badRequest(c, "Valid booking status is required")
		return
	}

	if err := h.Bookings.UpdateStatus(c.Request.Context(), req.BookingID, req.Status); err != nil {
		storeFailure(c, "update booking status", err, "Booking not found")
		return
	}

	h.Hub.Publish(socket.EventBookingStatusUpdated, gin.H{"_id": req.BookingID, "status": req.Status})
	c.JSON(http.StatusOK, models.OKMessage("Booking status updated successfully"))
}
