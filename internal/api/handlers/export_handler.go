// server/internal/api/handlers/export_handler.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"booking-management-api-server/internal/models"
	"booking-management-api-server/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SnapshotUploader stores an export document and returns where it went.
type SnapshotUploader interface {
	UploadJSON(ctx context.Context, name string, body io.Reader) (key, url string, err error)
}

type ExportHandler struct {
	Drivers  repository.DriverRepository
	Bookings repository.BookingRepository
	Uploader SnapshotUploader // nil when S3 is not configured
}

type Snapshot struct {
	ExportedAt time.Time        `json:"exportedAt"`
	Drivers    []models.Driver  `json:"drivers"`
	Bookings   []models.Booking `json:"bookings"`
}

// CreateExport uploads a JSON snapshot of both collections to S3.
func (h *ExportHandler) CreateExport(c *gin.Context) {
	if h.Uploader == nil {
		c.JSON(http.StatusServiceUnavailable, models.Fail("Snapshot export is not configured"))
		return
	}
	ctx := c.Request.Context()

	drivers, err := h.Drivers.List(ctx)
	if err != nil {
		storeFailure(c, "export drivers", err, "")
		return
	}
	bookings, err := h.Bookings.List(ctx)
	if err != nil {
		storeFailure(c, "export bookings", err, "")
		return
	}

	snapshot := Snapshot{ExportedAt: time.Now().UTC(), Drivers: drivers, Bookings: bookings}
	body, err := json.Marshal(snapshot)
	if err != nil {
		log.Printf("encode snapshot failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Fail(err.Error()))
		return
	}

	name := fmt.Sprintf("snapshot-%s-%s.json", snapshot.ExportedAt.Format("20060102T150405Z"), uuid.NewString()[:8])
	key, url, err := h.Uploader.UploadJSON(ctx, name, bytes.NewReader(body))
	if err != nil {
		log.Printf("upload snapshot failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Fail(err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.OK(gin.H{
		"key":      key,
		"url":      url,
		"drivers":  len(drivers),
		"bookings": len(bookings),
	}))
}
