package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"booking-management-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var errStoreDown = errors.New("connection pool cleared")

// failingDrivers and failingBookings fail every call with errStoreDown.
type failingDrivers struct{}

func (failingDrivers) List(context.Context) ([]models.Driver, error) { return nil, errStoreDown }
func (failingDrivers) Create(context.Context, *models.Driver) error  { return errStoreDown }
func (failingDrivers) UpdateAvailability(context.Context, string, models.Availability) error {
	return errStoreDown
}

type failingBookings struct{}

func (failingBookings) List(context.Context) ([]models.Booking, error) { return nil, errStoreDown }
func (failingBookings) Create(context.Context, *models.Booking) error  { return errStoreDown }
func (failingBookings) UpdateStatus(context.Context, string, models.BookingStatus) error {
	return errStoreDown
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func perform(t *testing.T, engine *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	}
	return w, env
}
