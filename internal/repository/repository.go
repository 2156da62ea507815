// Package repository defines the data-access contract shared by drivers and bookings.
package repository

import (
	"context"
	"errors"
	"fmt"

	"booking-management-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DriversCollection  = "drivers"
	BookingsCollection = "bookings"
)

var (
	// ErrNotFound is returned by updates that matched no document.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID is wrapped by StoreError when an id is not a valid ObjectID.
	ErrInvalidID = errors.New("invalid document id")
)

// StoreError is any failure coming out of the data layer. Its message is the
// underlying cause so clients see what the store reported.
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string { return e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

// Wrap tags err as a StoreError for op on collection. A nil err stays nil.
func Wrap(op, collection string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Collection: collection, Err: err}
}

// ParseID converts a hex id into an ObjectID.
func ParseID(collection, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, Wrap("parse id", collection, fmt.Errorf("%w %q: %v", ErrInvalidID, id, err))
	}
	return oid, nil
}

type DriverRepository interface {
	List(ctx context.Context) ([]models.Driver, error)
	// Create forces availability to Available and sets createdAt.
	Create(ctx context.Context, driver *models.Driver) error
	UpdateAvailability(ctx context.Context, id string, availability models.Availability) error
}

type BookingRepository interface {
	List(ctx context.Context) ([]models.Booking, error)
	// Create forces status to Pending and sets createdAt.
	Create(ctx context.Context, booking *models.Booking) error
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error
}
