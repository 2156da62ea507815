// server/internal/models/booking.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingStatus is the lifecycle flag of a ride request. Any value may follow any other.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CustomerName   string             `bson:"customerName" json:"customerName"`
	PickupLocation string             `bson:"pickupLocation" json:"pickupLocation"`
	DropLocation   string             `bson:"dropLocation" json:"dropLocation"`
	DriverID       primitive.ObjectID `bson:"driverId" json:"driverId"` // not checked against drivers
	Status         BookingStatus      `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
