package mongodb

import (
	"context"
	"testing"

	"booking-management-api-server/internal/models"
	"booking-management-api-server/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestBookingRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("list", func(mt *mtest.T) {
		repo := NewBookingRepo(mt.DB)
		driverID := primitive.NewObjectID()
		ns := mt.DB.Name() + "." + repository.BookingsCollection

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "customerName", Value: "Meera"},
				{Key: "pickupLocation", Value: "MG Road"},
				{Key: "dropLocation", Value: "Airport"},
				{Key: "driverId", Value: driverID},
				{Key: "status", Value: "Completed"},
			},
		))

		bookings, err := repo.List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, bookings, 1)
		assert.Equal(mt, driverID, bookings[0].DriverID)
		assert.Equal(mt, models.BookingStatusCompleted, bookings[0].Status)
	})

	mt.Run("create forces pending", func(mt *mtest.T) {
		repo := NewBookingRepo(mt.DB)
		repo.now = fixedNow
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		b := &models.Booking{
			CustomerName:   "Meera",
			PickupLocation: "MG Road",
			DropLocation:   "Airport",
			DriverID:       primitive.NewObjectID(),
			Status:         models.BookingStatusCancelled,
		}
		require.NoError(mt, repo.Create(context.Background(), b))

		assert.False(mt, b.ID.IsZero())
		assert.Equal(mt, models.BookingStatusPending, b.Status)
		assert.Equal(mt, fixedNow(), b.CreatedAt)
	})

	mt.Run("update status", func(mt *mtest.T) {
		repo := NewBookingRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		err := repo.UpdateStatus(context.Background(), primitive.NewObjectID().Hex(), models.BookingStatusCompleted)
		assert.NoError(mt, err)
	})

	mt.Run("update status of missing booking", func(mt *mtest.T) {
		repo := NewBookingRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.UpdateStatus(context.Background(), primitive.NewObjectID().Hex(), models.BookingStatusCompleted)
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("update failure is a store error", func(mt *mtest.T) {
		repo := NewBookingRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "invalid update document",
		}))

		err := repo.UpdateStatus(context.Background(), primitive.NewObjectID().Hex(), models.BookingStatusCancelled)
		var storeErr *repository.StoreError
		require.ErrorAs(mt, err, &storeErr)
		assert.NotErrorIs(mt, err, repository.ErrNotFound)
		assert.Contains(mt, err.Error(), "invalid update document")
	})
}
