package mongodb

import (
	"context"
	"time"

	"booking-management-api-server/internal/models"
	"booking-management-api-server/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepo struct {
	bookings collection[models.Booking]
	now      func() time.Time
}

var _ repository.BookingRepository = (*BookingRepo)(nil)

func NewBookingRepo(db *mongo.Database) *BookingRepo {
	return &BookingRepo{
		bookings: newCollection[models.Booking](db, repository.BookingsCollection),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (r *BookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	return r.bookings.list(ctx)
}

func (r *BookingRepo) Create(ctx context.Context, b *models.Booking) error {
	b.Status = models.BookingStatusPending
	b.CreatedAt = r.now()
	b.UpdatedAt = nil

	id, err := r.bookings.insert(ctx, b)
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}

func (r *BookingRepo) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	return r.bookings.updateByID(ctx, id, bson.M{"status": status}, r.now())
}
