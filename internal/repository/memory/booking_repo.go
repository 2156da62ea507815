package memory

import (
	"context"
	"sync"
	"time"

	"booking-management-api-server/internal/models"
	"booking-management-api-server/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingRepository struct {
	mu       sync.RWMutex
	bookings []models.Booking
	index    map[primitive.ObjectID]int
}

var _ repository.BookingRepository = (*BookingRepository)(nil)

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{
		index: make(map[primitive.ObjectID]int),
	}
}

func (r *BookingRepository) List(ctx context.Context) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking.ID = primitive.NewObjectID()
	booking.Status = models.BookingStatusPending
	booking.CreatedAt = time.Now().UTC()
	booking.UpdatedAt = nil

	r.index[booking.ID] = len(r.bookings)
	r.bookings = append(r.bookings, *booking)
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	oid, err := repository.ParseID(repository.BookingsCollection, id)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, exists := r.index[oid]
	if !exists {
		return repository.ErrNotFound
	}
	now := time.Now().UTC()
	r.bookings[i].Status = status
	r.bookings[i].UpdatedAt = &now
	return nil
}
