// Package memory keeps drivers and bookings in process memory. It backs the
// API when store.driver is "memory" and stands in for MongoDB in tests.
package memory

import (
	"context"
	"sync"
	"time"

	"booking-management-api-server/internal/models"
	"booking-management-api-server/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DriverRepository struct {
	mu      sync.RWMutex
	drivers []models.Driver
	index   map[primitive.ObjectID]int
}

var _ repository.DriverRepository = (*DriverRepository)(nil)

func NewDriverRepository() *DriverRepository {
	return &DriverRepository{
		index: make(map[primitive.ObjectID]int),
	}
}

func (r *DriverRepository) List(ctx context.Context) ([]models.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Driver, len(r.drivers))
	copy(out, r.drivers)
	return out, nil
}

func (r *DriverRepository) Create(ctx context.Context, driver *models.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	driver.ID = primitive.NewObjectID()
	driver.Availability = models.AvailabilityAvailable
	driver.CreatedAt = time.Now().UTC()
	driver.UpdatedAt = nil

	r.index[driver.ID] = len(r.drivers)
	r.drivers = append(r.drivers, *driver)
	return nil
}

func (r *DriverRepository) UpdateAvailability(ctx context.Context, id string, availability models.Availability) error {
	oid, err := repository.ParseID(repository.DriversCollection, id)
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
	r.drivers[i].Availability = availability
	r.drivers[i].UpdatedAt = &now
	return nil
}
