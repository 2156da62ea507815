package mongodb

import (
	"context"
	"time"

	"booking-management-api-server/internal/models"
	"booking-management-api-server/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type DriverRepo struct {
	drivers collection[models.Driver]
	now     func() time.Time
}

var _ repository.DriverRepository = (*DriverRepo)(nil)

func NewDriverRepo(db *mongo.Database) *DriverRepo {
	return &DriverRepo{
		drivers: newCollection[models.Driver](db, repository.DriversCollection),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (r *DriverRepo) List(ctx context.Context) ([]models.Driver, error) {
	return r.drivers.list(ctx)
}

func (r *DriverRepo) Create(ctx context.Context, d *models.Driver) error {
	d.Availability = models.AvailabilityAvailable
	d.CreatedAt = r.now()
	d.UpdatedAt = nil

	id, err := r.drivers.insert(ctx, d)
	if err != nil {
		return err
	}
	d.ID = id
	return nil
}

func (r *DriverRepo) UpdateAvailability(ctx context.Context, id string, availability models.Availability) error {
	return r.drivers.updateByID(ctx, id, bson.M{"availability": availability}, r.now())
}
