// server/internal/database/seeder.go
package database

import (
	"context"
	"log"

	"booking-management-api-server/config"
	"booking-management-api-server/internal/models"
	"booking-management-api-server/internal/repository"
)

// SeedDrivers inserts the configured drivers when the drivers collection is empty.
// It returns how many drivers were created.
func SeedDrivers(ctx context.Context, drivers repository.DriverRepository, seed []config.SeedDriver) (int, error) {
	if len(seed) == 0 {
		return 0, nil
	}

	existing, err := drivers.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		log.Println("Drivers already exist. Seeding skipped.")
		return 0, nil
	}

	log.Println("No drivers found. Seeding...")
	created := 0
	for _, s := range seed {
		if s.Name == "" || s.CarDetails == "" {
			log.Printf("Skipping seed driver with missing fields: %+v", s)
			continue
		}
		d := &models.Driver{Name: s.Name, CarDetails: s.CarDetails}
		if err := drivers.Create(ctx, d); err != nil {
			return created, err
		}
		created++
	}

	log.Printf("Seeded %d drivers.", created)
	return created, nil
}
