package database

import (
	"context"
	"testing"

	"booking-management-api-server/config"
	"booking-management-api-server/internal/models"
	"booking-management-api-server/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDrivers_EmptyCollection(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewDriverRepository()

	n, err := SeedDrivers(ctx, repo, []config.SeedDriver{
		{Name: "Asha", CarDetails: "Swift KA-01"},
		{Name: "", CarDetails: "ignored"},
		{Name: "Ravi", CarDetails: "Dzire KA-02"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	drivers, _ := repo.List(ctx)
	require.Len(t, drivers, 2)
	for _, d := range drivers {
		assert.Equal(t, models.AvailabilityAvailable, d.Availability)
	}
}

func TestSeedDrivers_SkipsWhenDriversExist(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewDriverRepository()
	require.NoError(t, repo.Create(ctx, &models.Driver{Name: "Existing", CarDetails: "Car"}))

	n, err := SeedDrivers(ctx, repo, []config.SeedDriver{{Name: "Asha", CarDetails: "Swift"}})
	require.NoError(t, err)
	assert.Zero(t, n)

	drivers, _ := repo.List(ctx)
	assert.Len(t, drivers, 1)
}

func TestSeedDrivers_NothingConfigured(t *testing.T) {
	n, err := SeedDrivers(context.Background(), memory.NewDriverRepository(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}
