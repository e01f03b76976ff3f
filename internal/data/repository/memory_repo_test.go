package repository

import (
	"context"
	"sync"
	"testing"

	"car-rental/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryCarRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCarRepository(SampleCars(), zap.NewNop())

	car := &entity.Car{Name: "BMW iX", Type: "Electric SUV", Status: entity.CarStatusAvailable}
	require.NoError(t, repo.Create(ctx, car))
	assert.Equal(t, int64(4), car.ID)

	found, err := repo.FindByID(ctx, 4)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "BMW iX", found.Name)

	found.Price = 84100
	require.NoError(t, repo.Update(ctx, found))
	updated, _ := repo.FindByID(ctx, 4)
	assert.Equal(t, 84100.0, updated.Price)

	require.NoError(t, repo.Delete(ctx, 2))
	cars, err := repo.FindAll(ctx)
	require.NoError(t, err)
	names := make([]string, len(cars))
	for i, c := range cars {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"Volvo EX30", "Porsche Taycan", "BMW iX"}, names)

	missing, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.ErrorIs(t, repo.Delete(ctx, 2), ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &entity.Car{ID: 99}), ErrNotFound)
}

func TestMemoryCarRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCarRepository(SampleCars(), zap.NewNop())

	cars, _ := repo.FindAll(ctx)
	cars[0].Features[0] = "mutated"
	cars[0].Name = "mutated"

	again, _ := repo.FindAll(ctx)
	assert.Equal(t, "Volvo EX30", again[0].Name)
	assert.Equal(t, "Fully Electric", again[0].Features[0])
}

func TestMemoryCarRepositoryConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCarRepository(nil, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, &entity.Car{Name: "car"})
		}()
	}
	wg.Wait()

	cars, _ := repo.FindAll(ctx)
	require.Len(t, cars, 50)
	seen := map[int64]bool{}
	for _, c := range cars {
		assert.False(t, seen[c.ID], "duplicate id %d", c.ID)
		seen[c.ID] = true
	}
}

func TestMemoryMessageRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMessageRepository(SampleMessages(), zap.NewNop())

	msg, err := repo.AppendReply(ctx, "M002", "Yes, for two more days.")
	require.NoError(t, err)
	assert.Equal(t, "Can I extend my rental period?\n\nReply: Yes, for two more days.", msg.Content)

	msg, err = repo.MarkRead(ctx, "M001")
	require.NoError(t, err)
	assert.True(t, msg.IsRead)

	stored, err := repo.FindByID(ctx, "M002")
	require.NoError(t, err)
	assert.Contains(t, stored.Content, "Reply: Yes")

	_, err = repo.AppendReply(ctx, "M999", "hi")
	assert.ErrorIs(t, err, ErrNotFound)

	missing, err := repo.FindByID(ctx, "M999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryRepositorySeed(t *testing.T) {
	repo := NewMemoryRepository(SampleSeed(), zap.NewNop())
	ctx := context.Background()

	bookings, _ := repo.Booking.FindAll(ctx)
	customers, _ := repo.Customer.FindAll(ctx)
	catalog, _ := repo.Catalog.FindAll(ctx)
	cars, _ := repo.Car.FindAll(ctx)

	assert.Len(t, bookings, 5)
	assert.Len(t, customers, 5)
	assert.Len(t, catalog, 5)
	assert.Len(t, cars, 3)
}
