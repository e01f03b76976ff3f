package usecase

import (
	"testing"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func carNames(cars []entity.Car) []string {
	names := make([]string, len(cars))
	for i, c := range cars {
		names[i] = c.Name
	}
	return names
}

func TestFilterCars(t *testing.T) {
	cars := repository.SampleCars()

	tests := []struct {
		name  string
		query request.ListQuery
		want  []string
	}{
		{"empty query keeps all", request.ListQuery{}, []string{"Volvo EX30", "Tesla Model S", "Porsche Taycan"}},
		{"name match", request.ListQuery{Query: "Tesla"}, []string{"Tesla Model S"}},
		{"case insensitive type", request.ListQuery{Query: "sports car"}, []string{"Porsche Taycan"}},
		{"feature match", request.ListQuery{Query: "autopilot"}, []string{"Volvo EX30"}},
		{"status filter", request.ListQuery{Status: "On Order"}, []string{"Tesla Model S"}},
		{"status all", request.ListQuery{Query: "electric", Status: request.StatusAll}, []string{"Volvo EX30", "Tesla Model S", "Porsche Taycan"}},
		{"query and status", request.ListQuery{Query: "electric", Status: entity.CarStatusAvailable}, []string{"Volvo EX30", "Porsche Taycan"}},
		{"no match", request.ListQuery{Query: "diesel"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterCars(cars, tt.query)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, carNames(got))
		})
	}
}

func TestFilterBookings(t *testing.T) {
	bookings := repository.SampleBookings()

	pending := FilterBookings(bookings, request.ListQuery{Status: "Pending"})
	require.Len(t, pending, 1)
	assert.Equal(t, "B003", pending[0].ID)

	byID := FilterBookings(bookings, request.ListQuery{Query: "b004"})
	require.Len(t, byID, 1)
	assert.Equal(t, "Bob Brown", byID[0].Customer)

	byCar := FilterBookings(bookings, request.ListQuery{Query: "porsche", Status: "all"})
	require.Len(t, byCar, 1)
	assert.Equal(t, "B002", byCar[0].ID)

	assert.Len(t, FilterBookings(bookings, request.ListQuery{}), 5)
	assert.Empty(t, FilterBookings(bookings, request.ListQuery{Status: "pending"}))
}

func TestFilterCustomers(t *testing.T) {
	customers := repository.SampleCustomers()

	assert.Len(t, FilterCustomers(customers, "ALICE@"), 1)
	assert.Len(t, FilterCustomers(customers, "123-4567"), 1)
	assert.Len(t, FilterCustomers(customers, ""), 5)
	assert.Empty(t, FilterCustomers(customers, "zed"))
}

func TestFilterMessages(t *testing.T) {
	messages := repository.SampleMessages()

	got := FilterMessages(messages, "rental")
	require.Len(t, got, 2)
	assert.Equal(t, "M002", got[0].ID)
	assert.Equal(t, "M005", got[1].ID)
}

func TestSearchCatalog(t *testing.T) {
	catalog := repository.SampleCatalog()

	assert.Equal(t, []string{"Tesla Model S"}, carNames(SearchCatalog(catalog, "tesla")))
	assert.Equal(t, []string{"BMW iX"}, carNames(SearchCatalog(catalog, "suv")))
	// features are not searched on the landing page
	assert.Empty(t, SearchCatalog(catalog, "autopilot"))

	car, ok := FindCatalogCar(catalog, "e-tron")
	require.True(t, ok)
	assert.Equal(t, int64(5), car.ID)

	_, ok = FindCatalogCar(catalog, "Sedan")
	assert.False(t, ok)
}

func TestComputeCarStats(t *testing.T) {
	stats := ComputeCarStats(repository.SampleCars())

	assert.Equal(t, 3, stats.TotalCars)
	assert.Equal(t, 2, stats.AvailableCars)
	assert.InDelta(t, 238790.0, stats.TotalValue, 0.001)
	assert.InDelta(t, 238790.0/3, stats.AveragePrice, 0.001)

	empty := ComputeCarStats(nil)
	assert.Zero(t, empty.TotalCars)
	assert.Zero(t, empty.AveragePrice)
}

func TestComputeBookingStats(t *testing.T) {
	stats := ComputeBookingStats(repository.SampleBookings())

	assert.Equal(t, 5, stats.TotalBookings)
	assert.Equal(t, 1, stats.PendingBookings)
	assert.InDelta(t, 6500.0, stats.TotalRevenue, 0.001)
	assert.Equal(t, 5, stats.UniqueCustomers)

	empty := ComputeBookingStats([]entity.Booking{})
	assert.Zero(t, empty.TotalBookings)
	assert.Zero(t, empty.TotalRevenue)
	assert.Zero(t, empty.UniqueCustomers)
}

func TestSummarizeCustomers(t *testing.T) {
	customers := repository.SampleCustomers()
	bookings := append(repository.SampleBookings(),
		entity.Booking{ID: "B006", Customer: "John Doe", Date: "2024-02-01", Amount: 300, Status: entity.BookingStatusConfirmed},
	)

	got := SummarizeCustomers(customers, bookings)
	require.Len(t, got, 5)

	assert.Equal(t, 2, got[0].TotalBookings)
	assert.InDelta(t, 1500.0, got[0].TotalSpent, 0.001)
	assert.Equal(t, "2024-02-01", got[0].LastBooking)

	// Charlie's only booking was cancelled
	assert.Equal(t, "Charlie Davis", got[4].Name)
	assert.Zero(t, got[4].TotalBookings)
	assert.Zero(t, got[4].TotalSpent)
	assert.Empty(t, got[4].LastBooking)
	assert.InDelta(t, 4.0, got[4].Rating, 0.001)
}
