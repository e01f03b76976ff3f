package usecase

import (
	"strings"

	"car-rental/internal/data/entity"
	"car-rental/internal/dto/request"
	"car-rental/internal/dto/response"
	"car-rental/pkg/utils"
)

// FilterCars matches name, type or any feature, plus an optional exact status
func FilterCars(cars []entity.Car, q request.ListQuery) []entity.Car {
	return utils.Filter(cars, func(car entity.Car) bool {
		if q.HasStatus() && car.Status != q.Status {
			return false
		}
		if utils.MatchAny(q.Query, car.Name, car.Type) {
			return true
		}
		for _, feature := range car.Features {
			if utils.ContainsFold(feature, q.Query) {
				return true
			}
		}
		return false
	})
}

// SearchCatalog is the landing-page search: name or type
func SearchCatalog(cars []entity.Car, query string) []entity.Car {
	return utils.Filter(cars, func(car entity.Car) bool {
		return utils.MatchAny(query, car.Name, car.Type)
	})
}

// FindCatalogCar returns the first car whose name contains query
func FindCatalogCar(cars []entity.Car, query string) (entity.Car, bool) {
	for _, car := range cars {
		if utils.ContainsFold(car.Name, query) {
			return car, true
		}
	}
	return entity.Car{}, false
}

// FilterBookings matches customer, car or id, plus an optional exact status
func FilterBookings(bookings []entity.Booking, q request.ListQuery) []entity.Booking {
	return utils.Filter(bookings, func(b entity.Booking) bool {
		if q.HasStatus() && string(b.Status) != q.Status {
			return false
		}
		return utils.MatchAny(q.Query, b.Customer, b.Car, b.ID)
	})
}

// FilterCustomers matches name and email ignoring case, phone as typed
func FilterCustomers(customers []entity.Customer, query string) []entity.Customer {
	return utils.Filter(customers, func(c entity.Customer) bool {
		return utils.MatchAny(query, c.Name, c.Email) || strings.Contains(c.Phone, query)
	})
}

func FilterMessages(messages []entity.Message, query string) []entity.Message {
	return utils.Filter(messages, func(m entity.Message) bool {
		return utils.MatchAny(query, m.Sender, m.Content)
	})
}

func ComputeCarStats(cars []entity.Car) response.CarStats {
	total := utils.SumBy(cars, func(c entity.Car) float64 { return c.Price })
	return response.CarStats{
		TotalCars:     len(cars),
		AvailableCars: utils.CountBy(cars, func(c entity.Car) bool { return c.Status == entity.CarStatusAvailable }),
		TotalValue:    total,
		AveragePrice:  utils.SafeAverage(total, len(cars)),
	}
}

func ComputeBookingStats(bookings []entity.Booking) response.BookingStats {
	return response.BookingStats{
		TotalBookings: len(bookings),
		PendingBookings: utils.CountBy(bookings, func(b entity.Booking) bool {
			return b.Status == entity.BookingStatusPending
		}),
		TotalRevenue:    utils.SumBy(bookings, func(b entity.Booking) float64 { return b.Amount }),
		UniqueCustomers: utils.CountDistinct(bookings, func(b entity.Booking) string { return b.Customer }),
	}
}

// SummarizeCustomers recomputes totalBookings, totalSpent and lastBooking from
// bookings, matched by customer name. Cancelled bookings do not count.
func SummarizeCustomers(customers []entity.Customer, bookings []entity.Booking) []response.CustomerResponse {
	type summary struct {
		count int
		spent float64
		last  string
	}

	byName := make(map[string]*summary)
	for _, b := range bookings {
		if b.Status == entity.BookingStatusCancelled {
			continue
		}
		s, ok := byName[b.Customer]
		if !ok {
			s = &summary{}
			byName[b.Customer] = s
		}
		s.count++
		s.spent += b.Amount
		// dates are YYYY-MM-DD, so string order is date order
		if b.Date > s.last {
			s.last = b.Date
		}
	}

	out := make([]response.CustomerResponse, len(customers))
	for i, c := range customers {
		out[i] = response.CustomerResponse{
			ID:     c.ID,
			Name:   c.Name,
			Email:  c.Email,
			Phone:  c.Phone,
			Rating: c.Rating,
		}
		if s, ok := byName[c.Name]; ok {
			out[i].TotalBookings = s.count
			out[i].TotalSpent = s.spent
			out[i].LastBooking = s.last
		}
	}
	return out
}
