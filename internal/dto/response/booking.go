package response

import "car-rental/internal/data/entity"

type BookingResponse struct {
	ID       string  `json:"id"`
	Customer string  `json:"customer"`
	Car      string  `json:"car"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Duration string  `json:"duration"`
	Amount   float64 `json:"amount"`
	Status   string  `json:"status"`
}

// BookingStats are computed over the filtered bookings
type BookingStats struct {
	TotalBookings   int     `json:"totalBookings"`
	PendingBookings int     `json:"pendingBookings"`
	TotalRevenue    float64 `json:"totalRevenue"`
	UniqueCustomers int     `json:"uniqueCustomers"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Stats    BookingStats      `json:"stats"`
}

func BookingToResponse(b entity.Booking) BookingResponse {
	return BookingResponse{
		ID:       b.ID,
		Customer: b.Customer,
		Car:      b.Car,
		Date:     b.Date,
		Time:     b.Time,
		Duration: b.Duration,
		Amount:   b.Amount,
		Status:   string(b.Status),
	}
}

func BookingsToResponse(bookings []entity.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = BookingToResponse(b)
	}
	return out
}
