package entity

// Customer keeps the stored summary figures; readers recompute them from bookings
type Customer struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	Email         string  `db:"email"`
	Phone         string  `db:"phone"`
	TotalBookings int     `db:"total_bookings"`
	TotalSpent    float64 `db:"total_spent"`
	LastBooking   string  `db:"last_booking"`
	Rating        float64 `db:"rating"`
}
