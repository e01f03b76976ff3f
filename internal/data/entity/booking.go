package entity

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// Booking references its customer and car by name only
type Booking struct {
	ID       string        `db:"id"`
	Customer string        `db:"customer"`
	Car      string        `db:"car"`
	Date     string        `db:"date"`
	Time     string        `db:"time"`
	Duration string        `db:"duration"`
	Amount   float64       `db:"amount"`
	Status   BookingStatus `db:"status"`
}
