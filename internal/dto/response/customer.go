package response

type CustomerResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	TotalBookings int     `json:"totalBookings"`
	TotalSpent    float64 `json:"totalSpent"`
	LastBooking   string  `json:"lastBooking"`
	Rating        float64 `json:"rating"`
}
