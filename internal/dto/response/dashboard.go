package response

type DashboardResponse struct {
	Stats          CarStats          `json:"stats"`
	FeaturedCar    *CarResponse      `json:"featuredCar"`
	RecentBookings []BookingResponse `json:"recentBookings"`
}
