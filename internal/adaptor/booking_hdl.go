package adaptor

import (
	"net/http"

	"car-rental/internal/dto/request"
	"car-rental/internal/usecase"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// ListBookings handles GET /api/admin/bookings?q=&status=
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	bookings, err := h.service.ListBookings(r.Context(), request.ListQuery{
		Query:  query.Get("q"),
		Status: query.Get("status"),
	})
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved successfully", bookings)
}

// RecentBookings handles GET /api/admin/bookings/recent?limit=
func (h *BookingHandler) RecentBookings(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), usecase.RecentBookingsLimit)

	bookings, err := h.service.RecentBookings(r.Context(), limit)
	if err != nil {
		handleServiceError(w, h.log, err, "recent bookings")
		return
	}

	utils.ResponseSuccess(w, "Recent bookings retrieved successfully", bookings)
}
