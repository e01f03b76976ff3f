package wire

import (
	"car-rental/internal/adaptor"
	"car-rental/pkg/middleware"
	"car-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	handler *adaptor.Handler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AdminToken(config.Admin.TokenHash, log))

		r.Get("/dashboard", handler.Dashboard.Overview)

		r.Route("/cars", func(r chi.Router) {
			r.Get("/", handler.Car.ListCars)
			r.Post("/", handler.Car.CreateCar)
			r.Get("/{id}", handler.Car.GetCar)
			r.Put("/{id}", handler.Car.UpdateCar)
			r.Delete("/{id}", handler.Car.DeleteCar)
		})

		r.Get("/bookings", handler.Booking.ListBookings)
		r.Get("/bookings/recent", handler.Booking.RecentBookings)

		r.Get("/customers", handler.Customer.ListCustomers)

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", handler.Message.ListMessages)
			r.Get("/{id}", handler.Message.GetMessage)
			r.Post("/{id}/reply", handler.Message.Reply)
			r.Post("/{id}/read", handler.Message.MarkRead)
		})
	})
}
