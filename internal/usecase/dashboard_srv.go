package usecase

import (
	"context"
	"fmt"

	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"
	"car-rental/internal/dto/response"

	"go.uber.org/zap"
)

type DashboardService interface {
	Overview(ctx context.Context, query string) (*response.DashboardResponse, error)
}

type dashboardService struct {
	cars     repository.CarRepository
	bookings BookingService
	carousel *Carousel
	log      *zap.Logger
}

func NewDashboardService(cars repository.CarRepository, bookings BookingService, carousel *Carousel, log *zap.Logger) DashboardService {
	return &dashboardService{
		cars:     cars,
		bookings: bookings,
		carousel: carousel,
		log:      log.With(zap.String("service", "dashboard")),
	}
}

// Overview reports stats over the whole inventory, the featured car among
// the cars matching query and the most recent bookings.
func (s *dashboardService) Overview(ctx context.Context, query string) (*response.DashboardResponse, error) {
	cars, err := s.cars.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard cars: %w", err)
	}

	recent, err := s.bookings.RecentBookings(ctx, RecentBookingsLimit)
	if err != nil {
		return nil, err
	}

	resp := &response.DashboardResponse{
		Stats:          ComputeCarStats(cars),
		RecentBookings: recent,
	}

	filtered := FilterCars(cars, request.ListQuery{Query: query})
	if car, ok := Featured(s.carousel, filtered); ok {
		featured := response.CarToResponse(car)
		resp.FeaturedCar = &featured
	}

	return resp, nil
}
