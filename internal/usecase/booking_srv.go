package usecase

import (
	"context"
	"fmt"

	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"
	"car-rental/internal/dto/response"

	"go.uber.org/zap"
)

// RecentBookingsLimit is how many bookings the dashboard shows
const RecentBookingsLimit = 5

type BookingService interface {
	ListBookings(ctx context.Context, q request.ListQuery) (*response.BookingListResponse, error)
	RecentBookings(ctx context.Context, limit int) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo repository.BookingRepository
	log  *zap.Logger
}

func NewBookingService(repo repository.BookingRepository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) ListBookings(ctx context.Context, q request.ListQuery) (*response.BookingListResponse, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	filtered := FilterBookings(bookings, q)

	return &response.BookingListResponse{
		Bookings: response.BookingsToResponse(filtered),
		Stats:    ComputeBookingStats(filtered),
	}, nil
}

// RecentBookings returns the first limit bookings in stored order
func (s *bookingService) RecentBookings(ctx context.Context, limit int) ([]response.BookingResponse, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("recent bookings: %w", err)
	}

	if limit >= 0 && len(bookings) > limit {
		bookings = bookings[:limit]
	}

	return response.BookingsToResponse(bookings), nil
}
