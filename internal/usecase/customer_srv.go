package usecase

import (
	"context"
	"fmt"

	"car-rental/internal/data/repository"
	"car-rental/internal/dto/response"

	"go.uber.org/zap"
)

type CustomerService interface {
	ListCustomers(ctx context.Context, query string) ([]response.CustomerResponse, error)
}

type customerService struct {
	customers repository.CustomerRepository
	bookings  repository.BookingRepository
	log       *zap.Logger
}

func NewCustomerService(customers repository.CustomerRepository, bookings repository.BookingRepository, log *zap.Logger) CustomerService {
	return &customerService{
		customers: customers,
		bookings:  bookings,
		log:       log.With(zap.String("service", "customer")),
	}
}

// ListCustomers filters customers and fills their figures from the booking records
func (s *customerService) ListCustomers(ctx context.Context, query string) ([]response.CustomerResponse, error) {
	customers, err := s.customers.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	bookings, err := s.bookings.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings for customers: %w", err)
	}

	return SummarizeCustomers(FilterCustomers(customers, query), bookings), nil
}
