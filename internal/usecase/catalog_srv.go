package usecase

import (
	"context"
	"fmt"

	"car-rental/internal/data/repository"
	"car-rental/internal/dto/response"

	"go.uber.org/zap"
)

// CatalogService backs the public landing-page search
type CatalogService interface {
	Search(ctx context.Context, query string) ([]response.CarResponse, error)
	Lookup(ctx context.Context, query string) (*response.CarResponse, error)
}

type catalogService struct {
	repo repository.CatalogRepository
	log  *zap.Logger
}

func NewCatalogService(repo repository.CatalogRepository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) Search(ctx context.Context, query string) ([]response.CarResponse, error) {
	cars, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("search catalog: %w", err)
	}
	return response.CarsToResponse(SearchCatalog(cars, query)), nil
}

// Lookup returns the first car whose name contains query
func (s *catalogService) Lookup(ctx context.Context, query string) (*response.CarResponse, error) {
	cars, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("lookup catalog: %w", err)
	}

	car, ok := FindCatalogCar(cars, query)
	if !ok {
		s.log.Debug("No catalog car matched", zap.String("query", query))
		return nil, fmt.Errorf("car matching %q: %w", query, ErrNotFound)
	}

	resp := response.CarToResponse(car)
	return &resp, nil
}
