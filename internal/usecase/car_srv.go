package usecase

import (
	"context"
	"errors"
	"fmt"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"
	"car-rental/internal/dto/response"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

type CarService interface {
	ListCars(ctx context.Context, q request.ListQuery) (*response.CarListResponse, error)
	GetCar(ctx context.Context, id int64) (*response.CarResponse, error)
	CreateCar(ctx context.Context, req *request.CarRequest) (*response.CarResponse, error)
	UpdateCar(ctx context.Context, id int64, req *request.CarRequest) (*response.CarResponse, error)
	DeleteCar(ctx context.Context, id int64) error
}

type carService struct {
	repo repository.CarRepository
	log  *zap.Logger
}

func NewCarService(repo repository.CarRepository, log *zap.Logger) CarService {
	return &carService{
		repo: repo,
		log:  log.With(zap.String("service", "car")),
	}
}

func (s *carService) ListCars(ctx context.Context, q request.ListQuery) (*response.CarListResponse, error) {
	cars, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}

	filtered := FilterCars(cars, q)

	s.log.Debug("Cars filtered",
		zap.String("query", q.Query),
		zap.String("status", q.Status),
		zap.Int("total", len(cars)),
		zap.Int("matched", len(filtered)),
	)

	return &response.CarListResponse{
		Cars:  response.CarsToResponse(filtered),
		Stats: ComputeCarStats(filtered),
	}, nil
}

func (s *carService) GetCar(ctx context.Context, id int64) (*response.CarResponse, error) {
	car, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get car: %w", err)
	}
	if car == nil {
		return nil, fmt.Errorf("car %d: %w", id, ErrNotFound)
	}

	resp := response.CarToResponse(*car)
	return &resp, nil
}

func (s *carService) CreateCar(ctx context.Context, req *request.CarRequest) (*response.CarResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create car validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	car := carFromRequest(req)
	if car.Status == "" {
		car.Status = entity.CarStatusAvailable
	}

	if err := s.repo.Create(ctx, &car); err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}

	s.log.Info("Car created",
		zap.Int64("car_id", car.ID),
		zap.String("name", car.Name),
	)

	resp := response.CarToResponse(car)
	return &resp, nil
}

func (s *carService) UpdateCar(ctx context.Context, id int64, req *request.CarRequest) (*response.CarResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update car validation failed", zap.Any("errors", errs), zap.Int64("car_id", id))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	car := carFromRequest(req)
	car.ID = id

	if err := s.repo.Update(ctx, &car); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("car %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("update car: %w", err)
	}

	s.log.Info("Car updated", zap.Int64("car_id", id))

	resp := response.CarToResponse(car)
	return &resp, nil
}

func (s *carService) DeleteCar(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("car %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("delete car: %w", err)
	}

	s.log.Info("Car deleted", zap.Int64("car_id", id))
	return nil
}

// carFromRequest normalizes features and caps the gallery
func carFromRequest(req *request.CarRequest) entity.Car {
	car := entity.Car{
		Name:        req.Name,
		Type:        req.Type,
		Images:      append([]string{}, req.Images...),
		Price:       req.Price,
		Location:    req.Location,
		Features:    utils.SplitFeatures(req.Features...),
		Status:      req.Status,
		Description: req.Description,
	}
	car.CapImages()
	return car
}
