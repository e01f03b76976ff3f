package usecase

import (
	"car-rental/internal/data/repository"
	"car-rental/pkg/metrics"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

// Deps are the optional upload backends; nil fields disable the upload route
type Deps struct {
	Storage   ObjectStorage
	Documents repository.CarDocumentRepository
	Metrics   *metrics.Metrics
}

type Service struct {
	Car       CarService
	Booking   BookingService
	Customer  CustomerService
	Message   MessageService
	Dashboard DashboardService
	Catalog   CatalogService
	Upload    UploadService
	Assistant AssistantService
	Carousel  *Carousel
}

func NewService(repo *repository.Repository, deps Deps, config *utils.Config, log *zap.Logger) *Service {
	carousel := NewCarousel(config.App.CarouselInterval, log)
	bookings := NewBookingService(repo.Booking, log)

	return &Service{
		Car:       NewCarService(repo.Car, log),
		Booking:   bookings,
		Customer:  NewCustomerService(repo.Customer, repo.Booking, log),
		Message:   NewMessageService(repo.Message, log),
		Dashboard: NewDashboardService(repo.Car, bookings, carousel, log),
		Catalog:   NewCatalogService(repo.Catalog, log),
		Upload:    NewUploadService(deps.Storage, deps.Documents, deps.Metrics, log),
		Assistant: NewAssistantService(log),
		Carousel:  carousel,
	}
}
