package adaptor

import (
	"errors"
	"net/http"
	"strconv"

	"car-rental/internal/usecase"
	"car-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Car       *CarHandler
	Booking   *BookingHandler
	Customer  *CustomerHandler
	Message   *MessageHandler
	Dashboard *DashboardHandler
	Catalog   *CatalogHandler
	Upload    *UploadHandler
	Health    *HealthHandler
	Assistant *AssistantHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Car:       NewCarHandler(service.Car, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Customer:  NewCustomerHandler(service.Customer, log),
		Message:   NewMessageHandler(service.Message, log),
		Dashboard: NewDashboardHandler(service.Dashboard, log),
		Catalog:   NewCatalogHandler(service.Catalog, log),
		Upload:    NewUploadHandler(service.Upload, config.Upload.MaxMemoryMB, log),
		Health:    NewHealthHandler(),
		Assistant: NewAssistantHandler(service.Assistant, log),
	}
}

// handleServiceError maps usecase errors to envelope responses
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
