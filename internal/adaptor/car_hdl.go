package adaptor

import (
	"encoding/json"
	"net/http"

	"car-rental/internal/dto/request"
	"car-rental/internal/usecase"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

type CarHandler struct {
	service usecase.CarService
	log     *zap.Logger
}

func NewCarHandler(service usecase.CarService, log *zap.Logger) *CarHandler {
	return &CarHandler{
		service: service,
		log:     log.With(zap.String("handler", "car")),
	}
}

// ListCars handles GET /api/admin/cars?q=&status=
func (h *CarHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	cars, err := h.service.ListCars(r.Context(), request.ListQuery{
		Query:  query.Get("q"),
		Status: query.Get("status"),
	})
	if err != nil {
		handleServiceError(w, h.log, err, "list cars")
		return
	}

	utils.ResponseSuccess(w, "Cars retrieved successfully", cars)
}

// GetCar handles GET /api/admin/cars/{id}
func (h *CarHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		utils.ResponseBadRequest(w, "Invalid car ID", nil)
		return
	}

	car, err := h.service.GetCar(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get car")
		return
	}

	utils.ResponseSuccess(w, "Car retrieved successfully", car)
}

// CreateCar handles POST /api/admin/cars
func (h *CarHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var req request.CarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	car, err := h.service.CreateCar(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create car")
		return
	}

	utils.ResponseCreated(w, "Car created successfully", car)
}

// UpdateCar handles PUT /api/admin/cars/{id}
func (h *CarHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		utils.ResponseBadRequest(w, "Invalid car ID", nil)
		return
	}

	var req request.CarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	car, err := h.service.UpdateCar(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update car")
		return
	}

	utils.ResponseSuccess(w, "Car updated successfully", car)
}

// DeleteCar handles DELETE /api/admin/cars/{id}
func (h *CarHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		utils.ResponseBadRequest(w, "Invalid car ID", nil)
		return
	}

	if err := h.service.DeleteCar(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete car")
		return
	}

	utils.ResponseSuccess(w, "Car deleted successfully", nil)
}
