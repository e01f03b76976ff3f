package adaptor

import (
	"net/http"

	"car-rental/internal/usecase"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// Search handles GET /api/cars/search?q=
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	cars, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, h.log, err, "search cars")
		return
	}

	utils.ResponseSuccess(w, "success", cars)
}

// Lookup handles GET /api/cars/lookup?q=
func (h *CatalogHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	car, err := h.service.Lookup(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, h.log, err, "lookup car")
		return
	}

	utils.ResponseSuccess(w, "success", car)
}
