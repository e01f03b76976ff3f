package wire

import (
	"car-rental/internal/adaptor"
	"car-rental/internal/usecase"
	"car-rental/pkg/metrics"
	"car-rental/pkg/middleware"
	"car-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the router and the services that run beside it
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and routes. m may be nil when metrics are disabled.
func Wiring(service *usecase.Service, config *utils.Config, m *metrics.Metrics, logger *zap.Logger) *App {
	handler := adaptor.NewHandler(service, config, logger)

	return &App{
		Router:  setupRouter(handler, config, m, logger),
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	m *metrics.Metrics,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	if m != nil {
		r.Use(middleware.Metrics(m))
		path := config.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	}

	wirePublic(r, handler)
	wireUpload(r, handler.Upload)
	wireAdmin(r, handler, config, logger)

	return r
}
