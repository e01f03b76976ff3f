package wire

import (
	"car-rental/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUpload(r chi.Router, uploadHandler *adaptor.UploadHandler) {
	// POST /api/uploadCar - multipart form with the carImage file
	r.Post("/api/uploadCar", uploadHandler.UploadCar)
}
