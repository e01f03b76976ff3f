package adaptor

import (
	"errors"
	"net/http"

	"car-rental/internal/dto/request"
	"car-rental/internal/dto/response"
	"car-rental/internal/usecase"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

const (
	imageField = "carImage"

	uploadFailedMessage = "Failed to upload car"
	invalidPriceMessage = "Invalid price"

	defaultMaxMemoryMB = 32
)

type UploadHandler struct {
	service   usecase.UploadService
	maxMemory int64
	log       *zap.Logger
}

func NewUploadHandler(service usecase.UploadService, maxMemoryMB int64, log *zap.Logger) *UploadHandler {
	if maxMemoryMB <= 0 {
		maxMemoryMB = defaultMaxMemoryMB
	}
	return &UploadHandler{
		service:   service,
		maxMemory: maxMemoryMB << 20,
		log:       log.With(zap.String("handler", "upload")),
	}
}

// UploadCar handles POST /api/uploadCar (multipart/form-data)
func (h *UploadHandler) UploadCar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxMemory); err != nil {
		h.log.Error("Error uploading car", zap.Error(err), zap.String("stage", "parse form"))
		utils.WriteJSON(w, http.StatusInternalServerError, response.ErrorResponse{Error: uploadFailedMessage})
		return
	}
	defer r.MultipartForm.RemoveAll()

	req := &request.UploadCarRequest{
		Name:     r.FormValue("name"),
		Type:     r.FormValue("type"),
		Price:    r.FormValue("price"),
		Location: r.FormValue("location"),
		Features: r.MultipartForm.Value["features"],
		Status:   r.FormValue("status"),
	}

	var image *usecase.UploadFile
	file, header, err := r.FormFile(imageField)
	switch {
	case err == nil:
		defer file.Close()
		image = &usecase.UploadFile{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Body:        file,
		}
	case !errors.Is(err, http.ErrMissingFile):
		h.log.Error("Error uploading car", zap.Error(err), zap.String("stage", "read image"))
		utils.WriteJSON(w, http.StatusInternalServerError, response.ErrorResponse{Error: uploadFailedMessage})
		return
	}

	resp, err := h.service.UploadCar(r.Context(), req, image)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidPrice) {
			h.log.Warn("Upload rejected", zap.Error(err))
			utils.WriteJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: invalidPriceMessage})
			return
		}
		h.log.Error("Error uploading car", zap.Error(err), zap.String("name", req.Name))
		utils.WriteJSON(w, http.StatusInternalServerError, response.ErrorResponse{Error: uploadFailedMessage})
		return
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}
