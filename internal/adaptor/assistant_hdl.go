package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"car-rental/internal/dto/request"
	"car-rental/internal/dto/response"
	"car-rental/internal/usecase"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

type AssistantHandler struct {
	service usecase.AssistantService
	log     *zap.Logger
}

func NewAssistantHandler(service usecase.AssistantService, log *zap.Logger) *AssistantHandler {
	return &AssistantHandler{
		service: service,
		log:     log.With(zap.String("handler", "assistant")),
	}
}

// Ask handles POST /api/assistant
func (h *AssistantHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req request.AssistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: "Invalid request body"})
		return
	}

	reply, err := h.service.Ask(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			utils.WriteJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: "Message is required"})
			return
		}
		h.log.Error("Failed to answer message", zap.Error(err))
		utils.WriteJSON(w, http.StatusInternalServerError, response.ErrorResponse{Error: "Internal server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, reply)
}
