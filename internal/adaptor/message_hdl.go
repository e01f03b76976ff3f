package adaptor

import (
	"encoding/json"
	"net/http"

	"car-rental/internal/dto/request"
	"car-rental/internal/usecase"
	"car-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MessageHandler struct {
	service usecase.MessageService
	log     *zap.Logger
}

func NewMessageHandler(service usecase.MessageService, log *zap.Logger) *MessageHandler {
	return &MessageHandler{
		service: service,
		log:     log.With(zap.String("handler", "message")),
	}
}

// ListMessages handles GET /api/admin/messages?q=
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.ListMessages(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, h.log, err, "list messages")
		return
	}

	utils.ResponseSuccess(w, "Messages retrieved successfully", messages)
}

// GetMessage handles GET /api/admin/messages/{id}
func (h *MessageHandler) GetMessage(w http.ResponseWriter, r *http.Request) {
	msg, err := h.service.GetMessage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get message")
		return
	}

	utils.ResponseSuccess(w, "Message retrieved successfully", msg)
}

// Reply handles POST /api/admin/messages/{id}/reply
func (h *MessageHandler) Reply(w http.ResponseWriter, r *http.Request) {
	var req request.ReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	msg, err := h.service.Reply(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "reply to message")
		return
	}

	utils.ResponseSuccess(w, "Reply sent successfully", msg)
}

// MarkRead handles POST /api/admin/messages/{id}/read
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	msg, err := h.service.MarkRead(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "mark message read")
		return
	}

	utils.ResponseSuccess(w, "Message marked as read", msg)
}
