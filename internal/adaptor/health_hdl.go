package adaptor

import (
	"fmt"
	"net/http"
	"time"

	"car-rental/internal/dto/response"
	"car-rental/pkg/utils"
)

const (
	HealthMessage = "Test route is working!"

	// timestampLayout is RFC 3339 in UTC with milliseconds
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

type HealthHandler struct {
	now func() time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

// Test handles /api/test. Only GET is served.
func (h *HealthHandler) Test(w http.ResponseWriter, r *http.Request) {
	resp := response.HealthResponse{
		Message:   HealthMessage,
		Timestamp: h.now().UTC().Format(timestampLayout),
	}

	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		resp.Message = fmt.Sprintf("Method %s Not Allowed", r.Method)
		utils.WriteJSON(w, http.StatusMethodNotAllowed, resp)
		return
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}
