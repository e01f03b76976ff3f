package usecase

import (
	"context"
	"fmt"
	"strings"

	"car-rental/internal/dto/request"
	"car-rental/internal/dto/response"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

const AssistantReply = "Thank you for your message. How can I assist you with our car services today?"

// AssistantService answers chat messages from the landing page
type AssistantService interface {
	Ask(ctx context.Context, req *request.AssistantRequest) (*response.AssistantResponse, error)
}

type assistantService struct {
	log *zap.Logger
}

func NewAssistantService(log *zap.Logger) AssistantService {
	return &assistantService{log: log.With(zap.String("service", "assistant"))}
}

func (s *assistantService) Ask(_ context.Context, req *request.AssistantRequest) (*response.AssistantResponse, error) {
	req.Message = strings.TrimSpace(req.Message)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	s.log.Debug("Assistant message received", zap.Int("length", len(req.Message)))

	return &response.AssistantResponse{Reply: AssistantReply}, nil
}
