package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"
	"car-rental/internal/dto/response"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

type MessageService interface {
	ListMessages(ctx context.Context, query string) (*response.MessageListResponse, error)
	GetMessage(ctx context.Context, id string) (*response.MessageResponse, error)
	Reply(ctx context.Context, id string, req *request.ReplyRequest) (*response.MessageResponse, error)
	MarkRead(ctx context.Context, id string) (*response.MessageResponse, error)
}

type messageService struct {
	repo repository.MessageRepository
	log  *zap.Logger
}

func NewMessageService(repo repository.MessageRepository, log *zap.Logger) MessageService {
	return &messageService{
		repo: repo,
		log:  log.With(zap.String("service", "message")),
	}
}

func (s *messageService) ListMessages(ctx context.Context, query string) (*response.MessageListResponse, error) {
	messages, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	filtered := FilterMessages(messages, query)

	out := make([]response.MessageResponse, len(filtered))
	for i, m := range filtered {
		out[i] = response.MessageToResponse(m)
	}

	return &response.MessageListResponse{
		Messages: out,
		Unread:   utils.CountBy(filtered, func(m entity.Message) bool { return !m.IsRead }),
	}, nil
}

func (s *messageService) GetMessage(ctx context.Context, id string) (*response.MessageResponse, error) {
	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}
	if msg == nil {
		return nil, fmt.Errorf("message %s: %w", id, ErrNotFound)
	}

	resp := response.MessageToResponse(*msg)
	return &resp, nil
}

// Reply appends the reply to the message content. Blank replies are rejected.
func (s *messageService) Reply(ctx context.Context, id string, req *request.ReplyRequest) (*response.MessageResponse, error) {
	req.Reply = strings.TrimSpace(req.Reply)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	msg, err := s.repo.AppendReply(ctx, id, req.Reply)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("message %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("reply to message: %w", err)
	}

	s.log.Info("Message replied", zap.String("message_id", id), zap.String("sender", msg.Sender))

	resp := response.MessageToResponse(*msg)
	return &resp, nil
}

func (s *messageService) MarkRead(ctx context.Context, id string) (*response.MessageResponse, error) {
	msg, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("message %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("mark message read: %w", err)
	}

	resp := response.MessageToResponse(*msg)
	return &resp, nil
}
