package response

import "car-rental/internal/data/entity"

type MessageResponse struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	IsRead    bool   `json:"isRead"`
}

type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	Unread   int               `json:"unread"`
}

func MessageToResponse(m entity.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Sender:    m.Sender,
		Content:   m.Content,
		Timestamp: m.Timestamp,
		IsRead:    m.IsRead,
	}
}

type AssistantResponse struct {
	Reply string `json:"reply"`
}
