package request

type ReplyRequest struct {
	Reply string `json:"reply" validate:"required,max=2000"`
}

type AssistantRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}
