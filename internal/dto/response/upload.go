package response

// UploadResult mirrors the insert acknowledgement of the document store
type UploadResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type UploadCarResponse struct {
	Message string       `json:"message"`
	Data    UploadResult `json:"data"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
