package request

// CarRequest is the body of POST and PUT /api/admin/cars
type CarRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Type        string   `json:"type" validate:"max=100"`
	Images      []string `json:"images"`
	Price       float64  `json:"price" validate:"gte=0"`
	Location    string   `json:"location" validate:"max=200"`
	Features    []string `json:"features"`
	Status      string   `json:"status" validate:"max=50"`
	Description string   `json:"description"`
}

// UploadCarRequest holds the text fields of the upload form.
// Price stays raw so the service decides how blank or malformed input is treated.
type UploadCarRequest struct {
	Name     string
	Type     string
	Price    string
	Location string
	Features []string
	Status   string
}
