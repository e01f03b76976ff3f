package response

import "car-rental/internal/data/entity"

type CarResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Images      []string `json:"images"`
	Price       float64  `json:"price"`
	Location    string   `json:"location"`
	Features    []string `json:"features"`
	Status      string   `json:"status"`
	Description string   `json:"description"`
}

// CarStats are the dashboard figures over a set of cars
type CarStats struct {
	TotalCars     int     `json:"totalCars"`
	AvailableCars int     `json:"availableCars"`
	TotalValue    float64 `json:"totalValue"`
	AveragePrice  float64 `json:"averagePrice"`
}

type CarListResponse struct {
	Cars  []CarResponse `json:"cars"`
	Stats CarStats      `json:"stats"`
}

func CarToResponse(car entity.Car) CarResponse {
	images := car.Images
	if images == nil {
		images = []string{}
	}
	features := car.Features
	if features == nil {
		features = []string{}
	}

	return CarResponse{
		ID:          car.ID,
		Name:        car.Name,
		Type:        car.Type,
		Images:      images,
		Price:       car.Price,
		Location:    car.Location,
		Features:    features,
		Status:      car.Status,
		Description: car.Description,
	}
}

func CarsToResponse(cars []entity.Car) []CarResponse {
	out := make([]CarResponse, len(cars))
	for i, car := range cars {
		out[i] = CarToResponse(car)
	}
	return out
}
