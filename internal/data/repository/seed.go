package repository

import "car-rental/internal/data/entity"

// SampleSeed is the demo data set the dashboard starts with in memory mode
func SampleSeed() Seed {
	return Seed{
		Cars:      SampleCars(),
		Catalog:   SampleCatalog(),
		Bookings:  SampleBookings(),
		Customers: SampleCustomers(),
		Messages:  SampleMessages(),
	}
}

func SampleCars() []entity.Car {
	return []entity.Car{
		{
			ID:          1,
			Name:        "Volvo EX30",
			Type:        "Electric Crossover",
			Images:      []string{"/placeholder.svg"},
			Price:       45000,
			Location:    "Los Angeles",
			Features:    []string{"Fully Electric", "Autopilot", "360° Camera"},
			Status:      entity.CarStatusAvailable,
			Description: "The Volvo EX30 is a compact electric crossover with advanced features.",
		},
		{
			ID:          2,
			Name:        "Tesla Model S",
			Type:        "Electric Sedan",
			Images:      []string{"/placeholder.svg"},
			Price:       89990,
			Location:    "San Francisco",
			Features:    []string{"Ludicrous Mode", "Full Self-Driving", "Premium Interior"},
			Status:      "On Order",
			Description: "The Tesla Model S is a premium electric sedan with cutting-edge technology.",
		},
		{
			ID:          3,
			Name:        "Porsche Taycan",
			Type:        "Electric Sports Car",
			Images:      []string{"/placeholder.svg"},
			Price:       103800,
			Location:    "New York",
			Features:    []string{"800V Architecture", "Performance Battery Plus", "Adaptive Air Suspension"},
			Status:      entity.CarStatusAvailable,
			Description: "The Porsche Taycan is a high-performance electric sports car with exceptional handling.",
		},
	}
}

// SampleCatalog is the public landing-page line-up
func SampleCatalog() []entity.Car {
	return []entity.Car{
		{ID: 1, Name: "Volvo EX30", Type: "Electric Crossover", Images: []string{"/placeholder.svg"}, Price: 45000, Location: "Los Angeles",
			Features: []string{"Fully Electric", "Autopilot", "360° Camera"}, Status: entity.CarStatusAvailable},
		{ID: 2, Name: "Tesla Model S", Type: "Electric Sedan", Images: []string{"/placeholder.svg"}, Price: 89990, Location: "San Francisco",
			Features: []string{"Ludicrous Mode", "Full Self-Driving", "Premium Interior"}, Status: entity.CarStatusAvailable},
		{ID: 3, Name: "Porsche Taycan", Type: "Electric Sports Car", Images: []string{"/placeholder.svg"}, Price: 103800, Location: "New York",
			Features: []string{"800V Architecture", "Performance Battery Plus", "Adaptive Air Suspension"}, Status: entity.CarStatusAvailable},
		{ID: 4, Name: "BMW iX", Type: "Electric SUV", Images: []string{"/placeholder.svg"}, Price: 84100, Location: "Chicago",
			Features: []string{"iDrive 8", "Panoramic Sky Lounge LED Roof", "Harman Kardon Surround Sound"}, Status: entity.CarStatusAvailable},
		{ID: 5, Name: "Audi e-tron GT", Type: "Electric Sports Sedan", Images: []string{"/placeholder.svg"}, Price: 102400, Location: "Miami",
			Features: []string{"Quattro All-Wheel Drive", "Boost Mode", "Matrix LED Headlights"}, Status: entity.CarStatusAvailable},
	}
}

func SampleBookings() []entity.Booking {
	return []entity.Booking{
		{ID: "B001", Customer: "John Doe", Car: "Tesla Model S", Date: "2024-01-20", Time: "10:00 AM", Duration: "3 days", Amount: 1200, Status: entity.BookingStatusCompleted},
		{ID: "B002", Customer: "Jane Smith", Car: "Porsche Taycan", Date: "2024-01-21", Time: "2:00 PM", Duration: "2 days", Amount: 1500, Status: entity.BookingStatusConfirmed},
		{ID: "B003", Customer: "Alice Johnson", Car: "BMW iX", Date: "2024-01-22", Time: "9:00 AM", Duration: "1 day", Amount: 800, Status: entity.BookingStatusPending},
		{ID: "B004", Customer: "Bob Brown", Car: "Audi e-tron GT", Date: "2024-01-23", Time: "11:00 AM", Duration: "4 days", Amount: 2000, Status: entity.BookingStatusConfirmed},
		{ID: "B005", Customer: "Charlie Davis", Car: "Volvo EX30", Date: "2024-01-24", Time: "3:00 PM", Duration: "2 days", Amount: 1000, Status: entity.BookingStatusCancelled},
	}
}

func SampleCustomers() []entity.Customer {
	return []entity.Customer{
		{ID: "C001", Name: "John Doe", Email: "john@example.com", Phone: "(555) 123-4567", TotalBookings: 5, TotalSpent: 5000, LastBooking: "2024-01-20", Rating: 4.8},
		{ID: "C002", Name: "Jane Smith", Email: "jane@example.com", Phone: "(555) 987-6543", TotalBookings: 3, TotalSpent: 3500, LastBooking: "2024-01-18", Rating: 4.5},
		{ID: "C003", Name: "Alice Johnson", Email: "alice@example.com", Phone: "(555) 246-8135", TotalBookings: 2, TotalSpent: 2000, LastBooking: "2024-01-15", Rating: 4.2},
		{ID: "C004", Name: "Bob Brown", Email: "bob@example.com", Phone: "(555) 369-2580", TotalBookings: 4, TotalSpent: 4500, LastBooking: "2024-01-22", Rating: 4.7},
		{ID: "C005", Name: "Charlie Davis", Email: "charlie@example.com", Phone: "(555) 159-7531", TotalBookings: 1, TotalSpent: 1000, LastBooking: "2024-01-10", Rating: 4.0},
	}
}

func SampleMessages() []entity.Message {
	return []entity.Message{
		{ID: "M001", Sender: "John Doe", Content: "Hello, I have a question about my booking.", Timestamp: "2024-01-20 10:30 AM", IsRead: false},
		{ID: "M002", Sender: "Jane Smith", Content: "Can I extend my rental period?", Timestamp: "2024-01-20 11:45 AM", IsRead: true},
		{ID: "M003", Sender: "Alice Johnson", Content: "I need to change my pickup location.", Timestamp: "2024-01-20 2:15 PM", IsRead: false},
		{ID: "M004", Sender: "Bob Brown", Content: "Is there an additional fee for returning the car late?", Timestamp: "2024-01-20 4:00 PM", IsRead: true},
		{ID: "M005", Sender: "Charlie Davis", Content: "I forgot an item in the rental car. Can you help?", Timestamp: "2024-01-20 5:30 PM", IsRead: false},
	}
}
