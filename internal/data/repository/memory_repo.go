package repository

import (
	"context"
	"sync"

	"car-rental/internal/data/entity"

	"go.uber.org/zap"
)

type memoryCarRepository struct {
	mu     sync.RWMutex
	cars   []entity.Car
	nextID int64
	log    *zap.Logger
}

func NewMemoryCarRepository(seed []entity.Car, log *zap.Logger) CarRepository {
	r := &memoryCarRepository{
		cars:   make([]entity.Car, 0, len(seed)),
		nextID: 1,
		log:    log.With(zap.String("repository", "memory_car")),
	}
	for _, car := range seed {
		r.cars = append(r.cars, car.Clone())
		if car.ID >= r.nextID {
			r.nextID = car.ID + 1
		}
	}
	return r
}

func (r *memoryCarRepository) FindAll(_ context.Context) ([]entity.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cars := make([]entity.Car, len(r.cars))
	for i, car := range r.cars {
		cars[i] = car.Clone()
	}
	return cars, nil
}

func (r *memoryCarRepository) FindByID(_ context.Context, id int64) (*entity.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		car := r.cars[i].Clone()
		return &car, nil
	}
	return nil, nil
}

func (r *memoryCarRepository) Create(_ context.Context, car *entity.Car) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	car.ID = r.nextID
	r.nextID++
	r.cars = append(r.cars, car.Clone())

	r.log.Debug("Car created", zap.Int64("car_id", car.ID))
	return nil
}

func (r *memoryCarRepository) Update(_ context.Context, car *entity.Car) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(car.ID)
	if i < 0 {
		return ErrNotFound
	}
	r.cars[i] = car.Clone()
	return nil
}

func (r *memoryCarRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	r.cars = append(r.cars[:i], r.cars[i+1:]...)

	r.log.Debug("Car deleted", zap.Int64("car_id", id))
	return nil
}

// indexOf expects the lock to be held
func (r *memoryCarRepository) indexOf(id int64) int {
	for i := range r.cars {
		if r.cars[i].ID == id {
			return i
		}
	}
	return -1
}

type memoryBookingRepository struct {
	bookings []entity.Booking
}

// NewMemoryBookingRepository holds a read-only copy of seed
func NewMemoryBookingRepository(seed []entity.Booking) BookingRepository {
	return &memoryBookingRepository{bookings: append([]entity.Booking{}, seed...)}
}

func (r *memoryBookingRepository) FindAll(_ context.Context) ([]entity.Booking, error) {
	return append([]entity.Booking{}, r.bookings...), nil
}

type memoryCustomerRepository struct {
	customers []entity.Customer
}

func NewMemoryCustomerRepository(seed []entity.Customer) CustomerRepository {
	return &memoryCustomerRepository{customers: append([]entity.Customer{}, seed...)}
}

func (r *memoryCustomerRepository) FindAll(_ context.Context) ([]entity.Customer, error) {
	return append([]entity.Customer{}, r.customers...), nil
}

type memoryMessageRepository struct {
	mu       sync.RWMutex
	messages []entity.Message
	log      *zap.Logger
}

func NewMemoryMessageRepository(seed []entity.Message, log *zap.Logger) MessageRepository {
	return &memoryMessageRepository{
		messages: append([]entity.Message{}, seed...),
		log:      log.With(zap.String("repository", "memory_message")),
	}
}

func (r *memoryMessageRepository) FindAll(_ context.Context) ([]entity.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]entity.Message{}, r.messages...), nil
}

func (r *memoryMessageRepository) FindByID(_ context.Context, id string) (*entity.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.messages {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, nil
}

func (r *memoryMessageRepository) AppendReply(_ context.Context, id, reply string) (*entity.Message, error) {
	return r.modify(id, func(m *entity.Message) {
		m.Content += entity.ReplySeparator + reply
	})
}

func (r *memoryMessageRepository) MarkRead(_ context.Context, id string) (*entity.Message, error) {
	return r.modify(id, func(m *entity.Message) {
		m.IsRead = true
	})
}

func (r *memoryMessageRepository) modify(id string, fn func(*entity.Message)) (*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.messages {
		if r.messages[i].ID == id {
			fn(&r.messages[i])
			m := r.messages[i]
			return &m, nil
		}
	}
	return nil, ErrNotFound
}
