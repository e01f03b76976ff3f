package repository

import (
	"context"
	"errors"

	"car-rental/internal/data/entity"
	"car-rental/pkg/database"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

// ErrNotFound is returned by writes that target a missing row
var ErrNotFound = errors.New("repository: record not found")

// psql builds Postgres statements with $n placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type CarRepository interface {
	FindAll(ctx context.Context) ([]entity.Car, error)
	FindByID(ctx context.Context, id int64) (*entity.Car, error)
	Create(ctx context.Context, car *entity.Car) error
	Update(ctx context.Context, car *entity.Car) error
	Delete(ctx context.Context, id int64) error
}

// CatalogRepository serves the public landing-page listing
type CatalogRepository interface {
	FindAll(ctx context.Context) ([]entity.Car, error)
}

type BookingRepository interface {
	FindAll(ctx context.Context) ([]entity.Booking, error)
}

type CustomerRepository interface {
	FindAll(ctx context.Context) ([]entity.Customer, error)
}

type MessageRepository interface {
	FindAll(ctx context.Context) ([]entity.Message, error)
	FindByID(ctx context.Context, id string) (*entity.Message, error)
	AppendReply(ctx context.Context, id, reply string) (*entity.Message, error)
	MarkRead(ctx context.Context, id string) (*entity.Message, error)
}

type Repository struct {
	Car      CarRepository
	Catalog  CatalogRepository
	Booking  BookingRepository
	Customer CustomerRepository
	Message  MessageRepository
}

// NewRepository returns Postgres-backed repositories. The landing catalogue
// reads the same cars table as the inventory.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	cars := NewCarRepository(db, log)
	return &Repository{
		Car:      cars,
		Catalog:  cars,
		Booking:  NewBookingRepository(db, log),
		Customer: NewCustomerRepository(db, log),
		Message:  NewMessageRepository(db, log),
	}
}

// Seed is the initial data of the in-memory repositories
type Seed struct {
	Cars      []entity.Car
	Catalog   []entity.Car
	Bookings  []entity.Booking
	Customers []entity.Customer
	Messages  []entity.Message
}

// NewMemoryRepository returns repositories holding seed in process memory
func NewMemoryRepository(seed Seed, log *zap.Logger) *Repository {
	return &Repository{
		Car:      NewMemoryCarRepository(seed.Cars, log),
		Catalog:  NewMemoryCarRepository(seed.Catalog, log),
		Booking:  NewMemoryBookingRepository(seed.Bookings),
		Customer: NewMemoryCustomerRepository(seed.Customers),
		Message:  NewMemoryMessageRepository(seed.Messages, log),
	}
}
