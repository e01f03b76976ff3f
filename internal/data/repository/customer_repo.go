package repository

import (
	"context"
	"fmt"

	"car-rental/internal/data/entity"
	"car-rental/pkg/database"

	"go.uber.org/zap"
)

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

func (r *customerRepository) FindAll(ctx context.Context) ([]entity.Customer, error) {
	query, args, err := psql.
		Select("id", "name", "email", "phone", "total_bookings", "total_spent", "last_booking", "rating").
		From("customers").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select customers: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find all customers", zap.Error(err))
		return nil, fmt.Errorf("failed to find customers: %w", err)
	}
	defer rows.Close()

	customers := []entity.Customer{}
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.TotalBookings, &c.TotalSpent, &c.LastBooking, &c.Rating); err != nil {
			r.log.Error("Failed to scan customer row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return customers, nil
}
