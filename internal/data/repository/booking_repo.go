package repository

import (
	"context"
	"fmt"

	"car-rental/internal/data/entity"
	"car-rental/pkg/database"

	"go.uber.org/zap"
)

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]entity.Booking, error) {
	query, args, err := psql.
		Select("id", "customer", "car", "date", "time", "duration", "amount", "status").
		From("bookings").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select bookings: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find all bookings", zap.Error(err))
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	defer rows.Close()

	bookings := []entity.Booking{}
	for rows.Next() {
		var b entity.Booking
		if err := rows.Scan(&b.ID, &b.Customer, &b.Car, &b.Date, &b.Time, &b.Duration, &b.Amount, &b.Status); err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Bookings found", zap.Int("count", len(bookings)))
	return bookings, nil
}
