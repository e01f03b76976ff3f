package repository

import (
	"context"
	"errors"
	"fmt"

	"car-rental/internal/data/entity"
	"car-rental/pkg/database"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var carColumns = []string{
	"id", "name", "type", "images", "price", "location", "features", "status", "description",
}

type carRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCarRepository(db database.PgxIface, log *zap.Logger) CarRepository {
	return &carRepository{
		db:  db,
		log: log.With(zap.String("repository", "car")),
	}
}

func scanCar(row pgx.Row) (entity.Car, error) {
	var car entity.Car
	err := row.Scan(
		&car.ID,
		&car.Name,
		&car.Type,
		&car.Images,
		&car.Price,
		&car.Location,
		&car.Features,
		&car.Status,
		&car.Description,
	)
	return car, err
}

func (r *carRepository) FindAll(ctx context.Context) ([]entity.Car, error) {
	query, args, err := psql.Select(carColumns...).From("cars").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select cars: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find all cars", zap.Error(err))
		return nil, fmt.Errorf("failed to find cars: %w", err)
	}
	defer rows.Close()

	cars := []entity.Car{}
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			r.log.Error("Failed to scan car row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan car: %w", err)
		}
		cars = append(cars, car)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return cars, nil
}

func (r *carRepository) FindByID(ctx context.Context, id int64) (*entity.Car, error) {
	query, args, err := psql.Select(carColumns...).From("cars").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select car: %w", err)
	}

	car, err := scanCar(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find car by ID",
			zap.Error(err),
			zap.Int64("car_id", id),
		)
		return nil, fmt.Errorf("failed to find car: %w", err)
	}

	return &car, nil
}

func (r *carRepository) Create(ctx context.Context, car *entity.Car) error {
	query, args, err := psql.Insert("cars").
		Columns("name", "type", "images", "price", "location", "features", "status", "description").
		Values(car.Name, car.Type, car.Images, car.Price, car.Location, car.Features, car.Status, car.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert car: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&car.ID); err != nil {
		r.log.Error("Failed to create car",
			zap.Error(err),
			zap.String("name", car.Name),
		)
		return fmt.Errorf("failed to create car: %w", err)
	}

	return nil
}

func (r *carRepository) Update(ctx context.Context, car *entity.Car) error {
	query, args, err := psql.Update("cars").
		SetMap(map[string]any{
			"name":        car.Name,
			"type":        car.Type,
			"images":      car.Images,
			"price":       car.Price,
			"location":    car.Location,
			"features":    car.Features,
			"status":      car.Status,
			"description": car.Description,
		}).
		Where(sq.Eq{"id": car.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update car: %w", err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to update car",
			zap.Error(err),
			zap.Int64("car_id", car.ID),
		)
		return fmt.Errorf("failed to update car: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *carRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("cars").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete car: %w", err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to delete car",
			zap.Error(err),
			zap.Int64("car_id", id),
		)
		return fmt.Errorf("failed to delete car: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Car deleted", zap.Int64("car_id", id))
	return nil
}
