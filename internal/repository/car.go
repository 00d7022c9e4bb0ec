package repository

import (
	"context"
	"database/sql"
	"errors"

	"carwash-service/internal/apperr"
	"carwash-service/internal/entity"
)

type CarRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) *CarRepository {
	return &CarRepository{db}
}

func (r *CarRepository) GetCars(ctx context.Context) ([]entity.Car, error) {
	query := `SELECT PlateNumber, CarType, CarSize, DriverName, PhoneNumber FROM car ORDER BY PlateNumber`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cars := []entity.Car{}
	for rows.Next() {
		car := entity.Car{}
		if err := rows.Scan(&car.PlateNumber, &car.CarType, &car.CarSize, &car.DriverName, &car.PhoneNumber); err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}
	return cars, rows.Err()
}

func (r *CarRepository) GetCarByPlate(ctx context.Context, plateNumber string) (*entity.Car, error) {
	query := `SELECT PlateNumber, CarType, CarSize, DriverName, PhoneNumber FROM car WHERE PlateNumber = ?`

	car := &entity.Car{}
	err := r.db.QueryRowContext(ctx, query, plateNumber).
		Scan(&car.PlateNumber, &car.CarType, &car.CarSize, &car.DriverName, &car.PhoneNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("Car not found")
	}
	if err != nil {
		return nil, err
	}
	return car, nil
}

func (r *CarRepository) CreateCar(ctx context.Context, car *entity.Car) error {
	query := `INSERT INTO car (PlateNumber, CarType, CarSize, DriverName, PhoneNumber) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, car.PlateNumber, car.CarType, car.CarSize, car.DriverName, car.PhoneNumber)
	if isDuplicate(err) {
		return apperr.Wrap(apperr.KindConflict, "Car with this plate number already exists", err)
	}
	return err
}

func (r *CarRepository) UpdateCar(ctx context.Context, car *entity.Car) error {
	query := `UPDATE car SET CarType = ?, CarSize = ?, DriverName = ?, PhoneNumber = ? WHERE PlateNumber = ?`

	res, err := r.db.ExecContext(ctx, query, car.CarType, car.CarSize, car.DriverName, car.PhoneNumber, car.PlateNumber)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("Car not found")
	}
	return nil
}

// DeleteCar removes the car; the schema cascades to its service records and
// their payments.
func (r *CarRepository) DeleteCar(ctx context.Context, plateNumber string) error {
	query := `DELETE FROM car WHERE PlateNumber = ?`

	res, err := r.db.ExecContext(ctx, query, plateNumber)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("Car not found")
	}
	return nil
}
