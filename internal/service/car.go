package service

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"carwash-service/internal/entity"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// CarService provides car CRUD plus the per-car history view.
type CarService struct {
	carRepo     CarStore
	recordRepo  RecordStore
	paymentRepo PaymentStore
}

func NewCarService(carRepo CarStore, recordRepo RecordStore, paymentRepo PaymentStore) *CarService {
	return &CarService{carRepo: carRepo, recordRepo: recordRepo, paymentRepo: paymentRepo}
}

func (s *CarService) GetCars(ctx context.Context) ([]entity.Car, error) {
	cars, err := s.carRepo.GetCars(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching cars")
		return nil, err
	}
	return cars, nil
}

func (s *CarService) GetCar(ctx context.Context, plateNumber string) (*entity.Car, error) {
	car, err := s.carRepo.GetCarByPlate(ctx, plateNumber)
	if err != nil {
		logger.Error().Err(err).Msgf("Error fetching car %s", plateNumber)
		return nil, err
	}
	return car, nil
}

func (s *CarService) CreateCar(ctx context.Context, car *entity.Car) error {
	if err := s.carRepo.CreateCar(ctx, car); err != nil {
		logger.Error().Err(err).Msgf("Error creating car %s", car.PlateNumber)
		return err
	}
	return nil
}

func (s *CarService) UpdateCar(ctx context.Context, car *entity.Car) error {
	if err := s.carRepo.UpdateCar(ctx, car); err != nil {
		logger.Error().Err(err).Msgf("Error updating car %s", car.PlateNumber)
		return err
	}
	return nil
}

// DeleteCar is destructive: the schema cascades to the car's service records
// and their payments.
func (s *CarService) DeleteCar(ctx context.Context, plateNumber string) error {
	if err := s.carRepo.DeleteCar(ctx, plateNumber); err != nil {
		logger.Error().Err(err).Msgf("Error deleting car %s", plateNumber)
		return err
	}
	return nil
}

// GetCarDetails returns the car with its visits and payments, newest first.
func (s *CarService) GetCarDetails(ctx context.Context, plateNumber string) (*entity.CarDetails, error) {
	car, err := s.carRepo.GetCarByPlate(ctx, plateNumber)
	if err != nil {
		return nil, err
	}

	records, err := s.recordRepo.GetRecordsByPlate(ctx, plateNumber)
	if err != nil {
		logger.Error().Err(err).Msgf("Error fetching service records for car %s", plateNumber)
		return nil, err
	}

	payments, err := s.paymentRepo.GetPaymentsByPlate(ctx, plateNumber)
	if err != nil {
		logger.Error().Err(err).Msgf("Error fetching payments for car %s", plateNumber)
		return nil, err
	}

	return &entity.CarDetails{Car: *car, ServiceRecords: records, Payments: payments}, nil
}
