package service

import (
	"context"
	"time"

	"carwash-service/internal/entity"
)

// Store interfaces are satisfied by the repository package; tests substitute
// in-memory fakes.

type CarStore interface {
	GetCars(ctx context.Context) ([]entity.Car, error)
	GetCarByPlate(ctx context.Context, plateNumber string) (*entity.Car, error)
	CreateCar(ctx context.Context, car *entity.Car) error
	UpdateCar(ctx context.Context, car *entity.Car) error
	DeleteCar(ctx context.Context, plateNumber string) error
}

type PackageStore interface {
	GetPackages(ctx context.Context) ([]entity.Package, error)
	GetPackageByID(ctx context.Context, packageNumber int) (*entity.Package, error)
	CreatePackage(ctx context.Context, pkg *entity.Package) error
	UpdatePackage(ctx context.Context, pkg *entity.Package) error
	CountServiceRecords(ctx context.Context, packageNumber int) (int, error)
	DeletePackage(ctx context.Context, packageNumber int) error
}

type RecordStore interface {
	GetRecords(ctx context.Context) ([]entity.ServiceRecord, error)
	GetRecordsByPlate(ctx context.Context, plateNumber string) ([]entity.ServiceRecord, error)
	GetRecordByID(ctx context.Context, recordNumber int) (*entity.ServiceRecord, error)
	CreateRecord(ctx context.Context, rec *entity.ServiceRecord) error
	UpdateRecord(ctx context.Context, rec *entity.ServiceRecord) error
	DeleteRecord(ctx context.Context, recordNumber int) error
}

type PaymentStore interface {
	GetPayments(ctx context.Context) ([]entity.Payment, error)
	GetPaymentsByRecord(ctx context.Context, recordNumber int) ([]entity.Payment, error)
	GetPaymentsByPlate(ctx context.Context, plateNumber string) ([]entity.Payment, error)
	GetPaymentByID(ctx context.Context, paymentNumber int) (*entity.Payment, error)
	CreatePayment(ctx context.Context, p *entity.Payment) error
	UpdatePayment(ctx context.Context, p *entity.Payment) error
	DeletePayment(ctx context.Context, paymentNumber int) error
}

type UserStore interface {
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	CreateUser(ctx context.Context, user *entity.User) error
}

type ReportStore interface {
	DailyPayments(ctx context.Context, date string) ([]entity.ReportRow, error)
	AllPayments(ctx context.Context) ([]entity.ReportRow, error)
	CountCars(ctx context.Context) (int, error)
	CountPackages(ctx context.Context) (int, error)
	CountServiceRecords(ctx context.Context) (int, error)
	CountPayments(ctx context.Context) (int, error)
	SumPayments(ctx context.Context) (float64, error)
}

// SessionStore keeps authenticated sessions server-side, keyed by session id.
// Get returns (nil, nil) for a missing or expired session.
type SessionStore interface {
	Save(ctx context.Context, sid string, user entity.User, ttl time.Duration) error
	Get(ctx context.Context, sid string) (*entity.User, error)
	Delete(ctx context.Context, sid string) error
}
