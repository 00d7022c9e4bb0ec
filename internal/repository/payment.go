package repository

import (
	"context"
	"database/sql"
	"errors"

	"carwash-service/internal/apperr"
	"carwash-service/internal/entity"
)

type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db}
}

const paymentJoinQuery = `
	SELECT p.PaymentNumber, p.RecordNumber, p.AmountPaid, p.PaymentDate,
		sp.PlateNumber, pkg.PackageName
	FROM payment p
	LEFT JOIN servicepackage sp ON p.RecordNumber = sp.RecordNumber
	LEFT JOIN package pkg ON sp.PackageNumber = pkg.PackageNumber`

func (r *PaymentRepository) queryJoined(ctx context.Context, query string, args ...interface{}) ([]entity.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []entity.Payment{}
	for rows.Next() {
		var (
			p           entity.Payment
			plateNumber sql.NullString
			packageName sql.NullString
		)
		err := rows.Scan(&p.PaymentNumber, &p.RecordNumber, &p.AmountPaid, &p.PaymentDate,
			&plateNumber, &packageName)
		if err != nil {
			return nil, err
		}
		p.PlateNumber = plateNumber.String
		p.PackageName = packageName.String
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *PaymentRepository) GetPayments(ctx context.Context) ([]entity.Payment, error) {
	return r.queryJoined(ctx, paymentJoinQuery+` ORDER BY p.PaymentNumber DESC`)
}

func (r *PaymentRepository) GetPaymentsByRecord(ctx context.Context, recordNumber int) ([]entity.Payment, error) {
	return r.queryJoined(ctx, paymentJoinQuery+` WHERE p.RecordNumber = ? ORDER BY p.PaymentNumber DESC`, recordNumber)
}

func (r *PaymentRepository) GetPaymentsByPlate(ctx context.Context, plateNumber string) ([]entity.Payment, error) {
	return r.queryJoined(ctx, paymentJoinQuery+` WHERE sp.PlateNumber = ? ORDER BY p.PaymentNumber DESC`, plateNumber)
}

func (r *PaymentRepository) GetPaymentByID(ctx context.Context, paymentNumber int) (*entity.Payment, error) {
	query := `SELECT PaymentNumber, RecordNumber, AmountPaid, PaymentDate FROM payment WHERE PaymentNumber = ?`

	p := &entity.Payment{}
	err := r.db.QueryRowContext(ctx, query, paymentNumber).
		Scan(&p.PaymentNumber, &p.RecordNumber, &p.AmountPaid, &p.PaymentDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("Payment not found")
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// CreatePayment inserts the payment. An empty PaymentDate leaves the column
// to its CURRENT_TIMESTAMP default.
func (r *PaymentRepository) CreatePayment(ctx context.Context, p *entity.Payment) error {
	var (
		res sql.Result
		err error
	)
	if p.PaymentDate != "" {
		query := `INSERT INTO payment (RecordNumber, AmountPaid, PaymentDate) VALUES (?, ?, ?)`
		res, err = r.db.ExecContext(ctx, query, p.RecordNumber, p.AmountPaid, p.PaymentDate)
	} else {
		query := `INSERT INTO payment (RecordNumber, AmountPaid) VALUES (?, ?)`
		res, err = r.db.ExecContext(ctx, query, p.RecordNumber, p.AmountPaid)
	}
	if isMissingParent(err) {
		return apperr.Wrap(apperr.KindValidation, "Referenced service record does not exist", err)
	}
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.PaymentNumber = int(id)
	return nil
}

func (r *PaymentRepository) UpdatePayment(ctx context.Context, p *entity.Payment) error {
	query := `UPDATE payment SET RecordNumber = ?, AmountPaid = ?, PaymentDate = ? WHERE PaymentNumber = ?`

	res, err := r.db.ExecContext(ctx, query, p.RecordNumber, p.AmountPaid, p.PaymentDate, p.PaymentNumber)
	if isMissingParent(err) {
		return apperr.Wrap(apperr.KindValidation, "Referenced service record does not exist", err)
	}
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("Payment not found")
	}
	return nil
}

func (r *PaymentRepository) DeletePayment(ctx context.Context, paymentNumber int) error {
	query := `DELETE FROM payment WHERE PaymentNumber = ?`

	res, err := r.db.ExecContext(ctx, query, paymentNumber)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("Payment not found")
	}
	return nil
}
