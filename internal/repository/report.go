package repository

import (
	"context"
	"database/sql"

	"carwash-service/internal/entity"
)

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db}
}

const reportRowQuery = `
	SELECT p.PaymentNumber, p.AmountPaid, p.PaymentDate,
		sp.PlateNumber, pkg.PackageName, pkg.PackageDescription
	FROM payment p
	LEFT JOIN servicepackage sp ON p.RecordNumber = sp.RecordNumber
	LEFT JOIN package pkg ON sp.PackageNumber = pkg.PackageNumber`

func (r *ReportRepository) queryRows(ctx context.Context, query string, args ...interface{}) ([]entity.ReportRow, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []entity.ReportRow{}
	for rows.Next() {
		var (
			row                entity.ReportRow
			plateNumber        sql.NullString
			packageName        sql.NullString
			packageDescription sql.NullString
		)
		err := rows.Scan(&row.PaymentNumber, &row.AmountPaid, &row.PaymentDate,
			&plateNumber, &packageName, &packageDescription)
		if err != nil {
			return nil, err
		}
		row.PlateNumber = plateNumber.String
		row.PackageName = packageName.String
		row.PackageDescription = packageDescription.String
		records = append(records, row)
	}
	return records, rows.Err()
}

// DailyPayments returns payments whose PaymentDate falls on the given
// calendar date (YYYY-MM-DD).
func (r *ReportRepository) DailyPayments(ctx context.Context, date string) ([]entity.ReportRow, error) {
	return r.queryRows(ctx, reportRowQuery+` WHERE DATE(p.PaymentDate) = ? ORDER BY p.PaymentDate DESC`, date)
}

func (r *ReportRepository) AllPayments(ctx context.Context) ([]entity.ReportRow, error) {
	return r.queryRows(ctx, reportRowQuery+` ORDER BY p.PaymentDate DESC`)
}

func (r *ReportRepository) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *ReportRepository) CountCars(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM car`)
}

func (r *ReportRepository) CountPackages(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM package`)
}

func (r *ReportRepository) CountServiceRecords(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM servicepackage`)
}

func (r *ReportRepository) CountPayments(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM payment`)
}

// SumPayments totals AmountPaid over every payment, 0 when the table is empty.
func (r *ReportRepository) SumPayments(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(AmountPaid), 0) FROM payment`).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}
