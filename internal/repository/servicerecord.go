package repository

import (
	"context"
	"database/sql"
	"errors"

	"carwash-service/internal/apperr"
	"carwash-service/internal/entity"
)

type ServiceRecordRepository struct {
	db *sql.DB
}

func NewServiceRecordRepository(db *sql.DB) *ServiceRecordRepository {
	return &ServiceRecordRepository{db}
}

const recordJoinQuery = `
	SELECT sp.RecordNumber, sp.PlateNumber, sp.ServiceDate, sp.PackageNumber,
		c.DriverName, p.PackageName, p.PackagePrice
	FROM servicepackage sp
	LEFT JOIN car c ON sp.PlateNumber = c.PlateNumber
	LEFT JOIN package p ON sp.PackageNumber = p.PackageNumber`

func scanJoinedRecord(rows *sql.Rows) (entity.ServiceRecord, error) {
	var (
		rec          entity.ServiceRecord
		driverName   sql.NullString
		packageName  sql.NullString
		packagePrice sql.NullFloat64
	)
	err := rows.Scan(&rec.RecordNumber, &rec.PlateNumber, &rec.ServiceDate, &rec.PackageNumber,
		&driverName, &packageName, &packagePrice)
	if err != nil {
		return rec, err
	}
	rec.DriverName = driverName.String
	rec.PackageName = packageName.String
	rec.PackagePrice = packagePrice.Float64
	return rec, nil
}

func (r *ServiceRecordRepository) GetRecords(ctx context.Context) ([]entity.ServiceRecord, error) {
	rows, err := r.db.QueryContext(ctx, recordJoinQuery+` ORDER BY sp.RecordNumber DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []entity.ServiceRecord{}
	for rows.Next() {
		rec, err := scanJoinedRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *ServiceRecordRepository) GetRecordsByPlate(ctx context.Context, plateNumber string) ([]entity.ServiceRecord, error) {
	rows, err := r.db.QueryContext(ctx, recordJoinQuery+` WHERE sp.PlateNumber = ? ORDER BY sp.RecordNumber DESC`, plateNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []entity.ServiceRecord{}
	for rows.Next() {
		rec, err := scanJoinedRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *ServiceRecordRepository) GetRecordByID(ctx context.Context, recordNumber int) (*entity.ServiceRecord, error) {
	query := `SELECT RecordNumber, PlateNumber, ServiceDate, PackageNumber FROM servicepackage WHERE RecordNumber = ?`

	rec := &entity.ServiceRecord{}
	err := r.db.QueryRowContext(ctx, query, recordNumber).
		Scan(&rec.RecordNumber, &rec.PlateNumber, &rec.ServiceDate, &rec.PackageNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("Service record not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *ServiceRecordRepository) CreateRecord(ctx context.Context, rec *entity.ServiceRecord) error {
	query := `INSERT INTO servicepackage (PlateNumber, ServiceDate, PackageNumber) VALUES (?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, rec.PlateNumber, rec.ServiceDate, rec.PackageNumber)
	if isMissingParent(err) {
		return apperr.Wrap(apperr.KindValidation, "Referenced car or package does not exist", err)
	}
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rec.RecordNumber = int(id)
	return nil
}

func (r *ServiceRecordRepository) UpdateRecord(ctx context.Context, rec *entity.ServiceRecord) error {
	query := `UPDATE servicepackage SET PlateNumber = ?, ServiceDate = ?, PackageNumber = ? WHERE RecordNumber = ?`

	res, err := r.db.ExecContext(ctx, query, rec.PlateNumber, rec.ServiceDate, rec.PackageNumber, rec.RecordNumber)
	if isMissingParent(err) {
		return apperr.Wrap(apperr.KindValidation, "Referenced car or package does not exist", err)
	}
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("Service record not found")
	}
	return nil
}

// DeleteRecord removes the record; the schema cascades to its payments.
func (r *ServiceRecordRepository) DeleteRecord(ctx context.Context, recordNumber int) error {
	query := `DELETE FROM servicepackage WHERE RecordNumber = ?`

	res, err := r.db.ExecContext(ctx, query, recordNumber)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("Service record not found")
	}
	return nil
}
