package repository

import (
	"context"
	"database/sql"
	"errors"

	"carwash-service/internal/apperr"
	"carwash-service/internal/entity"
)

type PackageRepository struct {
	db *sql.DB
}

func NewPackageRepository(db *sql.DB) *PackageRepository {
	return &PackageRepository{db}
}

func (r *PackageRepository) GetPackages(ctx context.Context) ([]entity.Package, error) {
	query := `SELECT PackageNumber, PackageName, PackageDescription, PackagePrice FROM package ORDER BY PackageNumber`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packages := []entity.Package{}
	for rows.Next() {
		pkg := entity.Package{}
		if err := rows.Scan(&pkg.PackageNumber, &pkg.PackageName, &pkg.PackageDescription, &pkg.PackagePrice); err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}
	return packages, rows.Err()
}

func (r *PackageRepository) GetPackageByID(ctx context.Context, packageNumber int) (*entity.Package, error) {
	query := `SELECT PackageNumber, PackageName, PackageDescription, PackagePrice FROM package WHERE PackageNumber = ?`

	pkg := &entity.Package{}
	err := r.db.QueryRowContext(ctx, query, packageNumber).
		Scan(&pkg.PackageNumber, &pkg.PackageName, &pkg.PackageDescription, &pkg.PackagePrice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("Package not found")
	}
	if err != nil {
		return nil, err
	}
	return pkg, nil
}

// CreatePackage inserts the package. A caller-supplied PackageNumber > 0 is
// used as-is, otherwise the database assigns the next id, which is written
// back into pkg.
func (r *PackageRepository) CreatePackage(ctx context.Context, pkg *entity.Package) error {
	var (
		res sql.Result
		err error
	)
	if pkg.PackageNumber > 0 {
		query := `INSERT INTO package (PackageNumber, PackageName, PackageDescription, PackagePrice) VALUES (?, ?, ?, ?)`
		res, err = r.db.ExecContext(ctx, query, pkg.PackageNumber, pkg.PackageName, pkg.PackageDescription, pkg.PackagePrice)
	} else {
		query := `INSERT INTO package (PackageName, PackageDescription, PackagePrice) VALUES (?, ?, ?)`
		res, err = r.db.ExecContext(ctx, query, pkg.PackageName, pkg.PackageDescription, pkg.PackagePrice)
	}
	if isDuplicate(err) {
		return apperr.Wrap(apperr.KindConflict, "Package already exists", err)
	}
	if err != nil {
		return err
	}

	if pkg.PackageNumber == 0 {
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		pkg.PackageNumber = int(id)
	}
	return nil
}

func (r *PackageRepository) UpdatePackage(ctx context.Context, pkg *entity.Package) error {
	query := `UPDATE package SET PackageName = ?, PackageDescription = ?, PackagePrice = ? WHERE PackageNumber = ?`

	res, err := r.db.ExecContext(ctx, query, pkg.PackageName, pkg.PackageDescription, pkg.PackagePrice, pkg.PackageNumber)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("Package not found")
	}
	return nil
}

// CountServiceRecords reports how many visits reference the package.
func (r *PackageRepository) CountServiceRecords(ctx context.Context, packageNumber int) (int, error) {
	query := `SELECT COUNT(*) FROM servicepackage WHERE PackageNumber = ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, packageNumber).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// DeletePackage removes the package. The ON DELETE RESTRICT constraint is
// authoritative; a 1451 from it is reported as the same conflict the
// advisory pre-check produces.
func (r *PackageRepository) DeletePackage(ctx context.Context, packageNumber int) error {
	query := `DELETE FROM package WHERE PackageNumber = ?`

	res, err := r.db.ExecContext(ctx, query, packageNumber)
	if isReferenced(err) {
		return apperr.Wrap(apperr.KindConflict, "Cannot delete package. It is being used in service records.", err)
	}
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("Package not found")
	}
	return nil
}
