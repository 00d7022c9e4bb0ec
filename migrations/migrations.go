package migrations

import (
	"database/sql"
	"time"
)

var tables = []string{
	`CREATE TABLE IF NOT EXISTS users (
		UserID INT AUTO_INCREMENT PRIMARY KEY,
		Username VARCHAR(50) NOT NULL UNIQUE,
		Password VARCHAR(255) NOT NULL,
		FullName VARCHAR(100) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS car (
		PlateNumber VARCHAR(20) NOT NULL,
		CarType VARCHAR(50) NOT NULL,
		CarSize VARCHAR(50) NOT NULL,
		DriverName VARCHAR(100) NOT NULL,
		PhoneNumber VARCHAR(20) NOT NULL,
		PRIMARY KEY (PlateNumber)
	);`,
	`CREATE TABLE IF NOT EXISTS package (
		PackageNumber INT AUTO_INCREMENT PRIMARY KEY,
		PackageName VARCHAR(100) NOT NULL,
		PackageDescription TEXT NOT NULL,
		PackagePrice DECIMAL(10,2) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS servicepackage (
		RecordNumber INT AUTO_INCREMENT PRIMARY KEY,
		PlateNumber VARCHAR(20) NOT NULL,
		ServiceDate DATE NOT NULL,
		PackageNumber INT NOT NULL DEFAULT 1,
		FOREIGN KEY (PlateNumber) REFERENCES car (PlateNumber)
			ON DELETE CASCADE ON UPDATE CASCADE,
		FOREIGN KEY (PackageNumber) REFERENCES package (PackageNumber)
			ON DELETE RESTRICT ON UPDATE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS payment (
		PaymentNumber INT AUTO_INCREMENT PRIMARY KEY,
		RecordNumber INT NOT NULL,
		AmountPaid DECIMAL(10,2) NOT NULL,
		PaymentDate TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (RecordNumber) REFERENCES servicepackage (RecordNumber)
			ON DELETE CASCADE ON UPDATE CASCADE
	);`,
}

// Package 1 must exist: servicepackage.PackageNumber defaults to it.
const seedPackages = `INSERT IGNORE INTO package (PackageNumber, PackageName, PackageDescription, PackagePrice) VALUES
	(1, 'Basic wash', 'Exterior hand wash', 5000.00),
	(2, 'Premium wash', 'Exterior and interior cleaning', 8000.00),
	(3, 'Deluxe wash', 'Full service with wax and polish', 12000.00);`

// AutoMigrate creates the schema if it does not exist and seeds the default
// packages. Statement order matters: referenced tables first.
func AutoMigrate(retries int, db *sql.DB) error {
	for _, query := range append(append([]string{}, tables...), seedPackages) {
		if err := execWithRetry(db, query, retries); err != nil {
			return err
		}
	}
	return nil
}

func execWithRetry(db *sql.DB, query string, retries int) error {
	_, err := db.Exec(query)
	for i := 0; err != nil && i < retries; i++ {
		time.Sleep(1 * time.Second)
		_, err = db.Exec(query)
	}
	return err
}
