package entity

// ServiceRecord is one visit: a car washed under a package on a date.
// DriverName, PackageName and PackagePrice are display fields filled by
// joined queries; they are empty on bare rows.
type ServiceRecord struct {
	RecordNumber  int     `json:"recordNumber"`
	PlateNumber   string  `json:"plateNumber"`
	ServiceDate   string  `json:"serviceDate"`
	PackageNumber int     `json:"packageNumber"`
	DriverName    string  `json:"driverName,omitempty"`
	PackageName   string  `json:"packageName,omitempty"`
	PackagePrice  float64 `json:"packagePrice,omitempty"`
}

/*
Mysql Table

CREATE TABLE servicepackage (
	RecordNumber INT AUTO_INCREMENT PRIMARY KEY,
	PlateNumber VARCHAR(20) NOT NULL,
	ServiceDate DATE NOT NULL,
	PackageNumber INT NOT NULL DEFAULT 1,
	FOREIGN KEY (PlateNumber) REFERENCES car (PlateNumber)
		ON DELETE CASCADE ON UPDATE CASCADE,
	FOREIGN KEY (PackageNumber) REFERENCES package (PackageNumber)
		ON DELETE RESTRICT ON UPDATE CASCADE
);
*/
