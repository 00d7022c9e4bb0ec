package entity

type Car struct {
	PlateNumber string `json:"plateNumber"`
	CarType     string `json:"carType"`
	CarSize     string `json:"carSize"`
	DriverName  string `json:"driverName"`
	PhoneNumber string `json:"phoneNumber"`
}

// CarDetails is a car together with its full service history.
type CarDetails struct {
	Car            Car             `json:"car"`
	ServiceRecords []ServiceRecord `json:"servicePackages"`
	Payments       []Payment       `json:"payments"`
}

/*
Mysql Table

CREATE TABLE car (
	PlateNumber VARCHAR(20) NOT NULL,
	CarType VARCHAR(50) NOT NULL,
	CarSize VARCHAR(50) NOT NULL,
	DriverName VARCHAR(100) NOT NULL,
	PhoneNumber VARCHAR(20) NOT NULL,
	PRIMARY KEY (PlateNumber)
);
*/
