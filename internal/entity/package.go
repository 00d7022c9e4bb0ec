package entity

type Package struct {
	PackageNumber      int     `json:"packageNumber"`
	PackageName        string  `json:"packageName"`
	PackageDescription string  `json:"packageDescription"`
	PackagePrice       float64 `json:"packagePrice"`
}

/*
Mysql Table

CREATE TABLE package (
	PackageNumber INT AUTO_INCREMENT PRIMARY KEY,
	PackageName VARCHAR(100) NOT NULL,
	PackageDescription TEXT NOT NULL,
	PackagePrice DECIMAL(10,2) NOT NULL
);
*/
