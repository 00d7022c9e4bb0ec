package entity

// Payment is money received against a service record. A record may be paid
// across several payments. PlateNumber and PackageName are display fields
// filled by joined queries.
type Payment struct {
	PaymentNumber int     `json:"paymentNumber"`
	RecordNumber  int     `json:"recordNumber"`
	AmountPaid    float64 `json:"amountPaid"`
	PaymentDate   string  `json:"paymentDate"`
	PlateNumber   string  `json:"plateNumber,omitempty"`
	PackageName   string  `json:"packageName,omitempty"`
}

/*
Mysql Table

CREATE TABLE payment (
	PaymentNumber INT AUTO_INCREMENT PRIMARY KEY,
	RecordNumber INT NOT NULL,
	AmountPaid DECIMAL(10,2) NOT NULL,
	PaymentDate TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (RecordNumber) REFERENCES servicepackage (RecordNumber)
		ON DELETE CASCADE ON UPDATE CASCADE
);
*/
