package entity

// ReportRow is one payment joined with its visit and package for reporting.
type ReportRow struct {
	PaymentNumber      int     `json:"paymentNumber"`
	AmountPaid         float64 `json:"amountPaid"`
	PaymentDate        string  `json:"paymentDate"`
	PlateNumber        string  `json:"plateNumber,omitempty"`
	PackageName        string  `json:"packageName,omitempty"`
	PackageDescription string  `json:"packageDescription,omitempty"`
}

type DailyReport struct {
	Date        string      `json:"date"`
	TotalAmount float64     `json:"totalAmount"`
	Records     []ReportRow `json:"records"`
	Count       int         `json:"count"`
}

type Summary struct {
	CarCount     int     `json:"carCount"`
	PackageCount int     `json:"packageCount"`
	ServiceCount int     `json:"serviceCount"`
	PaymentCount int     `json:"paymentCount"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type ComprehensiveSummary struct {
	TotalCars     int     `json:"totalCars"`
	TotalServices int     `json:"totalServices"`
	TotalPayments int     `json:"totalPayments"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// ComprehensiveReport is the full dump used by the printable report view.
type ComprehensiveReport struct {
	Cars        []Car                `json:"cars"`
	Services    []ServiceRecord      `json:"services"`
	Payments    []Payment            `json:"payments"`
	Summary     ComprehensiveSummary `json:"summary"`
	GeneratedAt string               `json:"generatedAt"`
}
