package service

import (
	"context"
	"testing"

	"carwash-service/internal/apperr"
	"carwash-service/internal/entity"
)

func TestDailyReportTotals(t *testing.T) {
	store := &fakeReportStore{rows: []entity.ReportRow{
		{PaymentNumber: 1, AmountPaid: 5000, PaymentDate: "2025-05-29 10:00:00", PlateNumber: "RAC223d", PackageName: "Basic wash"},
		{PaymentNumber: 2, AmountPaid: 8000, PaymentDate: "2025-05-29 14:30:00", PlateNumber: "RAD001a", PackageName: "Premium wash"},
		{PaymentNumber: 3, AmountPaid: 12000, PaymentDate: "2025-05-30 09:00:00", PlateNumber: "RAC223d", PackageName: "Deluxe wash"},
	}}
	svc := NewReportService(store, nil, nil, nil)

	report, err := svc.DailyReport(context.Background(), "2025-05-29")
	if err != nil {
		t.Fatalf("DailyReport() error: %v", err)
	}
	if report.Count != 2 {
		t.Errorf("Count = %d, want 2", report.Count)
	}
	if report.TotalAmount != 13000 {
		t.Errorf("TotalAmount = %v, want 13000", report.TotalAmount)
	}
	if report.Date != "2025-05-29" {
		t.Errorf("Date = %q", report.Date)
	}
}

func TestDailyReportEmptyDay(t *testing.T) {
	svc := NewReportService(&fakeReportStore{}, nil, nil, nil)

	report, err := svc.DailyReport(context.Background(), "2025-01-01")
	if err != nil {
		t.Fatalf("DailyReport() error: %v", err)
	}
	if report.Count != 0 || report.TotalAmount != 0 {
		t.Errorf("empty day: count=%d total=%v, want zeros", report.Count, report.TotalAmount)
	}
	if report.Records == nil {
		t.Error("Records must be an empty slice, not nil, so it serializes as []")
	}
}

func TestDailyReportBadDate(t *testing.T) {
	svc := NewReportService(&fakeReportStore{}, nil, nil, nil)

	for _, date := range []string{"29-05-2025", "2025/05/29", "yesterday", ""} {
		_, err := svc.DailyReport(context.Background(), date)
		if apperr.KindOf(err) != apperr.KindValidation {
			t.Errorf("DailyReport(%q) err = %v, want validation", date, err)
		}
	}
}

func TestSummaryEmptyDatabase(t *testing.T) {
	svc := NewReportService(&fakeReportStore{}, nil, nil, nil)

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error: %v", err)
	}
	if summary.TotalRevenue != 0 {
		t.Errorf("TotalRevenue = %v, want 0 with no payments", summary.TotalRevenue)
	}
	if summary.PaymentCount != 0 {
		t.Errorf("PaymentCount = %d, want 0", summary.PaymentCount)
	}
}

func TestSummaryRevenue(t *testing.T) {
	store := &fakeReportStore{rows: []entity.ReportRow{
		{PaymentNumber: 1, AmountPaid: 5000},
		{PaymentNumber: 2, AmountPaid: 2500.50},
	}}
	svc := NewReportService(store, nil, nil, nil)

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error: %v", err)
	}
	if summary.TotalRevenue != 7500.50 {
		t.Errorf("TotalRevenue = %v, want 7500.50", summary.TotalRevenue)
	}
	if summary.PaymentCount != 2 {
		t.Errorf("PaymentCount = %d, want 2", summary.PaymentCount)
	}
}
