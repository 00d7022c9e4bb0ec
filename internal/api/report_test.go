package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"carwash-service/internal/entity"
	"carwash-service/internal/service"
)

func newReportTestHandler(rows []entity.ReportRow) *ReportHandler {
	svc := service.NewReportService(&fakeReportStore{rows: rows},
		newFakeCarStore(), newFakeRecordStore(), newFakePaymentStore())
	return NewReportHandler(svc)
}

func TestDailyReportHandler(t *testing.T) {
	h := newReportTestHandler([]entity.ReportRow{
		{PaymentNumber: 1, AmountPaid: 5000, PaymentDate: "2025-05-29 10:00:00"},
		{PaymentNumber: 2, AmountPaid: 8000, PaymentDate: "2025-05-29 14:30:00"},
	})
	e := echo.New()
	e.GET("/api/reports/daily/:date", h.DailyReport)

	rec := doJSON(e, http.MethodGet, "/api/reports/daily/2025-05-29", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	var report entity.DailyReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if report.TotalAmount != 13000 || report.Count != 2 {
		t.Errorf("report = %+v", report)
	}
}

func TestDailyReportHandlerEmptyDay(t *testing.T) {
	h := newReportTestHandler(nil)
	e := echo.New()
	e.GET("/api/reports/daily/:date", h.DailyReport)

	rec := doJSON(e, http.MethodGet, "/api/reports/daily/2025-01-01", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	// an empty day serializes records as [], never null
	if !strings.Contains(rec.Body.String(), `"records":[]`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestDailyReportHandlerBadDate(t *testing.T) {
	h := newReportTestHandler(nil)
	e := echo.New()
	e.GET("/api/reports/daily/:date", h.DailyReport)

	rec := doJSON(e, http.MethodGet, "/api/reports/daily/not-a-date", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Date must be in YYYY-MM-DD format" {
		t.Errorf("message = %q", msg)
	}
}

func TestSummaryHandler(t *testing.T) {
	h := newReportTestHandler([]entity.ReportRow{
		{PaymentNumber: 1, AmountPaid: 5000},
	})
	e := echo.New()
	e.GET("/api/reports/summary", h.Summary)

	rec := doJSON(e, http.MethodGet, "/api/reports/summary", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	var summary entity.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if summary.TotalRevenue != 5000 || summary.PaymentCount != 1 {
		t.Errorf("summary = %+v", summary)
	}
}
