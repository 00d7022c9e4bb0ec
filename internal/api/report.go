package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"carwash-service/internal/service"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// DailyReport aggregates one day's payments --> GET /api/reports/daily/:date
func (h *ReportHandler) DailyReport(c echo.Context) error {
	report, err := h.reportService.DailyReport(c.Request().Context(), c.Param("date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// PaymentsReport lists every payment with package info --> GET /api/reports/payments
func (h *ReportHandler) PaymentsReport(c echo.Context) error {
	records, err := h.reportService.PaymentsReport(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, records)
}

// Summary returns the dashboard scalars --> GET /api/reports/summary
func (h *ReportHandler) Summary(c echo.Context) error {
	summary, err := h.reportService.Summary(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// ComprehensiveReport dumps everything for printing --> GET /api/reports/comprehensive
func (h *ReportHandler) ComprehensiveReport(c echo.Context) error {
	report, err := h.reportService.ComprehensiveReport(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}
