package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"carwash-service/internal/apperr"
	"carwash-service/internal/entity"
	"carwash-service/internal/service"
)

type RecordHandler struct {
	recordService *service.RecordService
}

func NewRecordHandler(recordService *service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

type recordRequest struct {
	PlateNumber   string `json:"plateNumber" validate:"required"`
	ServiceDate   string `json:"serviceDate" validate:"required,datetime=2006-01-02"`
	PackageNumber int    `json:"packageNumber" validate:"omitempty,gt=0"`
}

func recordValidationMessage(err error) string {
	if hasFieldError(err, "ServiceDate", "datetime") {
		return "Service date must be in YYYY-MM-DD format"
	}
	return "Plate number and service date are required"
}

// GetRecords lists visits with car and package display fields --> GET /api/services
func (h *RecordHandler) GetRecords(c echo.Context) error {
	records, err := h.recordService.GetRecords(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, records)
}

// GetRecordsByCar lists a car's visits --> GET /api/services/by-car/:plateNumber
func (h *RecordHandler) GetRecordsByCar(c echo.Context) error {
	records, err := h.recordService.GetRecordsByCar(c.Request().Context(), c.Param("plateNumber"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, records)
}

// GetRecord fetches one visit --> GET /api/services/:id
func (h *RecordHandler) GetRecord(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, apperr.Validation("Invalid record number"))
	}
	rec, err := h.recordService.GetRecord(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

// CreateRecord logs a visit; package number falls back to the default
// package --> POST /api/services
func (h *RecordHandler) CreateRecord(c echo.Context) error {
	req := recordRequest{}
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.Validation("Invalid request payload"))
	}
	if err := validate.Struct(&req); err != nil {
		return respondError(c, apperr.Validation(recordValidationMessage(err)))
	}

	rec := entity.ServiceRecord{
		PlateNumber:   req.PlateNumber,
		ServiceDate:   req.ServiceDate,
		PackageNumber: req.PackageNumber,
	}
	if err := h.recordService.CreateRecord(c.Request().Context(), &rec); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, rec)
}

// UpdateRecord edits a visit --> PUT /api/services/:id
func (h *RecordHandler) UpdateRecord(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, apperr.Validation("Invalid record number"))
	}

	req := recordRequest{}
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.Validation("Invalid request payload"))
	}
	if err := validate.Struct(&req); err != nil {
		return respondError(c, apperr.Validation(recordValidationMessage(err)))
	}

	rec := entity.ServiceRecord{
		RecordNumber:  id,
		PlateNumber:   req.PlateNumber,
		ServiceDate:   req.ServiceDate,
		PackageNumber: req.PackageNumber,
	}
	if rec.PackageNumber == 0 {
		rec.PackageNumber = 1
	}
	if err := h.recordService.UpdateRecord(c.Request().Context(), &rec); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

// DeleteRecord removes a visit and, via cascade, its payments --> DELETE /api/services/:id
func (h *RecordHandler) DeleteRecord(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, apperr.Validation("Invalid record number"))
	}
	if err := h.recordService.DeleteRecord(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return message(c, http.StatusOK, "Service record deleted successfully")
}
