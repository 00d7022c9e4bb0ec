package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"carwash-service/internal/apperr"
	"carwash-service/internal/entity"
	"carwash-service/internal/service"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
}

func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

type paymentRequest struct {
	RecordNumber int     `json:"recordNumber" validate:"required,gt=0"`
	AmountPaid   float64 `json:"amountPaid" validate:"required,gt=0"`
	PaymentDate  string  `json:"paymentDate"`
}

func paymentValidationMessage(err error) string {
	if hasFieldError(err, "AmountPaid", "gt") {
		return "Amount paid must be a positive number"
	}
	return "Record number and amount paid are required"
}

// GetPayments lists payments with visit and package display fields --> GET /api/payments
func (h *PaymentHandler) GetPayments(c echo.Context) error {
	payments, err := h.paymentService.GetPayments(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, payments)
}

// GetPaymentsByRecord lists a visit's payments --> GET /api/payments/by-record/:id
func (h *PaymentHandler) GetPaymentsByRecord(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, apperr.Validation("Invalid record number"))
	}
	payments, err := h.paymentService.GetPaymentsByRecord(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, payments)
}

// GetPaymentsByCar lists a car's payments --> GET /api/payments/by-car/:plateNumber
func (h *PaymentHandler) GetPaymentsByCar(c echo.Context) error {
	payments, err := h.paymentService.GetPaymentsByCar(c.Request().Context(), c.Param("plateNumber"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, payments)
}

// GetPayment fetches one payment --> GET /api/payments/:id
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, apperr.Validation("Invalid payment number"))
	}
	p, err := h.paymentService.GetPayment(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// CreatePayment records money against a visit; the date defaults to now
// --> POST /api/payments
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	req := paymentRequest{}
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.Validation("Invalid request payload"))
	}
	if err := validate.Struct(&req); err != nil {
		return respondError(c, apperr.Validation(paymentValidationMessage(err)))
	}

	p := entity.Payment{
		RecordNumber: req.RecordNumber,
		AmountPaid:   req.AmountPaid,
		PaymentDate:  req.PaymentDate,
	}
	if err := h.paymentService.CreatePayment(c.Request().Context(), &p); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

// UpdatePayment edits a payment --> PUT /api/payments/:id
func (h *PaymentHandler) UpdatePayment(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, apperr.Validation("Invalid payment number"))
	}

	req := paymentRequest{}
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.Validation("Invalid request payload"))
	}
	if err := validate.Struct(&req); err != nil {
		return respondError(c, apperr.Validation(paymentValidationMessage(err)))
	}
	if req.PaymentDate == "" {
		return respondError(c, apperr.Validation("Payment date is required"))
	}

	p := entity.Payment{
		PaymentNumber: id,
		RecordNumber:  req.RecordNumber,
		AmountPaid:    req.AmountPaid,
		PaymentDate:   req.PaymentDate,
	}
	if err := h.paymentService.UpdatePayment(c.Request().Context(), &p); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// DeletePayment removes a payment --> DELETE /api/payments/:id
func (h *PaymentHandler) DeletePayment(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, apperr.Validation("Invalid payment number"))
	}
	if err := h.paymentService.DeletePayment(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return message(c, http.StatusOK, "Payment deleted successfully")
}
