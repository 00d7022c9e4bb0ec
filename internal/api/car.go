package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"carwash-service/internal/apperr"
	"carwash-service/internal/entity"
	"carwash-service/internal/service"
)

type CarHandler struct {
	carService *service.CarService
}

func NewCarHandler(carService *service.CarService) *CarHandler {
	return &CarHandler{carService: carService}
}

type carRequest struct {
	PlateNumber string `json:"plateNumber" validate:"required"`
	CarType     string `json:"carType" validate:"required"`
	CarSize     string `json:"carSize" validate:"required"`
	DriverName  string `json:"driverName" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

type carUpdateRequest struct {
	CarType     string `json:"carType" validate:"required"`
	CarSize     string `json:"carSize" validate:"required"`
	DriverName  string `json:"driverName" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

// GetCars lists every car --> GET /api/cars
func (h *CarHandler) GetCars(c echo.Context) error {
	cars, err := h.carService.GetCars(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, cars)
}

// GetCar fetches one car --> GET /api/cars/:plateNumber
func (h *CarHandler) GetCar(c echo.Context) error {
	car, err := h.carService.GetCar(c.Request().Context(), c.Param("plateNumber"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, car)
}

// CreateCar registers a vehicle --> POST /api/cars
func (h *CarHandler) CreateCar(c echo.Context) error {
	req := carRequest{}
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.Validation("Invalid request payload"))
	}
	if err := validate.Struct(&req); err != nil {
		return respondError(c, apperr.Validation("All fields are required"))
	}

	car := entity.Car{
		PlateNumber: req.PlateNumber,
		CarType:     req.CarType,
		CarSize:     req.CarSize,
		DriverName:  req.DriverName,
		PhoneNumber: req.PhoneNumber,
	}
	if err := h.carService.CreateCar(c.Request().Context(), &car); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, car)
}

// UpdateCar edits car details --> PUT /api/cars/:plateNumber
func (h *CarHandler) UpdateCar(c echo.Context) error {
	req := carUpdateRequest{}
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.Validation("Invalid request payload"))
	}
	if err := validate.Struct(&req); err != nil {
		return respondError(c, apperr.Validation("All fields are required"))
	}

	car := entity.Car{
		PlateNumber: c.Param("plateNumber"),
		CarType:     req.CarType,
		CarSize:     req.CarSize,
		DriverName:  req.DriverName,
		PhoneNumber: req.PhoneNumber,
	}
	if err := h.carService.UpdateCar(c.Request().Context(), &car); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, car)
}

// DeleteCar removes a car and, via cascade, its history --> DELETE /api/cars/:plateNumber
func (h *CarHandler) DeleteCar(c echo.Context) error {
	if err := h.carService.DeleteCar(c.Request().Context(), c.Param("plateNumber")); err != nil {
		return respondError(c, err)
	}
	return message(c, http.StatusOK, "Car deleted successfully")
}

// GetCarDetails returns the car with visits and payments --> GET /api/cars/:plateNumber/details
func (h *CarHandler) GetCarDetails(c echo.Context) error {
	details, err := h.carService.GetCarDetails(c.Request().Context(), c.Param("plateNumber"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, details)
}
