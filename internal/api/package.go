package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"carwash-service/internal/apperr"
	"carwash-service/internal/entity"
	"carwash-service/internal/service"
)

type PackageHandler struct {
	packageService *service.PackageService
}

func NewPackageHandler(packageService *service.PackageService) *PackageHandler {
	return &PackageHandler{packageService: packageService}
}

type packageRequest struct {
	PackageNumber      int     `json:"packageNumber" validate:"omitempty,gt=0"`
	PackageName        string  `json:"packageName" validate:"required"`
	PackageDescription string  `json:"packageDescription" validate:"required"`
	PackagePrice       float64 `json:"packagePrice" validate:"required,gt=0"`
}

func packageValidationMessage(err error) string {
	if hasFieldError(err, "PackagePrice", "gt") {
		return "Package price must be a positive number"
	}
	return "Package name, description, and price are required"
}

// GetPackages lists packages ordered by number --> GET /api/packages
func (h *PackageHandler) GetPackages(c echo.Context) error {
	packages, err := h.packageService.GetPackages(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, packages)
}

// GetPackage fetches one package --> GET /api/packages/:id
func (h *PackageHandler) GetPackage(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, apperr.Validation("Invalid package number"))
	}
	pkg, err := h.packageService.GetPackage(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, pkg)
}

// CreatePackage adds a package; a caller-supplied number is honored,
// otherwise the database assigns one --> POST /api/packages
func (h *PackageHandler) CreatePackage(c echo.Context) error {
	req := packageRequest{}
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.Validation("Invalid request payload"))
	}
	if err := validate.Struct(&req); err != nil {
		return respondError(c, apperr.Validation(packageValidationMessage(err)))
	}

	pkg := entity.Package{
		PackageNumber:      req.PackageNumber,
		PackageName:        req.PackageName,
		PackageDescription: req.PackageDescription,
		PackagePrice:       req.PackagePrice,
	}
	if err := h.packageService.CreatePackage(c.Request().Context(), &pkg); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, pkg)
}

// UpdatePackage edits a package --> PUT /api/packages/:id
func (h *PackageHandler) UpdatePackage(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, apperr.Validation("Invalid package number"))
	}

	req := packageRequest{}
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.Validation("Invalid request payload"))
	}
	if err := validate.Struct(&req); err != nil {
		return respondError(c, apperr.Validation(packageValidationMessage(err)))
	}

	pkg := entity.Package{
		PackageNumber:      id,
		PackageName:        req.PackageName,
		PackageDescription: req.PackageDescription,
		PackagePrice:       req.PackagePrice,
	}
	if err := h.packageService.UpdatePackage(c.Request().Context(), &pkg); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, pkg)
}

// DeletePackage removes an unreferenced package --> DELETE /api/packages/:id
func (h *PackageHandler) DeletePackage(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, apperr.Validation("Invalid package number"))
	}
	if err := h.packageService.DeletePackage(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return message(c, http.StatusOK, "Package deleted successfully")
}
