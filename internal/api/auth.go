package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"carwash-service/internal/apperr"
	"carwash-service/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func registerValidationMessage(err error) string {
	if hasFieldError(err, "Password", "min") {
		return "Password must be at least 6 characters long"
	}
	return "Username, password, and full name are required"
}

// Register creates a user --> POST /api/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	req := registerRequest{}
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.Validation("Invalid request payload"))
	}
	if err := validate.Struct(&req); err != nil {
		return respondError(c, apperr.Validation(registerValidationMessage(err)))
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, req.FullName)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

// Login verifies credentials and sets the session cookie --> POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	req := loginRequest{}
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.Validation("Invalid request payload"))
	}
	if err := validate.Struct(&req); err != nil {
		return respondError(c, apperr.Validation("Username and password are required"))
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	c.SetCookie(sessionCookie(token, service.SessionTTL))
	return c.JSON(http.StatusOK, user)
}

// Check probes the session without side effects --> GET /api/auth/check
func (h *AuthHandler) Check(c echo.Context) error {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{"isLoggedIn": false})
	}

	user, err := h.authService.Check(c.Request().Context(), cookie.Value)
	if err != nil {
		return respondError(c, err)
	}
	if user == nil {
		return c.JSON(http.StatusOK, map[string]interface{}{"isLoggedIn": false})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"isLoggedIn": true, "user": user})
}

// Logout revokes the session and clears the cookie --> POST /api/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			return respondError(c, err)
		}
	}
	c.SetCookie(expiredSessionCookie())
	return message(c, http.StatusOK, "Logout successful")
}
