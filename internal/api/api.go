package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"carwash-service/internal/apperr"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "carwash_session"

var validate = validator.New(validator.WithRequiredStructEnabled())

func respondError(c echo.Context, err error) error {
	return c.JSON(apperr.HTTPStatus(err), map[string]string{"message": apperr.Message(err)})
}

func message(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"message": msg})
}

func fieldErrors(err error) validator.ValidationErrors {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

func hasFieldError(err error, field, tag string) bool {
	for _, fe := range fieldErrors(err) {
		if fe.Field() == field && fe.Tag() == tag {
			return true
		}
	}
	return false
}

func sessionCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
	}
}

func expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
}
