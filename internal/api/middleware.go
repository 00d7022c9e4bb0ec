package api

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"carwash-service/internal/service"
)

// currentUserKey holds the authenticated *entity.User in the echo context.
const currentUserKey = "currentUser"

// SessionAuth returns the middleware chain for protected route groups: the
// JWT middleware validates the cookie token's signature and expiry, then the
// session check rejects tokens whose server-side session was revoked.
func SessionAuth(authService *service.AuthService, secret []byte) []echo.MiddlewareFunc {
	tokenCheck := echojwt.WithConfig(echojwt.Config{
		SigningKey:  secret,
		TokenLookup: "cookie:" + SessionCookie,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(service.SessionClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return message(c, http.StatusUnauthorized, "Authentication required")
		},
	})

	sessionCheck := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return message(c, http.StatusUnauthorized, "Authentication required")
			}
			claims, ok := token.Claims.(*service.SessionClaims)
			if !ok {
				return message(c, http.StatusUnauthorized, "Authentication required")
			}

			user, err := authService.SessionUser(c.Request().Context(), claims.SID)
			if err != nil {
				return respondError(c, err)
			}
			if user == nil {
				return message(c, http.StatusUnauthorized, "Session expired")
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}

	return []echo.MiddlewareFunc{tokenCheck, sessionCheck}
}
