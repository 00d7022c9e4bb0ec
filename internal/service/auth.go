package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"carwash-service/internal/apperr"
	"carwash-service/internal/entity"
)

// SessionTTL bounds both the cookie token and the server-side session entry.
const SessionTTL = 24 * time.Hour

// SessionClaims is the payload of the session cookie token. SID keys the
// server-side session entry so logout can revoke the token before it expires.
type SessionClaims struct {
	UserID   int    `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	SID      string `json:"sid"`
	jwt.RegisteredClaims
}

// AuthService handles registration and cookie-session authentication.
// Passwords are stored as bcrypt hashes.
type AuthService struct {
	userRepo UserStore
	sessions SessionStore
	secret   []byte
}

func NewAuthService(userRepo UserStore, sessions SessionStore, secret []byte) *AuthService {
	return &AuthService{userRepo: userRepo, sessions: sessions, secret: secret}
}

func (s *AuthService) Register(ctx context.Context, username, password, fullName string) (*entity.User, error) {
	existing, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		logger.Error().Err(err).Msg("Error checking existing username")
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("Username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{Username: username, Password: string(hash), FullName: fullName}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		logger.Error().Err(err).Msg("Error creating user")
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and opens a session. The failure response
// does not distinguish an unknown username from a wrong password.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *entity.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching user for login")
		return "", nil, err
	}
	if user == nil {
		return "", nil, apperr.Auth("Invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, apperr.Auth("Invalid credentials")
	}

	sid, err := newSessionID()
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	claims := &SessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		FullName: user.FullName,
		SID:      sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}

	if err := s.sessions.Save(ctx, sid, *user, SessionTTL); err != nil {
		logger.Error().Err(err).Msg("Error saving session")
		return "", nil, err
	}
	return token, user, nil
}

// Check resolves a cookie token to its user. A missing, malformed, expired
// or revoked token is simply an anonymous visitor, never an error.
func (s *AuthService) Check(ctx context.Context, token string) (*entity.User, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, nil
	}
	return s.SessionUser(ctx, claims.SID)
}

// SessionUser returns the user behind a session id, or (nil, nil) when the
// session does not exist or has expired.
func (s *AuthService) SessionUser(ctx context.Context, sid string) (*entity.User, error) {
	user, err := s.sessions.Get(ctx, sid)
	if err != nil {
		logger.Error().Err(err).Msg("Error reading session")
		return nil, err
	}
	return user, nil
}

// Logout revokes the session behind the token. Unparseable tokens are
// ignored so logout stays idempotent.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, claims.SID); err != nil {
		logger.Error().Err(err).Msg("Error destroying session")
		return apperr.Wrap(apperr.KindInternal, "Logout failed", err)
	}
	return nil
}

func (s *AuthService) parseToken(token string) (*SessionClaims, error) {
	if token == "" {
		return nil, errors.New("empty token")
	}
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func newSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	return hex.EncodeToString(b), nil
}
