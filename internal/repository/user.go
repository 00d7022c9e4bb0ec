package repository

import (
	"context"
	"database/sql"
	"errors"

	"carwash-service/internal/apperr"
	"carwash-service/internal/entity"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db}
}

// GetUserByUsername returns (nil, nil) when no such user exists so the auth
// service can keep its uniform invalid-credentials response.
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT UserID, Username, Password, FullName FROM users WHERE Username = ?`

	user := &entity.User{}
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.Password, &user.FullName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	query := `INSERT INTO users (Username, Password, FullName) VALUES (?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, user.Username, user.Password, user.FullName)
	if isDuplicate(err) {
		return apperr.Wrap(apperr.KindConflict, "Username already exists", err)
	}
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = int(id)
	return nil
}
