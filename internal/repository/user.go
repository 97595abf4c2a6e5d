package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/medcamp/internal/model"
)

// UserRepository handles persistence for users, keyed by email.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// InsertIfAbsent inserts u unless its email is taken. The existence check
// and the insert are one statement.
func (r *UserRepository) InsertIfAbsent(ctx context.Context, u *model.User) (bool, error) {
	u.CreatedAt = time.Now().UTC()
	tag, err := r.db.Exec(ctx,
		`INSERT INTO users (email, name, photo_url, role, phone, address, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (email) DO NOTHING`,
		u.Email, u.Name, u.PhotoURL, u.Role, u.Phone, u.Address, u.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert user: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetByEmail returns a single user or ErrNotFound.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.QueryRow(ctx,
		`SELECT email, name, photo_url, role, phone, address, created_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&u.Email, &u.Name, &u.PhotoURL, &u.Role, &u.Phone, &u.Address, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
