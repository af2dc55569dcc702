package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"techconsult-api/internal/common"
	"techconsult-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.AppUser) error
	GetByID(ctx context.Context, id int) (*models.AppUser, error)
	GetByEmail(ctx context.Context, email string) (*models.AppUser, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, id int, at time.Time) error
}

type userRepo struct {
	db DB
}

func NewUserRepo(db DB) UserRepository {
	return &userRepo{db: db}
}

// Create inserts the account and fills in the generated id and
// created_at. A unique index conflict on email surfaces as
// common.ErrDuplicateEmail so the register race loses cleanly.
func (r *userRepo) Create(ctx context.Context, user *models.AppUser) error {
	query := `
		INSERT INTO app_users (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, user.Email, user.PasswordHash, int(user.Role)).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return common.ErrDuplicateEmail
		}
		return fmt.Errorf("insert app_user: %w", err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int) (*models.AppUser, error) {
	user := &models.AppUser{}
	query := `
		SELECT id, email, password_hash, role, created_at, last_login_at
		FROM app_users
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt, &user.LastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("select app_user by id: %w", err)
	}
	return user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.AppUser, error) {
	user := &models.AppUser{}
	query := `
		SELECT id, email, password_hash, role, created_at, last_login_at
		FROM app_users
		WHERE email = $1
	`
	err := r.db.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt, &user.LastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("select app_user by email: %w", err)
	}
	return user, nil
}

func (r *userRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM app_users WHERE email = $1)`
	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check app_user email: %w", err)
	}
	return exists, nil
}

func (r *userRepo) UpdateLastLogin(ctx context.Context, id int, at time.Time) error {
	query := `UPDATE app_users SET last_login_at = $1 WHERE id = $2`
	tag, err := r.db.Exec(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("update last_login_at: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}
