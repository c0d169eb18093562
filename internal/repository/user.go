package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"shipping-service/internal/apperr"
	"shipping-service/internal/domain"
)

// UserRepo represents the user and profile repository.
type UserRepo struct{ db *pgxpool.Pool }

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo { return &UserRepo{db: db} }

// Create - inserts a new user and returns its generated ID.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) (string, error) {
	err := r.db.QueryRow(ctx, `
        INSERT INTO users (email, password_hash, role, is_active)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at
    `, u.Email, u.PasswordHash, u.Role, u.IsActive).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return "", apperr.ErrConflict
		}
		return "", fmt.Errorf("insert user: %w", err)
	}
	return u.ID, nil
}

// GetByEmail - returns a user by email, or nil when absent.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx, `
        SELECT id, email, password_hash, role, is_active, created_at, updated_at
        FROM users WHERE email = $1
    `, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// Get - returns a user by ID, or nil when absent.
func (r *UserRepo) Get(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx, `
        SELECT id, email, password_hash, role, is_active, created_at, updated_at
        FROM users WHERE id = $1
    `, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return &u, nil
}

// CreateUserProfile - inserts the 1:1 customer profile for a user.
func (r *UserRepo) CreateUserProfile(ctx context.Context, p *domain.UserProfile) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO user_profiles (user_id, first_name, last_name, phone, avatar_url)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `, p.UserID, p.FirstName, p.LastName, p.Phone, p.AvatarURL).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		if IsForeignKey(err) {
			return apperr.ErrNotFound
		}
		return fmt.Errorf("insert user profile: %w", err)
	}
	return nil
}

// CreateCourierProfile - inserts the 1:1 courier profile for a user.
func (r *UserRepo) CreateCourierProfile(ctx context.Context, p *domain.CourierProfile) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO courier_profiles (user_id, vehicle_type, license_plate, rating, total_deliveries, is_available)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `, p.UserID, p.VehicleType, p.LicensePlate, p.Rating, p.TotalDeliveries, p.IsAvailable).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		if IsForeignKey(err) {
			return apperr.ErrNotFound
		}
		if IsCheckViolation(err) {
			return fmt.Errorf("%w: courier profile out of range", apperr.ErrInvalid)
		}
		return fmt.Errorf("insert courier profile: %w", err)
	}
	return nil
}
