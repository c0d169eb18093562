package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"shipping-service/internal/domain"
)

// AddressRepo represents the address repository. Addresses are immutable:
// there is no update path, only insert and read.
type AddressRepo struct{ db *pgxpool.Pool }

// NewAddressRepo creates a new AddressRepo.
func NewAddressRepo(db *pgxpool.Pool) *AddressRepo { return &AddressRepo{db: db} }

func insertAddress(ctx context.Context, q querier, a *domain.Address) error {
	err := q.QueryRow(ctx, `
        INSERT INTO addresses (street, city, state, zip_code, country, latitude, longitude)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `, a.Street, a.City, a.State, a.ZipCode, a.Country, a.Latitude, a.Longitude).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert address: %w", err)
	}
	return nil
}

// Create - inserts a new address and returns its generated ID. Duplicate
// addresses are permitted and not deduplicated.
func (r *AddressRepo) Create(ctx context.Context, a *domain.Address) (string, error) {
	if err := insertAddress(ctx, r.db, a); err != nil {
		return "", err
	}
	return a.ID, nil
}

// Get - returns an address by its ID, or nil when absent.
func (r *AddressRepo) Get(ctx context.Context, id string) (*domain.Address, error) {
	var a domain.Address
	err := r.db.QueryRow(ctx, `
        SELECT id, street, city, state, zip_code, country, latitude, longitude, created_at
        FROM addresses WHERE id = $1
    `, id).Scan(&a.ID, &a.Street, &a.City, &a.State, &a.ZipCode, &a.Country,
		&a.Latitude, &a.Longitude, &a.CreatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get address %s: %w", id, err)
	}
	return &a, nil
}
