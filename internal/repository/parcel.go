package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"shipping-service/internal/apperr"
	"shipping-service/internal/domain"
)

// PackageRepo represents the package repository.
type PackageRepo struct{ db *pgxpool.Pool }

// NewPackageRepo creates a new PackageRepo.
func NewPackageRepo(db *pgxpool.Pool) *PackageRepo { return &PackageRepo{db: db} }

func insertPackage(ctx context.Context, q querier, p *domain.Package) error {
	err := q.QueryRow(ctx, `
        INSERT INTO packages (type, weight_kg, dimensions, is_fragile, special_instructions, declared_value)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `, p.Type, p.WeightKg, p.Dimensions, p.IsFragile, p.SpecialInstructions, p.DeclaredValue).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if IsCheckViolation(err) {
			return apperr.ErrInvalid
		}
		return fmt.Errorf("insert package: %w", err)
	}
	return nil
}

// Create - inserts a new package and returns its generated ID.
func (r *PackageRepo) Create(ctx context.Context, p *domain.Package) (string, error) {
	if err := insertPackage(ctx, r.db, p); err != nil {
		return "", err
	}
	return p.ID, nil
}

// Get - returns a package by its ID, or nil when absent.
func (r *PackageRepo) Get(ctx context.Context, id string) (*domain.Package, error) {
	var p domain.Package
	err := r.db.QueryRow(ctx, `
        SELECT id, type, weight_kg, dimensions, is_fragile, special_instructions, declared_value, created_at
        FROM packages WHERE id = $1
    `, id).Scan(&p.ID, &p.Type, &p.WeightKg, &p.Dimensions, &p.IsFragile,
		&p.SpecialInstructions, &p.DeclaredValue, &p.CreatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get package %s: %w", id, err)
	}
	return &p, nil
}
