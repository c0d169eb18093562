package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"shipping-service/internal/apperr"
	"shipping-service/internal/domain"
)

// PricingRepo represents the pricing rule repository.
type PricingRepo struct{ db *pgxpool.Pool }

// NewPricingRepo creates a new PricingRepo.
func NewPricingRepo(db *pgxpool.Pool) *PricingRepo { return &PricingRepo{db: db} }

// ActiveByPackageType returns the active rule for a package type, or nil.
// When several rules match, the most recently updated one wins.
func (r *PricingRepo) ActiveByPackageType(ctx context.Context, t domain.PackageType) (*domain.PricingRule, error) {
	var rule domain.PricingRule
	err := r.db.QueryRow(ctx, `
        SELECT id, package_type, base_price, price_per_km, price_per_kg,
               priority_multiplier, is_active, created_at, updated_at
        FROM pricing_rules
        WHERE package_type = $1 AND is_active = true
        ORDER BY updated_at DESC
        LIMIT 1
    `, t).Scan(&rule.ID, &rule.PackageType, &rule.BasePrice, &rule.PricePerKm,
		&rule.PricePerKg, &rule.PriorityMultiplier, &rule.IsActive,
		&rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pricing rule for %s: %w", t, err)
	}
	return &rule, nil
}

// Upsert inserts or refreshes a rule keyed by package type, so repeated
// seeding never multiplies rows.
func (r *PricingRepo) Upsert(ctx context.Context, rule *domain.PricingRule) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO pricing_rules (package_type, base_price, price_per_km, price_per_kg, priority_multiplier, is_active)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (package_type) DO UPDATE SET
            base_price = EXCLUDED.base_price,
            price_per_km = EXCLUDED.price_per_km,
            price_per_kg = EXCLUDED.price_per_kg,
            priority_multiplier = EXCLUDED.priority_multiplier,
            is_active = EXCLUDED.is_active,
            updated_at = now()
        RETURNING id, created_at, updated_at
    `, rule.PackageType, rule.BasePrice, rule.PricePerKm, rule.PricePerKg,
		rule.PriorityMultiplier, rule.IsActive).
		Scan(&rule.ID, &rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		if IsCheckViolation(err) {
			return fmt.Errorf("%w: pricing rule %s out of range", apperr.ErrInvalid, rule.PackageType)
		}
		return fmt.Errorf("upsert pricing rule %s: %w", rule.PackageType, err)
	}
	return nil
}
