package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"shipping-service/internal/domain"
)

// SeedRepo loads development fixtures. Every statement is idempotent, so
// seeding an already-seeded database is a no-op.
type SeedRepo struct {
	db      *pgxpool.Pool
	pricing *PricingRepo
}

// NewSeedRepo creates a new SeedRepo.
func NewSeedRepo(db *pgxpool.Pool, pricing *PricingRepo) *SeedRepo {
	return &SeedRepo{db: db, pricing: pricing}
}

type seedUser struct {
	email    string
	password string
	role     domain.UserRole
}

var seedUsers = []seedUser{
	{email: "admin@shipping.local", password: "admin123!", role: domain.RoleAdmin},
	{email: "customer@shipping.local", password: "customer123!", role: domain.RoleCustomer},
	{email: "courier@shipping.local", password: "courier123!", role: domain.RoleCourier},
	{email: "support@shipping.local", password: "support123!", role: domain.RoleSupport},
}

func floatPtr(v float64) *float64 { return &v }

var seedPricingRules = []domain.PricingRule{
	{PackageType: domain.PackageEnvelope, BasePrice: 5.00, PricePerKm: 0.50, PriorityMultiplier: 1.00, IsActive: true},
	{PackageType: domain.PackageSmall, BasePrice: 8.00, PricePerKm: 0.75, PricePerKg: floatPtr(0.50), PriorityMultiplier: 1.00, IsActive: true},
	{PackageType: domain.PackageMedium, BasePrice: 12.00, PricePerKm: 1.00, PricePerKg: floatPtr(0.75), PriorityMultiplier: 1.00, IsActive: true},
	{PackageType: domain.PackageLarge, BasePrice: 18.00, PricePerKm: 1.50, PricePerKg: floatPtr(1.00), PriorityMultiplier: 1.00, IsActive: true},
	{PackageType: domain.PackageFragile, BasePrice: 15.00, PricePerKm: 1.25, PricePerKg: floatPtr(1.00), PriorityMultiplier: 1.50, IsActive: true},
	{PackageType: domain.PackageFoodDelivery, BasePrice: 20.00, PricePerKm: 1.75, PricePerKg: floatPtr(1.25), PriorityMultiplier: 1.75, IsActive: true},
	{PackageType: domain.PackageDocuments, BasePrice: 6.00, PricePerKm: 0.60, PriorityMultiplier: 1.00, IsActive: true},
}

// Seed inserts the fixture users and pricing rules.
func (r *SeedRepo) Seed(ctx context.Context) error {
	for _, u := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		_, err = r.db.Exec(ctx, `
            INSERT INTO users (email, password_hash, role, is_active)
            VALUES ($1, $2, $3, true)
            ON CONFLICT (email) DO NOTHING
        `, u.email, string(hash), u.role)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
	}

	for i := range seedPricingRules {
		rule := seedPricingRules[i]
		if err := r.pricing.Upsert(ctx, &rule); err != nil {
			return fmt.Errorf("seed pricing rule: %w", err)
		}
	}

	return nil
}
