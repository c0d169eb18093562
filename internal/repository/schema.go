package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// enum DDL runs unguarded, so duplicate-object errors are tolerated
// to keep bootstrap re-runnable.
var enumStatements = []string{
	`CREATE TYPE user_role AS ENUM ('CUSTOMER', 'COURIER', 'ADMIN', 'SUPPORT')`,
	`CREATE TYPE order_status AS ENUM (
        'PENDING', 'ACCEPTED', 'PICKED_UP', 'IN_TRANSIT',
        'OUT_FOR_DELIVERY', 'DELIVERED', 'CANCELLED', 'FAILED_DELIVERY'
    )`,
	`CREATE TYPE package_type AS ENUM (
        'ENVELOPE', 'SMALL_PACKAGE', 'MEDIUM_PACKAGE', 'LARGE_PACKAGE',
        'FRAGILE', 'FOOD_DELIVERY', 'DOCUMENTS'
    )`,
	`CREATE TYPE priority_level AS ENUM ('STANDARD', 'EXPRESS', 'URGENT', 'SAME_DAY')`,
}

var tableStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
        id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
        email VARCHAR(255) UNIQUE NOT NULL,
        password_hash VARCHAR(255) NOT NULL,
        role user_role NOT NULL DEFAULT 'CUSTOMER',
        is_active BOOLEAN NOT NULL DEFAULT true,
        created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
    )`,
	`CREATE TABLE IF NOT EXISTS user_profiles (
        id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
        user_id UUID UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
        first_name VARCHAR(100) NOT NULL,
        last_name VARCHAR(100) NOT NULL,
        phone VARCHAR(20),
        avatar_url TEXT,
        created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
    )`,
	`CREATE TABLE IF NOT EXISTS courier_profiles (
        id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
        user_id UUID UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
        vehicle_type VARCHAR(50) NOT NULL,
        license_plate VARCHAR(20) UNIQUE NOT NULL,
        rating DECIMAL(3,2) NOT NULL DEFAULT 5.00 CHECK (rating >= 0 AND rating <= 5),
        total_deliveries INTEGER NOT NULL DEFAULT 0,
        is_available BOOLEAN NOT NULL DEFAULT true,
        created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
    )`,
	`CREATE TABLE IF NOT EXISTS addresses (
        id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
        street VARCHAR(255) NOT NULL,
        city VARCHAR(100) NOT NULL,
        state VARCHAR(100) NOT NULL,
        zip_code VARCHAR(20) NOT NULL,
        country VARCHAR(100) NOT NULL DEFAULT 'USA',
        latitude DECIMAL(10,8),
        longitude DECIMAL(11,8),
        created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
    )`,
	`CREATE TABLE IF NOT EXISTS packages (
        id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
        type package_type NOT NULL,
        weight_kg DECIMAL(8,2) NOT NULL CHECK (weight_kg > 0),
        dimensions VARCHAR(50),
        is_fragile BOOLEAN NOT NULL DEFAULT false,
        special_instructions TEXT,
        declared_value DECIMAL(10,2) NOT NULL DEFAULT 0 CHECK (declared_value >= 0),
        created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
    )`,
	`CREATE TABLE IF NOT EXISTS orders (
        id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
        order_number VARCHAR(50) UNIQUE NOT NULL,
        status order_status NOT NULL DEFAULT 'PENDING',
        priority priority_level NOT NULL DEFAULT 'STANDARD',
        customer_id UUID NOT NULL REFERENCES users(id),
        courier_id UUID REFERENCES users(id),
        pickup_address_id UUID NOT NULL REFERENCES addresses(id),
        delivery_address_id UUID NOT NULL REFERENCES addresses(id),
        package_id UUID UNIQUE NOT NULL REFERENCES packages(id),
        requested_pickup_date TIMESTAMPTZ,
        actual_pickup_date TIMESTAMPTZ,
        estimated_delivery_date TIMESTAMPTZ,
        actual_delivery_date TIMESTAMPTZ,
        estimated_price DECIMAL(10,2) NOT NULL CHECK (estimated_price >= 0),
        final_price DECIMAL(10,2) CHECK (final_price >= 0),
        created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
    )`,
	`CREATE TABLE IF NOT EXISTS pricing_rules (
        id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
        package_type package_type UNIQUE NOT NULL,
        base_price DECIMAL(10,2) NOT NULL CHECK (base_price >= 0),
        price_per_km DECIMAL(10,2) NOT NULL CHECK (price_per_km >= 0),
        price_per_kg DECIMAL(10,2) CHECK (price_per_kg >= 0),
        priority_multiplier DECIMAL(4,2) NOT NULL DEFAULT 1.00 CHECK (priority_multiplier > 0),
        is_active BOOLEAN NOT NULL DEFAULT true,
        created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
    )`,
	`CREATE TABLE IF NOT EXISTS order_tracking (
        id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
        seq BIGSERIAL UNIQUE NOT NULL,
        order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
        status order_status NOT NULL,
        message TEXT,
        latitude DECIMAL(10,8),
        longitude DECIMAL(11,8),
        updated_by UUID NOT NULL REFERENCES users(id),
        timestamp TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
    )`,
}

var indexStatements = []string{
	`CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders(customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_courier_id ON orders(courier_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_order_number ON orders(order_number)`,
	`CREATE INDEX IF NOT EXISTS idx_order_tracking_order_id ON order_tracking(order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_order_tracking_timestamp ON order_tracking(timestamp)`,
	`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)`,
	`CREATE INDEX IF NOT EXISTS idx_pricing_rules_package_type ON pricing_rules(package_type)`,
}

// SchemaRepo bootstraps the database schema.
type SchemaRepo struct{ db *pgxpool.Pool }

// NewSchemaRepo creates a new SchemaRepo.
func NewSchemaRepo(db *pgxpool.Pool) *SchemaRepo { return &SchemaRepo{db: db} }

// EnsureSchema creates the extension, enum types, tables and indexes.
// Safe to run on every start: everything either guards with IF NOT EXISTS
// or tolerates the duplicate-object error.
func (r *SchemaRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`); err != nil {
		return fmt.Errorf("create extension: %w", err)
	}

	for _, stmt := range enumStatements {
		if _, err := r.db.Exec(ctx, stmt); err != nil && !IsDuplicateObject(err) {
			return fmt.Errorf("create enum: %w", err)
		}
	}

	for _, stmt := range tableStatements {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	for _, stmt := range indexStatements {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return nil
}

// Reset truncates every table in one transaction, restarting identity and
// cascading through foreign keys. Running it twice leaves the same empty state.
func (r *SchemaRepo) Reset(ctx context.Context) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
        TRUNCATE TABLE
            order_tracking, orders, pricing_rules, packages, addresses,
            courier_profiles, user_profiles, users
        RESTART IDENTITY CASCADE
    `)
	if err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	return tx.Commit(ctx)
}
