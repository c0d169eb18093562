package domain

import "time"

// Package represents a shipped item. Weight is strictly positive and the
// declared value is never negative; both are also enforced by check
// constraints in the store.
type Package struct {
	ID                  string
	Type                PackageType
	WeightKg            float64
	Dimensions          *string
	IsFragile           bool
	SpecialInstructions *string
	DeclaredValue       float64
	CreatedAt           time.Time
}
