package domain

import "time"

// User represents an account able to place or carry orders.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         UserRole
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserProfile is a 1:1 extension of a customer User.
type UserProfile struct {
	ID        string
	UserID    string
	FirstName string
	LastName  string
	Phone     *string
	AvatarURL *string
	CreatedAt time.Time
}

// CourierProfile is a 1:1 extension of a courier User.
type CourierProfile struct {
	ID              string
	UserID          string
	VehicleType     string
	LicensePlate    string
	Rating          float64
	TotalDeliveries int
	IsAvailable     bool
	CreatedAt       time.Time
}
