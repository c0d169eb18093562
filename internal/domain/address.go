package domain

import "time"

// DefaultCountry is assigned to addresses created without an explicit country.
const DefaultCountry = "USA"

// Address is an immutable pickup or delivery location. Duplicate addresses
// are permitted; rows are never updated after creation.
type Address struct {
	ID        string
	Street    string
	City      string
	State     string
	ZipCode   string
	Country   string
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
}

// HasCoordinates reports whether both latitude and longitude are set.
func (a *Address) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}
