package domain

import "time"

// PricingRule is a rate table entry keyed by package type. At most one
// active rule exists per package type.
type PricingRule struct {
	ID                 string
	PackageType        PackageType
	BasePrice          float64
	PricePerKm         float64
	PricePerKg         *float64
	PriorityMultiplier float64
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// priorityFactors applied on top of the rule multiplier per urgency class.
var priorityFactors = map[PriorityLevel]float64{
	PriorityStandard: 1.0,
	PriorityExpress:  1.25,
	PriorityUrgent:   1.5,
	PrioritySameDay:  2.0,
}

// Estimate computes the estimated price for a shipment of the given weight
// over the given distance at the given priority.
func (r *PricingRule) Estimate(weightKg, distanceKm float64, priority PriorityLevel) float64 {
	price := r.BasePrice + r.PricePerKm*distanceKm
	if r.PricePerKg != nil {
		price += *r.PricePerKg * weightKg
	}
	price *= r.PriorityMultiplier
	if f, ok := priorityFactors[priority]; ok {
		price *= f
	}
	return price
}
