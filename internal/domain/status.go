package domain

type (
	// OrderStatus represents the lifecycle state of an order.
	OrderStatus string
	// PriorityLevel represents the urgency class of an order.
	PriorityLevel string
	// PackageType represents the category of a package.
	PackageType string
	// UserRole represents the role of a user.
	UserRole string
)

// List of possible order statuses
const (
	StatusPending        OrderStatus = "PENDING"
	StatusAccepted       OrderStatus = "ACCEPTED"
	StatusPickedUp       OrderStatus = "PICKED_UP"
	StatusInTransit      OrderStatus = "IN_TRANSIT"
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      OrderStatus = "DELIVERED"
	StatusCancelled      OrderStatus = "CANCELLED"
	StatusFailedDelivery OrderStatus = "FAILED_DELIVERY"
)

// List of possible order priorities
const (
	PriorityStandard PriorityLevel = "STANDARD"
	PriorityExpress  PriorityLevel = "EXPRESS"
	PriorityUrgent   PriorityLevel = "URGENT"
	PrioritySameDay  PriorityLevel = "SAME_DAY"
)

// List of possible package types
const (
	PackageEnvelope     PackageType = "ENVELOPE"
	PackageSmall        PackageType = "SMALL_PACKAGE"
	PackageMedium       PackageType = "MEDIUM_PACKAGE"
	PackageLarge        PackageType = "LARGE_PACKAGE"
	PackageFragile      PackageType = "FRAGILE"
	PackageFoodDelivery PackageType = "FOOD_DELIVERY"
	PackageDocuments    PackageType = "DOCUMENTS"
)

// List of possible user roles
const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleCourier  UserRole = "COURIER"
	RoleAdmin    UserRole = "ADMIN"
	RoleSupport  UserRole = "SUPPORT"
)

var allowedStatuses = [...]OrderStatus{
	StatusPending, StatusAccepted, StatusPickedUp, StatusInTransit,
	StatusOutForDelivery, StatusDelivered, StatusCancelled, StatusFailedDelivery,
}

var allowedPriorities = [...]PriorityLevel{
	PriorityStandard, PriorityExpress, PriorityUrgent, PrioritySameDay,
}

var allowedPackageTypes = [...]PackageType{
	PackageEnvelope, PackageSmall, PackageMedium, PackageLarge,
	PackageFragile, PackageFoodDelivery, PackageDocuments,
}

var allowedRoles = [...]UserRole{
	RoleCustomer, RoleCourier, RoleAdmin, RoleSupport,
}

// Valid checks if the OrderStatus is valid
func (s OrderStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions are allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusFailedDelivery
}

// forwardTransitions maps each status to the next statuses reachable along
// the normal delivery flow. CANCELLED and FAILED_DELIVERY are additionally
// reachable from any non-terminal status, see CanTransition.
var forwardTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:        {StatusAccepted},
	StatusAccepted:       {StatusPickedUp},
	StatusPickedUp:       {StatusInTransit},
	StatusInTransit:      {StatusOutForDelivery},
	StatusOutForDelivery: {StatusDelivered},
}

// CanTransition reports whether an order in status s may move to next.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s.Terminal() {
		return false
	}
	if next == StatusCancelled || next == StatusFailedDelivery {
		return true
	}
	for _, v := range forwardTransitions[s] {
		if next == v {
			return true
		}
	}
	return false
}

// Valid checks if the PriorityLevel is valid
func (p PriorityLevel) Valid() bool {
	for _, v := range allowedPriorities {
		if p == v {
			return true
		}
	}
	return false
}

// Valid checks if the PackageType is valid
func (t PackageType) Valid() bool {
	for _, v := range allowedPackageTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Valid checks if the UserRole is valid
func (r UserRole) Valid() bool {
	for _, v := range allowedRoles {
		if r == v {
			return true
		}
	}
	return false
}
