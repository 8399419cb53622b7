package cnst

// UserRole represents the role of a platform user
type UserRole string

const (
	// RoleLandlord represents a property owner
	RoleLandlord UserRole = "landlord"
	// RoleTenant represents a renter
	RoleTenant UserRole = "tenant"
)

// UserStatus gates API access for a user account
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
	UserRemoved  UserStatus = "removed"
)

// RequestStatus is the lifecycle state of a verification request.
// pending -> approved | rejected; approved -> moved_out (terminal).
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
	RequestMovedOut RequestStatus = "moved_out"
)

// StayStatus is the lifecycle state of a tenant stay
type StayStatus string

const (
	StayActive   StayStatus = "ACTIVE"
	StayMovedOut StayStatus = "MOVED_OUT"
)

// BillStatus is the lifecycle state of a bill
type BillStatus string

const (
	BillPending BillStatus = "PENDING"
	BillPaid    BillStatus = "PAID"
	BillOverdue BillStatus = "OVERDUE"
)
