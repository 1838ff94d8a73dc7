package domain

import "strings"

// Role is the closed set of account kinds.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleSalon    Role = "salon"
	RoleSeller   Role = "seller"
	RoleAdmin    Role = "admin"
)

// Roles lists every role in display order.
var Roles = []Role{RoleCustomer, RoleProvider, RoleSalon, RoleSeller, RoleAdmin}

// ParseRole normalizes s and rejects anything outside the closed set.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", ValidationError{Field: "role", Msg: "unknown role " + `"` + s + `"`}
	}
	return r, nil
}

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleProvider, RoleSalon, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// SelfService reports whether a user may pick this role at sign up.
func (r Role) SelfService() bool {
	return r.Valid() && r != RoleAdmin
}

// OffersServices is true for roles that receive appointments.
func (r Role) OffersServices() bool {
	return r == RoleProvider || r == RoleSalon
}

func (r Role) String() string { return string(r) }

// RoleVisitor has one method per role. Adding a role to the set means adding
// a method here, which breaks every implementation until it handles the new case.
type RoleVisitor[T any] interface {
	Customer() (T, error)
	Provider() (T, error)
	Salon() (T, error)
	Seller() (T, error)
	Admin() (T, error)
}

// VisitRole dispatches r to the matching visitor method.
func VisitRole[T any](r Role, v RoleVisitor[T]) (T, error) {
	switch r {
	case RoleCustomer:
		return v.Customer()
	case RoleProvider:
		return v.Provider()
	case RoleSalon:
		return v.Salon()
	case RoleSeller:
		return v.Seller()
	case RoleAdmin:
		return v.Admin()
	}
	var zero T
	return zero, ValidationError{Field: "role", Msg: "unknown role " + `"` + string(r) + `"`}
}
