// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// DefaultUserName is used when neither the profile nor the identity provider knows a name.
const DefaultUserName = "User"

// User is the profile record of a shopper or administrator.
// Its ID is the session subject identifier assigned by the identity provider.
type User struct {
	ID        string    `json:"id"`              // Session subject identifier, also the profile document key.
	Email     string    `json:"email"`           // The user's primary contact email, used as the login identifier.
	Name      string    `json:"name"`            // The user's display name.
	Role      *Role     `json:"role,omitempty"`  // Optional role; nil means a regular customer.
	Phone     *string   `json:"phone,omitempty"` // Optional contact phone.
	Addresses []Address `json:"addresses"`       // Saved shipping addresses, never nil once published.
	CreatedAt time.Time `json:"createdAt"`       // Timestamp of when the profile was created.
}

// UserPatch carries the fields of a partial profile update.
// A nil field means "leave the stored value untouched".
type UserPatch struct {
	Name      *string    `json:"name,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	Addresses *[]Address `json:"addresses,omitempty"`
}

// IsEmpty reports whether the patch sets no field at all.
func (p *UserPatch) IsEmpty() bool {
	return p == nil || (p.Name == nil && p.Phone == nil && p.Addresses == nil)
}

// ApplyTo returns a copy of user with the patch fields laid over it.
func (p *UserPatch) ApplyTo(user *User) *User {
	if user == nil {
		return nil
	}

	merged := *user
	if p == nil {
		return &merged
	}
	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.Phone != nil {
		phone := *p.Phone
		merged.Phone = &phone
	}
	if p.Addresses != nil {
		merged.Addresses = append([]Address(nil), (*p.Addresses)...)
	}

	return &merged
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role Role) bool {
	return u != nil && u.Role != nil && *u.Role == role
}

// NewSynthesizedUser builds the minimal profile published when a signed-in
// principal has no profile document yet.
func NewSynthesizedUser(subject, email, displayName string) *User {
	name := displayName
	if name == "" {
		name = DefaultUserName
	}

	return &User{
		ID:        subject,
		Email:     email,
		Name:      name,
		Addresses: []Address{},
	}
}
