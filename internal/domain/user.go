package domain

import "time"

// Roles known to the storefront. Admins own a private slice of the
// catalog and fulfil orders directed to them; everything else is a shopper.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account. Role is a column on the record,
// never derived from a well-known identity.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsAdmin reports whether the account may manage catalog rows and
// complete orders.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
