// Package users stores the accounts chat turns and projects belong to.
package users

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("user not found")
	ErrExists   = errors.New("username or email already exists")
)

type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// UpsertUser describes an account provisioned from an external identity
// provider. It never carries a usable password.
type UpsertUser struct {
	ExternalID string
	Email      string
}

// ExternalUsername is the local username reserved for an external identity.
func ExternalUsername(externalID string) string {
	return "firebase:" + externalID
}

// disabledPassword can never match a bcrypt or sha256 hash.
const disabledPassword = "!"
