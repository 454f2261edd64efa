package models

import (
	"time"
)

// User represents an account. Only admins may mutate content.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Role         string    `json:"role" db:"role"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// ValidRoles defines allowed user roles
var ValidRoles = map[string]bool{
	"admin": true,
	"user":  true,
}

// ProfilePatch is the self-service profile update payload
type ProfilePatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// Fields returns the storage columns touched by the patch
func (p *ProfilePatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Email != nil {
		fields["email"] = *p.Email
	}
	return fields
}
