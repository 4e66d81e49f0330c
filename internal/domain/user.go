package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

// User is the authenticated identity as reported by the auth provider.
type User struct {
	ID    uuid.UUID
	Email string
	Role  string
}

// Profile is the stored per-user record backing the admin user manager.
type Profile struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	Username  string
	AvatarURL string
	Role      string

	CreatedAt time.Time
}
