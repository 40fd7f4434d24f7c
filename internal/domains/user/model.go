package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the credential store record.
type User struct {
	ID    uuid.UUID `db:"id" json:"id"`
	Email string    `db:"email" json:"email"`

	// Never expose in JSON. Passwords are stored hashed with bcrypt.
	PasswordHash string `db:"password_hash" json:"-"`

	Name      *string `db:"name" json:"name,omitempty"`
	AvatarURL *string `db:"avatar_url" json:"avatar_url,omitempty"`
	Bio       *string `db:"bio" json:"bio,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// DisplayName returns the name claim for tokens; empty when unset.
func (u *User) DisplayName() string {
	if u.Name == nil {
		return ""
	}
	return *u.Name
}
