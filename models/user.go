package models

import "time"

type User struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Name          string    `json:"name"`
	Email         string    `gorm:"unique;not null" json:"email"`
	EmailVerified bool      `json:"emailVerified"`
	Role          string    `json:"role,omitempty"`
	Sessions      []Session `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Session rows cascade when the owning user is deleted.
type Session struct {
	ID        string    `gorm:"primaryKey"`
	UserID    string    `gorm:"index;not null"`
	Token     string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Verification holds email verification tokens. Identifier is the user's
// email, not a foreign key, so these rows do NOT cascade and must be
// deleted explicitly before the user row.
type Verification struct {
	ID         string `gorm:"primaryKey"`
	Identifier string `gorm:"index;not null"`
	Value      string
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// PublicUser is the projection returned by the directory listing; no
// credential fields.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
