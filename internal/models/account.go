package models

import "time"

// Account represents an account row in the database
type Account struct {
	ID           int64     `json:"id" db:"id"`                 // Surrogate primary key
	Username     string    `json:"username" db:"username"`     // Unique username, empty for legacy rows
	Email        string    `json:"email" db:"email"`           // Unique, lower-cased email
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
