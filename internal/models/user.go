package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the account record every resource module hangs off of. Each
// entity stores the owning user's ID; presenters resolve it back to the
// username before anything leaves the API.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
