package profile

import (
	"time"

	"github.com/chatterhq/chatter-backend/internal/models"
	"github.com/google/uuid"
)

// Profile is a public persona a user presents: a handle, a type, and a
// bio. Users can keep several; handles are matched case-insensitively.
type Profile struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	Handle       string      `gorm:"size:140;not null;index" json:"handle"`
	Type         string      `gorm:"size:20;not null" json:"type"`
	Bio          string      `gorm:"type:text" json:"bio"`
	DateCreated  time.Time   `gorm:"not null" json:"date_created"`
	DateModified time.Time   `gorm:"not null;index" json:"date_modified"`
	User         models.User `gorm:"foreignKey:UserID" json:"-"`
}

// HandleMaxLen bounds the handle length; anything longer is rejected
// with 413 before a handler runs.
const HandleMaxLen = 140

// ValidType reports whether the given value, lower-cased, is one of the
// accepted profile types.
func ValidType(t string) bool {
	switch t {
	case "business", "personal", "private":
		return true
	}
	return false
}
