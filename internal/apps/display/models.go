package display

import (
	"time"

	"github.com/chatterhq/chatter-backend/internal/models"
	"github.com/google/uuid"
)

// Display is a user's display preference. One record per account,
// provisioned at registration with the default type.
type Display struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID     uuid.UUID   `gorm:"type:uuid;not null;index" json:"author_id"`
	DisplayType  string      `gorm:"size:20;not null" json:"display_type"`
	DateModified time.Time   `gorm:"not null;index" json:"date_modified"`
	Author       models.User `gorm:"foreignKey:AuthorID" json:"-"`
}

// TypeDefault is the display type every new account starts with.
const TypeDefault = "default"

// ValidType reports whether the given value, lower-cased, is one of the
// accepted display types.
func ValidType(t string) bool {
	switch t {
	case "default", "dark", "accessible":
		return true
	}
	return false
}
