package reaction

import (
	"time"

	"github.com/chatterhq/chatter-backend/internal/models"
	"github.com/google/uuid"
)

// Reaction records one user's response to one post. The one-reaction-
// per-(user, post) rule is enforced by a validator pre-check, not a
// database constraint; see DESIGN.md for the known race this leaves.
type Reaction struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	PostID       uuid.UUID   `gorm:"type:uuid;not null;index" json:"post_id"`
	Symbol       string      `gorm:"size:20;not null" json:"symbol"`
	DateCreated  time.Time   `gorm:"not null" json:"date_created"`
	DateModified time.Time   `gorm:"not null;index" json:"date_modified"`
	User         models.User `gorm:"foreignKey:UserID" json:"-"`
}

// ValidSymbol reports whether the given value, lower-cased, is one of
// the accepted reaction symbols.
func ValidSymbol(s string) bool {
	switch s {
	case "heart", "like", "dislike":
		return true
	}
	return false
}
