package incognito

import (
	"github.com/chatterhq/chatter-backend/internal/models"
	"github.com/google/uuid"
)

// Incognito is an anonymous browsing session. A user can hold any
// number of them; they carry no state beyond their owner.
type Incognito struct {
	ID     uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	User   models.User `gorm:"foreignKey:UserID" json:"-"`
}
