package posts

import (
	"time"

	"github.com/chatterhq/chatter-backend/internal/models"
	"github.com/google/uuid"
)

// Post is a short message other users can react to.
type Post struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID     uuid.UUID   `gorm:"type:uuid;not null;index" json:"author_id"`
	Content      string      `gorm:"size:140;not null" json:"content"`
	DateCreated  time.Time   `gorm:"not null" json:"date_created"`
	DateModified time.Time   `gorm:"not null;index" json:"date_modified"`
	Author       models.User `gorm:"foreignKey:AuthorID" json:"-"`
}
