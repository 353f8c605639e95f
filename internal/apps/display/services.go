package display

import (
	"errors"
	"strings"
	"time"

	"github.com/chatterhq/chatter-backend/internal/services"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service owns all reads and writes of the displays table.
type Service struct {
	db    *gorm.DB
	users *services.UserService
}

func NewService(db *gorm.DB, users *services.UserService) *Service {
	return &Service{db: db, users: users}
}

// Create persists a display preference of the default type for the
// given owner and returns it with the owner resolved.
func (s *Service) Create(authorID uuid.UUID) (*Display, error) {
	d := &Display{
		ID:           uuid.New(),
		AuthorID:     authorID,
		DisplayType:  TypeDefault,
		DateModified: time.Now(),
	}
	if err := s.db.Create(d).Error; err != nil {
		return nil, err
	}
	return s.FindByID(d.ID)
}

// FindByID returns the display with the given ID, or nil if none exists.
func (s *Service) FindByID(id uuid.UUID) (*Display, error) {
	var d Display
	if err := s.db.Preload("Author").First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// ListAll returns every display, most recently modified first.
func (s *Service) ListAll() ([]Display, error) {
	var list []Display
	err := s.db.Preload("Author").Order("date_modified DESC").Find(&list).Error
	return list, err
}

// FindByAuthorUsername returns the named user's display, or nil when
// either the user or the display is absent.
func (s *Service) FindByAuthorUsername(username string) (*Display, error) {
	author, err := s.users.FindByUsername(username)
	if err != nil || author == nil {
		return nil, err
	}

	var d Display
	if err := s.db.Preload("Author").First(&d, "author_id = ?", author.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// UpdateType sets a new display type, normalized to lower case, and
// re-stamps the modification time. Existence is guaranteed by the
// validator chain.
func (s *Service) UpdateType(id uuid.UUID, displayType string) (*Display, error) {
	var d Display
	if err := s.db.First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	d.DisplayType = strings.ToLower(displayType)
	d.DateModified = time.Now()
	if err := s.db.Save(&d).Error; err != nil {
		return nil, err
	}
	return s.FindByID(d.ID)
}

// DeleteAllByOwner removes the given owner's display records.
func (s *Service) DeleteAllByOwner(ownerID uuid.UUID) error {
	return s.db.Where("author_id = ?", ownerID).Delete(&Display{}).Error
}
