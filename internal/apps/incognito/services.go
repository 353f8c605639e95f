package incognito

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service owns all reads and writes of the incognitos table.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create opens a new session for the given owner and returns it with
// the owner resolved.
func (s *Service) Create(userID uuid.UUID) (*Incognito, error) {
	in := &Incognito{
		ID:     uuid.New(),
		UserID: userID,
	}
	if err := s.db.Create(in).Error; err != nil {
		return nil, err
	}
	return s.FindByID(in.ID)
}

// FindByID returns the session with the given ID, or nil if none exists.
func (s *Service) FindByID(id uuid.UUID) (*Incognito, error) {
	var in Incognito
	if err := s.db.Preload("User").First(&in, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &in, nil
}

// ListByOwner returns every session the given user holds.
func (s *Service) ListByOwner(userID uuid.UUID) ([]Incognito, error) {
	var list []Incognito
	err := s.db.Preload("User").Where("user_id = ?", userID).Find(&list).Error
	return list, err
}

// DeleteOne removes the session and reports whether a row was removed.
func (s *Service) DeleteOne(id uuid.UUID) (bool, error) {
	result := s.db.Delete(&Incognito{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

// DeleteAllByOwner removes every session the given user holds.
func (s *Service) DeleteAllByOwner(userID uuid.UUID) error {
	return s.db.Where("user_id = ?", userID).Delete(&Incognito{}).Error
}
