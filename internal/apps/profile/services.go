package profile

import (
	"errors"
	"strings"
	"time"

	"github.com/chatterhq/chatter-backend/internal/services"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service owns all reads and writes of the profiles table.
type Service struct {
	db    *gorm.DB
	users *services.UserService
}

func NewService(db *gorm.DB, users *services.UserService) *Service {
	return &Service{db: db, users: users}
}

// Create persists a new profile stamped with the current time and
// returns it with the owner resolved. The type is stored lower-cased.
func (s *Service) Create(userID uuid.UUID, handle, profileType, bio string) (*Profile, error) {
	now := time.Now()
	p := &Profile{
		ID:           uuid.New(),
		UserID:       userID,
		Handle:       handle,
		Type:         strings.ToLower(profileType),
		Bio:          bio,
		DateCreated:  now,
		DateModified: now,
	}
	if err := s.db.Create(p).Error; err != nil {
		return nil, err
	}
	return s.FindByID(p.ID)
}

// FindByID returns the profile with the given ID, or nil if none exists.
func (s *Service) FindByID(id uuid.UUID) (*Profile, error) {
	var p Profile
	if err := s.db.Preload("User").First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// FindByHandle returns the profile with the given handle, matched
// case-insensitively after trimming, or nil if none exists.
func (s *Service) FindByHandle(handle string) (*Profile, error) {
	var p Profile
	err := s.db.Preload("User").
		Where("LOWER(handle) = LOWER(?)", strings.TrimSpace(handle)).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// ListAll returns every profile, most recently modified first.
func (s *Service) ListAll() ([]Profile, error) {
	var list []Profile
	err := s.db.Preload("User").Order("date_modified DESC").Find(&list).Error
	return list, err
}

// ListByOwnerUsername returns the named user's profiles. An unknown
// username yields an empty list.
func (s *Service) ListByOwnerUsername(username string) ([]Profile, error) {
	owner, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return []Profile{}, nil
	}

	var list []Profile
	err = s.db.Preload("User").Where("user_id = ?", owner.ID).Find(&list).Error
	return list, err
}

// Update replaces the handle and bio and re-stamps the modification
// time. The type is left untouched. Existence is guaranteed by the
// validator chain.
func (s *Service) Update(id uuid.UUID, handle, bio string) (*Profile, error) {
	var p Profile
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	p.Handle = handle
	p.Bio = bio
	p.DateModified = time.Now()
	if err := s.db.Save(&p).Error; err != nil {
		return nil, err
	}
	return s.FindByID(p.ID)
}

// Delete removes the profile and reports whether a row was removed.
func (s *Service) Delete(id uuid.UUID) (bool, error) {
	result := s.db.Delete(&Profile{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

// DeleteAllByOwner removes every profile the given user holds.
func (s *Service) DeleteAllByOwner(ownerID uuid.UUID) error {
	return s.db.Where("user_id = ?", ownerID).Delete(&Profile{}).Error
}
