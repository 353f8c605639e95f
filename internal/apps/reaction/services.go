package reaction

import (
	"errors"
	"strings"
	"time"

	"github.com/chatterhq/chatter-backend/internal/services"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service owns all reads and writes of the reactions table.
type Service struct {
	db    *gorm.DB
	users *services.UserService
}

func NewService(db *gorm.DB, users *services.UserService) *Service {
	return &Service{db: db, users: users}
}

// Create persists a new reaction stamped with the current time and
// returns it with the owner resolved. The symbol is stored lower-cased.
func (s *Service) Create(userID, postID uuid.UUID, symbol string) (*Reaction, error) {
	now := time.Now()
	r := &Reaction{
		ID:           uuid.New(),
		UserID:       userID,
		PostID:       postID,
		Symbol:       strings.ToLower(symbol),
		DateCreated:  now,
		DateModified: now,
	}
	if err := s.db.Create(r).Error; err != nil {
		return nil, err
	}
	return s.FindByID(r.ID)
}

// FindByID returns the reaction with the given ID, or nil if none
// exists.
func (s *Service) FindByID(id uuid.UUID) (*Reaction, error) {
	var r Reaction
	if err := s.db.Preload("User").First(&r, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

// FindByOwnerAndPost returns the reaction the given user holds on the
// given post, or nil. This lookup is the basis of the
// one-reaction-per-post rule.
func (s *Service) FindByOwnerAndPost(userID, postID uuid.UUID) (*Reaction, error) {
	var r Reaction
	err := s.db.Preload("User").
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&r).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

// ListAll returns every reaction, most recently modified first.
func (s *Service) ListAll() ([]Reaction, error) {
	var list []Reaction
	err := s.db.Preload("User").Order("date_modified DESC").Find(&list).Error
	return list, err
}

// ListByPost returns every reaction on the given post.
func (s *Service) ListByPost(postID uuid.UUID) ([]Reaction, error) {
	var list []Reaction
	err := s.db.Preload("User").Where("post_id = ?", postID).Find(&list).Error
	return list, err
}

// ListByOwnerUsername returns the named user's reactions. An unknown
// username yields an empty list.
func (s *Service) ListByOwnerUsername(username string) ([]Reaction, error) {
	owner, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return []Reaction{}, nil
	}

	var list []Reaction
	err = s.db.Preload("User").Where("user_id = ?", owner.ID).Find(&list).Error
	return list, err
}

// UpdateSymbol replaces the symbol on the user's reaction to the given
// post and re-stamps the modification time. Existence is guaranteed by
// the validator chain.
func (s *Service) UpdateSymbol(userID, postID uuid.UUID, symbol string) (*Reaction, error) {
	var r Reaction
	if err := s.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&r).Error; err != nil {
		return nil, err
	}
	r.Symbol = strings.ToLower(symbol)
	r.DateModified = time.Now()
	if err := s.db.Save(&r).Error; err != nil {
		return nil, err
	}
	return s.FindByID(r.ID)
}

// Delete removes the user's reaction to the given post and reports
// whether a row was removed.
func (s *Service) Delete(userID, postID uuid.UUID) (bool, error) {
	result := s.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&Reaction{})
	return result.RowsAffected > 0, result.Error
}

// DeleteAllByOwner removes every reaction the given user holds.
func (s *Service) DeleteAllByOwner(ownerID uuid.UUID) error {
	return s.db.Where("user_id = ?", ownerID).Delete(&Reaction{}).Error
}
