package services

import (
	"errors"

	"github.com/chatterhq/chatter-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService is the owner-lookup collaborator every resource module
// shares: resolve an account by ID, or by its case-insensitive username.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// FindByID returns the user with the given ID, or nil if none exists.
func (s *UserService) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByUsername returns the user with the given username, matched
// case-insensitively, or nil if none exists.
func (s *UserService) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("LOWER(username) = LOWER(?)", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
