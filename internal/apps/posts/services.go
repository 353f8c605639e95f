package posts

import (
	"errors"
	"time"

	"github.com/chatterhq/chatter-backend/internal/services"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service owns all reads and writes of the posts table.
type Service struct {
	db    *gorm.DB
	users *services.UserService
}

func NewService(db *gorm.DB, users *services.UserService) *Service {
	return &Service{db: db, users: users}
}

// Create persists a new post stamped with the current time and returns
// it with the author resolved.
func (s *Service) Create(authorID uuid.UUID, content string) (*Post, error) {
	now := time.Now()
	post := &Post{
		ID:           uuid.New(),
		AuthorID:     authorID,
		Content:      content,
		DateCreated:  now,
		DateModified: now,
	}
	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}
	return s.FindByID(post.ID)
}

// FindByID returns the post with the given ID, or nil if none exists.
func (s *Service) FindByID(id uuid.UUID) (*Post, error) {
	var post Post
	if err := s.db.Preload("Author").First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// ListAll returns every post, most recently modified first.
func (s *Service) ListAll() ([]Post, error) {
	var list []Post
	err := s.db.Preload("Author").Order("date_modified DESC").Find(&list).Error
	return list, err
}

// ListByAuthorUsername returns the posts of the named author. An
// unknown username yields an empty list, like the owner lookup it
// delegates to.
func (s *Service) ListByAuthorUsername(username string) ([]Post, error) {
	author, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return []Post{}, nil
	}

	var list []Post
	err = s.db.Preload("Author").Where("author_id = ?", author.ID).Find(&list).Error
	return list, err
}

// Update replaces the content and re-stamps the modification time.
// Existence is guaranteed by the validator chain.
func (s *Service) Update(id uuid.UUID, content string) (*Post, error) {
	var post Post
	if err := s.db.First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	post.Content = content
	post.DateModified = time.Now()
	if err := s.db.Save(&post).Error; err != nil {
		return nil, err
	}
	return s.FindByID(post.ID)
}

// Delete removes the post and reports whether a row was removed.
func (s *Service) Delete(id uuid.UUID) (bool, error) {
	result := s.db.Delete(&Post{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

// DeleteAllByOwner removes every post of the given author.
func (s *Service) DeleteAllByOwner(ownerID uuid.UUID) error {
	return s.db.Where("author_id = ?", ownerID).Delete(&Post{}).Error
}
