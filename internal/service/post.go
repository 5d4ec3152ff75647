package service

import (
	"errors"
	"strings"

	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/apperr"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/models"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/util"

	"gorm.io/gorm"
)

// PostService orchestrates post CRUD with ownership enforcement.
type PostService struct {
	DB *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{DB: db}
}

type PostInput struct {
	Title       string
	Description string
	CoverImage  string
	Categories  []string
}

// Create persists a new post owned by ownerID.
func (s *PostService) Create(ownerID uint, in PostInput) (*models.Post, error) {
	if missing := util.RequireFields(map[string]string{
		"title": in.Title,
		"desc":  in.Description,
	}); len(missing) > 0 {
		return nil, apperr.Validation("user should provide title and description", missing...)
	}

	cats, err := s.resolveCategories(in.Categories)
	if err != nil {
		return nil, err
	}

	post := models.Post{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		CoverImage:  in.CoverImage,
		OwnerID:     ownerID,
		Categories:  cats,
	}
	if err := s.DB.Create(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Post with this title already exists")
		}
		return nil, apperr.Internal("Post could not be created")
	}

	return s.Get(post.ID)
}

// All returns every post, owners and categories preloaded.
func (s *PostService) All() ([]models.Post, error) {
	var posts []models.Post
	if err := s.DB.
		Preload("Owner").
		Preload("Categories").
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, apperr.Internal("")
	}
	return posts, nil
}

// Get returns one post by id.
func (s *PostService) Get(id uint) (*models.Post, error) {
	var post models.Post
	err := s.DB.
		Preload("Owner").
		Preload("Categories").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Post not found")
		}
		return nil, apperr.Internal("")
	}
	return &post, nil
}

// ByOwner returns the owner's posts, newest first.
func (s *PostService) ByOwner(ownerID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := s.DB.
		Preload("Categories").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, apperr.Internal("")
	}
	return posts, nil
}

// Update applies new content to a post. Only the owner may update.
func (s *PostService) Update(id, requesterID uint, in PostInput) (*models.Post, error) {
	if missing := util.RequireFields(map[string]string{
		"title": in.Title,
		"desc":  in.Description,
	}); len(missing) > 0 {
		return nil, apperr.Validation("user should provide title and description", missing...)
	}

	var post models.Post
	if err := s.DB.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Post not found")
		}
		return nil, apperr.Internal("")
	}

	if post.OwnerID != requesterID {
		return nil, apperr.Forbidden("Unauthorized to update this post")
	}

	updates := map[string]interface{}{
		"title":       strings.TrimSpace(in.Title),
		"description": in.Description,
	}
	if in.CoverImage != "" {
		updates["cover_image"] = in.CoverImage
	}
	if err := s.DB.Model(&post).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Post with this title already exists")
		}
		return nil, apperr.Internal("")
	}

	if in.Categories != nil {
		cats, err := s.resolveCategories(in.Categories)
		if err != nil {
			return nil, err
		}
		if err := s.DB.Model(&post).Association("Categories").Replace(cats); err != nil {
			return nil, apperr.Internal("")
		}
	}

	return s.Get(post.ID)
}

// Delete removes a post. Only the owner may delete.
func (s *PostService) Delete(id, requesterID uint) error {
	var post models.Post
	if err := s.DB.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Post not found")
		}
		return apperr.Internal("")
	}

	if post.OwnerID != requesterID {
		return apperr.Forbidden("Unauthorized to delete this post")
	}

	if err := s.DB.Model(&post).Association("Categories").Clear(); err != nil {
		return apperr.Internal("")
	}
	if err := s.DB.Delete(&post).Error; err != nil {
		return apperr.Internal("")
	}
	return nil
}

// resolveCategories maps names to category rows, creating missing ones.
func (s *PostService) resolveCategories(names []string) ([]models.Category, error) {
	var cats []models.Category
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var cat models.Category
		if err := s.DB.Where("name = ?", name).
			FirstOrCreate(&cat, models.Category{Name: name}).Error; err != nil {
			return nil, apperr.Internal("")
		}
		cats = append(cats, cat)
	}
	return cats, nil
}
