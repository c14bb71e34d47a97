package repositories

import (
	"context"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContentRepository handles generic CMS content data access
type ContentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// Create creates a new content entry
func (r *ContentRepository) Create(ctx context.Context, content *models.Content) error {
	return r.db.WithContext(ctx).Create(content).Error
}

// GetByID gets a content entry with its author
func (r *ContentRepository) GetByID(ctx context.Context, id string) (*models.Content, error) {
	var content models.Content
	err := r.db.WithContext(ctx).Preload("Author").Where("id = ?", id).First(&content).Error
	return &content, err
}

// GetBySlug gets a content entry by its unique slug
func (r *ContentRepository) GetBySlug(ctx context.Context, slug string) (*models.Content, error) {
	var content models.Content
	err := r.db.WithContext(ctx).Preload("Author").Where("slug = ?", slug).First(&content).Error
	return &content, err
}

// List lists content entries matching the given scope, newest first
func (r *ContentRepository) List(ctx context.Context, scope func(*gorm.DB) *gorm.DB, limit int) ([]*models.Content, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Content{})
	if scope != nil {
		q = scope(q)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	q = q.Preload("Author").Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var contents []*models.Content
	err := q.Find(&contents).Error
	return contents, total, err
}

// Update saves the full content record
func (r *ContentRepository) Update(ctx context.Context, content *models.Content) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(content).Error
}

// Delete removes a content entry permanently
func (r *ContentRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Content{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementViewCount bumps the content view counter without touching
// updated_at
func (r *ContentRepository) IncrementViewCount(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&models.Content{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// SlugExists checks whether a slug is already taken
func (r *ContentRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Content{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}
