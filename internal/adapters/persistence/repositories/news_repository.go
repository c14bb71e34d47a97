package repositories

import (
	"context"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewsRepository handles news article data access
type NewsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// Create creates a new article
func (r *NewsRepository) Create(ctx context.Context, article *models.News) error {
	return r.db.WithContext(ctx).Create(article).Error
}

// GetByID gets an article with its author and category
func (r *NewsRepository) GetByID(ctx context.Context, id string) (*models.News, error) {
	var article models.News
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Where("id = ?", id).
		First(&article).Error
	return &article, err
}

// GetBySlug gets an article by its unique slug
func (r *NewsRepository) GetBySlug(ctx context.Context, slug string) (*models.News, error) {
	var article models.News
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Where("slug = ?", slug).
		First(&article).Error
	return &article, err
}

// List lists articles matching the given scope, urgent and recent first
func (r *NewsRepository) List(ctx context.Context, scope func(*gorm.DB) *gorm.DB, limit int) ([]*models.News, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.News{})
	if scope != nil {
		q = scope(q)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	q = q.Preload("Author").Preload("Category").
		Order("CASE priority WHEN 'URGENT' THEN 0 WHEN 'HIGH' THEN 1 WHEN 'MEDIUM' THEN 2 ELSE 3 END ASC, published_at DESC, created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var articles []*models.News
	err := q.Find(&articles).Error
	return articles, total, err
}

// Update saves the full article record
func (r *NewsRepository) Update(ctx context.Context, article *models.News) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(article).Error
}

// Delete removes an article permanently
func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.News{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementViewCount bumps the article view counter without touching
// updated_at
func (r *NewsRepository) IncrementViewCount(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&models.News{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// SlugExists checks whether a slug is already taken
func (r *NewsRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.News{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}
