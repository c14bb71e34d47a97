package repositories

import (
	"context"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PositionRepository handles committee position data access
type PositionRepository struct {
	db *gorm.DB
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db *gorm.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

// Create creates a new position
func (r *PositionRepository) Create(ctx context.Context, position *models.Position) error {
	return r.db.WithContext(ctx).Create(position).Error
}

// GetByID gets a position by ID
func (r *PositionRepository) GetByID(ctx context.Context, id string) (*models.Position, error) {
	var position models.Position
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&position).Error
	return &position, err
}

// GetByTitle gets a position by its unique title
func (r *PositionRepository) GetByTitle(ctx context.Context, title string) (*models.Position, error) {
	var position models.Position
	err := r.db.WithContext(ctx).Where("title = ?", title).First(&position).Error
	return &position, err
}

// List lists positions matching the given scope, ordered by level then title
func (r *PositionRepository) List(ctx context.Context, scope func(*gorm.DB) *gorm.DB, limit int) ([]*models.Position, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Position{})
	if scope != nil {
		q = scope(q)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	q = q.Order("level ASC, title ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var positions []*models.Position
	err := q.Find(&positions).Error
	return positions, total, err
}

// Update saves the full position record
func (r *PositionRepository) Update(ctx context.Context, position *models.Position) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(position).Error
}

// Delete removes a position permanently
func (r *PositionRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Position{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExistsByTitle checks whether a position title is already defined
func (r *PositionRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Position{}).Where("title = ?", title).Count(&count).Error
	return count > 0, err
}

// CategoryRepository handles category master data access
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// GetByID gets a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	return &category, err
}

// GetBySlug gets a category by its unique slug
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	return &category, err
}

// List lists active categories, name ascending
func (r *CategoryRepository) List(ctx context.Context) ([]*models.Category, int64, error) {
	var categories []*models.Category
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&categories).Error
	return categories, int64(len(categories)), err
}

// Exists checks whether a category ID refers to an existing category
func (r *CategoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
