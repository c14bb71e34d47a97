package repositories

import (
	"context"
	"time"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ActivityRepository handles activity data access
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create creates a new activity
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

// GetByID gets an activity with its author, category and project
func (r *ActivityRepository) GetByID(ctx context.Context, id string) (*models.Activity, error) {
	var activity models.Activity
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Project").
		Where("id = ?", id).
		First(&activity).Error
	return &activity, err
}

// List lists activities matching the given scope, soonest start date first.
// Columns are table-qualified because category filters join the categories
// table.
func (r *ActivityRepository) List(ctx context.Context, scope func(*gorm.DB) *gorm.DB, limit int) ([]*models.Activity, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Activity{})
	if scope != nil {
		q = scope(q)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	q = q.Preload("Author").Preload("Category").
		Order("activities.start_date ASC, activities.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var activities []*models.Activity
	err := q.Find(&activities).Error
	return activities, total, err
}

// Update saves the full activity record
func (r *ActivityRepository) Update(ctx context.Context, activity *models.Activity) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(activity).Error
}

// Delete removes an activity permanently
func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Activity{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CompleteEnded marks in-progress activities whose end date has passed as
// completed and returns how many were updated
func (r *ActivityRepository) CompleteEnded(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Activity{}).
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", "IN_PROGRESS", now).
		Update("status", "COMPLETED")
	return res.RowsAffected, res.Error
}
