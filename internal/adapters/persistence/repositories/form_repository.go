package repositories

import (
	"context"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FormRepository handles form definition and submission data access
type FormRepository struct {
	db *gorm.DB
}

// NewFormRepository creates a new form repository
func NewFormRepository(db *gorm.DB) *FormRepository {
	return &FormRepository{db: db}
}

// Create creates a new form
func (r *FormRepository) Create(ctx context.Context, form *models.Form) error {
	return r.db.WithContext(ctx).Create(form).Error
}

// GetByID gets a form with its submissions
func (r *FormRepository) GetByID(ctx context.Context, id string) (*models.Form, error) {
	var form models.Form
	err := r.db.WithContext(ctx).
		Preload("Submissions", func(q *gorm.DB) *gorm.DB {
			return q.Order("created_at DESC")
		}).
		Where("id = ?", id).
		First(&form).Error
	return &form, err
}

// List lists forms matching the given scope, newest first
func (r *FormRepository) List(ctx context.Context, scope func(*gorm.DB) *gorm.DB, limit int) ([]*models.Form, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Form{})
	if scope != nil {
		q = scope(q)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	q = q.Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var forms []*models.Form
	err := q.Find(&forms).Error
	return forms, total, err
}

// Update saves the full form record
func (r *FormRepository) Update(ctx context.Context, form *models.Form) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(form).Error
}

// Delete removes a form permanently
func (r *FormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Form{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Exists checks whether a form ID refers to an existing form
func (r *FormRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Form{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// AddSubmission records one response to a form
func (r *FormRepository) AddSubmission(ctx context.Context, submission *models.FormSubmission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

// ListSubmissions lists a form's submissions, newest first
func (r *FormRepository) ListSubmissions(ctx context.Context, formID string) ([]*models.FormSubmission, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.FormSubmission{}).Where("form_id = ?", formID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var submissions []*models.FormSubmission
	err := q.Order("created_at DESC").Find(&submissions).Error
	return submissions, total, err
}
