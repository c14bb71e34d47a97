package repositories

import (
	"context"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles project data access
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// GetByID gets a project with its author and activities
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Activities").
		Where("id = ?", id).
		First(&project).Error
	return &project, err
}

// GetByCode gets a project by its unique code
func (r *ProjectRepository) GetByCode(ctx context.Context, code string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&project).Error
	return &project, err
}

// List lists projects matching the given scope, newest academic year first
func (r *ProjectRepository) List(ctx context.Context, scope func(*gorm.DB) *gorm.DB, limit int) ([]*models.Project, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Project{})
	if scope != nil {
		q = scope(q)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	q = q.Preload("Author").Order("academic_year DESC, created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var projects []*models.Project
	err := q.Find(&projects).Error
	return projects, total, err
}

// Update saves the full project record
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(project).Error
}

// Delete removes a project permanently
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Exists checks whether a project ID refers to an existing project
func (r *ProjectRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ExistsByCode checks whether a project code is already used
func (r *ProjectRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}
