package repositories

import (
	"context"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StaffRepository handles staff data access
type StaffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// Create creates a new staff record
func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

// GetByID gets a staff record by ID
func (r *StaffRepository) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	var staff models.Staff
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&staff).Error
	return &staff, err
}

// List lists staff matching the given scope, name ascending
func (r *StaffRepository) List(ctx context.Context, scope func(*gorm.DB) *gorm.DB, limit int) ([]*models.Staff, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Staff{})
	if scope != nil {
		q = scope(q)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	q = q.Order("name ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var staff []*models.Staff
	err := q.Find(&staff).Error
	return staff, total, err
}

// Update saves the full staff record
func (r *StaffRepository) Update(ctx context.Context, staff *models.Staff) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(staff).Error
}

// Delete removes a staff record permanently
func (r *StaffRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Staff{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExistsByEmployeeID checks whether an employee ID is already registered
func (r *StaffRepository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Staff{}).Where("employee_id = ?", employeeID).Count(&count).Error
	return count > 0, err
}
