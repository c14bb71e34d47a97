package repositories

import (
	"context"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MemberRepository handles member profile data access
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create creates a new member profile
func (r *MemberRepository) Create(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// GetByID gets a member with its user account
func (r *MemberRepository) GetByID(ctx context.Context, id string) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&member).Error
	return &member, err
}

// GetByUserID gets the member profile linked to a user account
func (r *MemberRepository) GetByUserID(ctx context.Context, userID string) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&member).Error
	return &member, err
}

// List lists members matching the given scope, newest first
func (r *MemberRepository) List(ctx context.Context, scope func(*gorm.DB) *gorm.DB, limit int) ([]*models.Member, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Member{})
	if scope != nil {
		q = scope(q)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	q = q.Preload("User").Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var members []*models.Member
	err := q.Find(&members).Error
	return members, total, err
}

// Update saves the full member record
func (r *MemberRepository) Update(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(member).Error
}

// Delete removes a member profile permanently
func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Member{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExistsByStudentID checks whether a student ID is already enrolled
func (r *MemberRepository) ExistsByStudentID(ctx context.Context, studentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Member{}).Where("student_id = ?", studentID).Count(&count).Error
	return count > 0, err
}

// ExistsByUserID checks whether a user already has a member profile
func (r *MemberRepository) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Member{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}
