package repositories

import (
	"context"
	"time"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DonationRepository handles fundraising campaign and donation data access
type DonationRepository struct {
	db *gorm.DB
}

// NewDonationRepository creates a new donation repository
func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

// CreateCampaign creates a new campaign
func (r *DonationRepository) CreateCampaign(ctx context.Context, campaign *models.DonationCampaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

// GetCampaignByID gets a campaign with its donations
func (r *DonationRepository) GetCampaignByID(ctx context.Context, id string) (*models.DonationCampaign, error) {
	var campaign models.DonationCampaign
	err := r.db.WithContext(ctx).
		Preload("Donations", func(q *gorm.DB) *gorm.DB {
			return q.Order("created_at DESC")
		}).
		Where("id = ?", id).
		First(&campaign).Error
	return &campaign, err
}

// ListCampaigns lists campaigns matching the given scope, newest first
func (r *DonationRepository) ListCampaigns(ctx context.Context, scope func(*gorm.DB) *gorm.DB, limit int) ([]*models.DonationCampaign, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.DonationCampaign{})
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
	var campaigns []*models.DonationCampaign
	err := q.Find(&campaigns).Error
	return campaigns, total, err
}

// UpdateCampaign saves the full campaign record
func (r *DonationRepository) UpdateCampaign(ctx context.Context, campaign *models.DonationCampaign) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(campaign).Error
}

// DeleteCampaign removes a campaign permanently
func (r *DonationRepository) DeleteCampaign(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.DonationCampaign{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CampaignExists checks whether a campaign ID refers to an existing campaign
func (r *DonationRepository) CampaignExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.DonationCampaign{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// AddDonation records a donation and bumps the campaign's running total in
// one transaction
func (r *DonationRepository) AddDonation(ctx context.Context, donation *models.Donation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(donation).Error; err != nil {
			return err
		}
		return tx.Model(&models.DonationCampaign{}).
			Where("id = ?", donation.CampaignID).
			UpdateColumn("current_amount", gorm.Expr("current_amount + ?", donation.Amount)).Error
	})
}

// CloseExpired marks active campaigns past their end date as completed and
// returns how many were updated
func (r *DonationRepository) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.DonationCampaign{}).
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", "ACTIVE", now).
		Update("status", "COMPLETED")
	return res.RowsAffected, res.Error
}
