package repositories

import (
	"context"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContactRepository handles contact message data access
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create stores a new contact message
func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

// GetByID gets a contact message by ID
func (r *ContactRepository) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&contact).Error
	return &contact, err
}

// List lists contact messages matching the given scope, open and urgent first
func (r *ContactRepository) List(ctx context.Context, scope func(*gorm.DB) *gorm.DB, limit int) ([]*models.Contact, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Contact{})
	if scope != nil {
		q = scope(q)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	q = q.Order("CASE status WHEN 'PENDING' THEN 0 WHEN 'IN_PROGRESS' THEN 1 WHEN 'RESOLVED' THEN 2 ELSE 3 END ASC, CASE priority WHEN 'URGENT' THEN 0 WHEN 'HIGH' THEN 1 WHEN 'MEDIUM' THEN 2 ELSE 3 END ASC, created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var contacts []*models.Contact
	err := q.Find(&contacts).Error
	return contacts, total, err
}

// Update saves the full contact record
func (r *ContactRepository) Update(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(contact).Error
}

// Delete removes a contact message permanently
func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Contact{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DocumentRepository handles document data access
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create creates a new document record
func (r *DocumentRepository) Create(ctx context.Context, document *models.Document) error {
	return r.db.WithContext(ctx).Create(document).Error
}

// GetByID gets a document by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*models.Document, error) {
	var document models.Document
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&document).Error
	return &document, err
}

// List lists documents matching the given scope, newest first
func (r *DocumentRepository) List(ctx context.Context, scope func(*gorm.DB) *gorm.DB, limit int) ([]*models.Document, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Document{})
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
	var documents []*models.Document
	err := q.Find(&documents).Error
	return documents, total, err
}

// Update saves the full document record
func (r *DocumentRepository) Update(ctx context.Context, document *models.Document) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(document).Error
}

// Delete removes a document record permanently
func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Document{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementDownloadCount bumps the download counter without touching
// updated_at
func (r *DocumentRepository) IncrementDownloadCount(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&models.Document{}).
		Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + 1")).Error
}

// GalleryRepository handles photo album data access
type GalleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository creates a new gallery repository
func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

// Create creates a new album
func (r *GalleryRepository) Create(ctx context.Context, gallery *models.Gallery) error {
	return r.db.WithContext(ctx).Create(gallery).Error
}

// GetByID gets an album with its category
func (r *GalleryRepository) GetByID(ctx context.Context, id string) (*models.Gallery, error) {
	var gallery models.Gallery
	err := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&gallery).Error
	return &gallery, err
}

// List lists albums matching the given scope, most recent event first
func (r *GalleryRepository) List(ctx context.Context, scope func(*gorm.DB) *gorm.DB, limit int) ([]*models.Gallery, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Gallery{})
	if scope != nil {
		q = scope(q)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	q = q.Preload("Category").Order("date DESC, created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var galleries []*models.Gallery
	err := q.Find(&galleries).Error
	return galleries, total, err
}

// Update saves the full album record
func (r *GalleryRepository) Update(ctx context.Context, gallery *models.Gallery) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(gallery).Error
}

// Delete removes an album permanently
func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Gallery{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementViewCount bumps the album view counter without touching updated_at
func (r *GalleryRepository) IncrementViewCount(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&models.Gallery{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}
