package config

import (
	"log"

	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/models"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}
	if err := s.seedCategories(); err != nil {
		log.Printf("⚠️ Category seeder skipped: %v", err)
	}
	if err := s.seedPositions(); err != nil {
		log.Printf("⚠️ Position seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser seeds default admin user
// This is for development/testing only
// In production, create admin through secure process
func (s *Seeder) seedAdminUser() error {
	// Check if admin already exists
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", "ADMIN").Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	hashedPassword, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:  "admin",
		Email:     "admin@scismo.org",
		Password:  hashedPassword,
		FirstName: "System",
		LastName:  "Administrator",
		Role:      "ADMIN",
		IsActive:  true,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin user created: %s", admin.Username)
	return nil
}

// seedCategories seeds the master category list
func (s *Seeder) seedCategories() error {
	var count int64
	s.db.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "Academic", Slug: "academic", IsActive: true},
		{Name: "Sports", Slug: "sports", IsActive: true},
		{Name: "Culture", Slug: "culture", IsActive: true},
		{Name: "Volunteer", Slug: "volunteer", IsActive: true},
		{Name: "Announcement", Slug: "announcement", IsActive: true},
		{Name: "General", Slug: "general", IsActive: true},
	}

	if err := s.db.Create(&categories).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d categories", len(categories))
	return nil
}

// seedPositions seeds the default organization positions
func (s *Seeder) seedPositions() error {
	var count int64
	s.db.Model(&models.Position{}).Count(&count)
	if count > 0 {
		return nil
	}

	positions := []models.Position{
		{Title: "President", Type: "EXECUTIVE", Level: 1, IsActive: true},
		{Title: "Vice President", Type: "EXECUTIVE", Level: 2, IsActive: true},
		{Title: "Secretary", Type: "EXECUTIVE", Level: 3, IsActive: true},
		{Title: "Treasurer", Type: "EXECUTIVE", Level: 3, IsActive: true},
		{Title: "Public Relations Officer", Type: "COMMITTEE", Level: 4, IsActive: true},
		{Title: "Activities Coordinator", Type: "COMMITTEE", Level: 4, IsActive: true},
		{Title: "Faculty Advisor", Type: "ADVISOR", Level: 0, IsActive: true},
		{Title: "Committee Member", Type: "MEMBER", Level: 5, IsActive: true},
	}

	if err := s.db.Create(&positions).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d positions", len(positions))
	return nil
}
