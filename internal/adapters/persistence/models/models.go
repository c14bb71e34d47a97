package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Base carries the opaque string identifier and server-assigned timestamps
// shared by every table. IDs are UUIDs assigned on insert.
type Base struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate assigns a UUID when the caller did not supply one
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// ============================================================
// Auth & People
// ============================================================

// User represents users table
type User struct {
	Base
	Email     string `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Username  string `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password  string `gorm:"size:255" json:"-"`
	FirstName string `gorm:"size:100" json:"firstName"`
	LastName  string `gorm:"size:100" json:"lastName"`
	Role      string `gorm:"size:20;default:'USER'" json:"role"`
	IsActive  bool   `json:"isActive"`
}

func (User) TableName() string {
	return "users"
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        string     `gorm:"type:char(36);primaryKey" json:"id"`
	UserID    string     `gorm:"type:char(36);index;not null" json:"userId"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expiresAt"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	RevokedAt *time.Time `gorm:"index" json:"revokedAt"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// Member represents a club member profile linked 1-1 to a user account
type Member struct {
	Base
	UserID     string         `gorm:"type:char(36);uniqueIndex;not null" json:"userId"`
	StudentID  string         `gorm:"uniqueIndex;size:20;not null" json:"studentId"`
	Name       string         `gorm:"size:200" json:"name"`
	Email      *string        `gorm:"size:100" json:"email"`
	Department string         `gorm:"size:200;not null" json:"department"`
	Faculty    string         `gorm:"size:200;not null" json:"faculty"`
	Year       int            `gorm:"not null" json:"year"`
	Phone      *string        `gorm:"size:20" json:"phone"`
	Position   *string        `gorm:"size:100" json:"position"`
	Division   *string        `gorm:"size:100" json:"division"`
	Avatar     *string        `gorm:"size:500" json:"avatar"`
	Bio        *string        `gorm:"type:text" json:"bio"`
	Skills     datatypes.JSON `json:"skills"`
	Interests  datatypes.JSON `json:"interests"`
	IsActive   bool           `json:"isActive"`
	JoinDate   time.Time      `gorm:"autoCreateTime" json:"joinDate"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Member) TableName() string {
	return "members"
}

// Staff represents faculty staff and advisors associated with the club
type Staff struct {
	Base
	UserID     *string        `gorm:"type:char(36);index" json:"userId"`
	EmployeeID string         `gorm:"uniqueIndex;size:20;not null" json:"employeeId"`
	Name       string         `gorm:"size:200" json:"name"`
	Department string         `gorm:"size:200;not null" json:"department"`
	Position   string         `gorm:"size:200;not null" json:"position"`
	Phone      *string        `gorm:"size:20" json:"phone"`
	Office     *string        `gorm:"size:200" json:"office"`
	Bio        *string        `gorm:"type:text" json:"bio"`
	Expertise  datatypes.JSON `json:"expertise"`
	Avatar     *string        `gorm:"size:500" json:"avatar"`
	IsActive   bool           `json:"isActive"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Staff) TableName() string {
	return "staff"
}

// Position represents a club committee position (master data)
type Position struct {
	Base
	Title       string `gorm:"uniqueIndex;size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Type        string `gorm:"size:20;not null" json:"type"`
	Level       int    `gorm:"default:0" json:"level"`
	IsActive    bool   `json:"isActive"`
}

func (Position) TableName() string {
	return "positions"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates or updates every table the application owns
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Member{},
		&Staff{},
		&Position{},
		&Category{},
		&Project{},
		&Activity{},
		&News{},
		&Content{},
		&Contact{},
		&Document{},
		&Gallery{},
		&DonationCampaign{},
		&Donation{},
		&Form{},
		&FormSubmission{},
	)
}
