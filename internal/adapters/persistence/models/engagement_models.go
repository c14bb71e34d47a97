package models

import (
	"time"

	"gorm.io/datatypes"
)

// Contact represents a message submitted through the public contact form
type Contact struct {
	Base
	Name     string  `gorm:"size:200;not null" json:"name"`
	Email    string  `gorm:"size:100;not null" json:"email"`
	Phone    *string `gorm:"size:20" json:"phone"`
	Subject  string  `gorm:"size:300;not null" json:"subject"`
	Message  string  `gorm:"type:text;not null" json:"message"`
	Category string  `gorm:"size:50;default:'general'" json:"category"`
	Priority string  `gorm:"size:20;default:'MEDIUM'" json:"priority"`
	Status   string  `gorm:"size:20;default:'PENDING'" json:"status"`
	UserID   *string `gorm:"type:char(36);index" json:"userId"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Contact) TableName() string {
	return "contacts"
}

// Document represents a downloadable file record
type Document struct {
	Base
	Title         string  `gorm:"size:300;not null" json:"title"`
	Description   *string `gorm:"type:text" json:"description"`
	FileName      string  `gorm:"size:300;not null" json:"fileName"`
	FileURL       string  `gorm:"size:500;not null" json:"fileUrl"`
	FileSize      int64   `gorm:"default:0" json:"fileSize"`
	Type          string  `gorm:"size:50;default:'document'" json:"type"`
	Category      *string `gorm:"size:100" json:"category"`
	IsPublic      bool    `json:"isPublic"`
	DownloadCount int     `gorm:"default:0" json:"downloadCount"`
	UploadedBy    *string `gorm:"type:char(36);index" json:"uploadedBy"`

	Uploader *User `gorm:"foreignKey:UploadedBy" json:"uploader,omitempty"`
}

func (Document) TableName() string {
	return "documents"
}

// Gallery represents a photo album
type Gallery struct {
	Base
	Title       string         `gorm:"size:300;not null" json:"title"`
	Description *string        `gorm:"type:text" json:"description"`
	CategoryID  *string        `gorm:"type:char(36);index" json:"categoryId"`
	Images      datatypes.JSON `json:"images"`
	Date        *time.Time     `json:"date"`
	ViewCount   int            `gorm:"default:0" json:"viewCount"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Gallery) TableName() string {
	return "galleries"
}

// DonationCampaign represents a fundraising campaign
type DonationCampaign struct {
	Base
	Title         string     `gorm:"size:300;not null" json:"title"`
	Description   string     `gorm:"type:text;not null" json:"description"`
	TargetAmount  float64    `gorm:"type:decimal(15,2);not null" json:"targetAmount"`
	CurrentAmount float64    `gorm:"type:decimal(15,2);default:0" json:"currentAmount"`
	StartDate     time.Time  `gorm:"not null" json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	Status        string     `gorm:"size:20;default:'ACTIVE'" json:"status"`
	Category      *string    `gorm:"size:100" json:"category"`
	Image         *string    `gorm:"size:500" json:"image"`
	CreatedBy     *string    `gorm:"type:char(36);index" json:"createdBy"`

	Donations []Donation `gorm:"foreignKey:CampaignID" json:"donations,omitempty"`
}

func (DonationCampaign) TableName() string {
	return "donation_campaigns"
}

// Donation represents one donation to a campaign
type Donation struct {
	Base
	CampaignID string   `gorm:"type:char(36);not null;index" json:"campaignId"`
	DonorName  string   `gorm:"size:200;not null" json:"donorName"`
	Amount     float64  `gorm:"type:decimal(15,2);not null" json:"amount"`
	Message    *string  `gorm:"size:500" json:"message"`

	Campaign *DonationCampaign `gorm:"foreignKey:CampaignID" json:"campaign,omitempty"`
}

func (Donation) TableName() string {
	return "donations"
}

// Form represents a registration or survey form definition
type Form struct {
	Base
	Title       string         `gorm:"size:300;not null" json:"title"`
	Description *string        `gorm:"type:text" json:"description"`
	Type        string         `gorm:"size:50;not null" json:"type"`
	Fields      datatypes.JSON `json:"fields"`
	Status      string         `gorm:"size:20;default:'ACTIVE'" json:"status"`
	Settings    datatypes.JSON `json:"settings"`

	Submissions []FormSubmission `gorm:"foreignKey:FormID" json:"submissions,omitempty"`
}

func (Form) TableName() string {
	return "forms"
}

// FormSubmission represents one submitted response to a form
type FormSubmission struct {
	Base
	FormID      string         `gorm:"type:char(36);not null;index" json:"formId"`
	Data        datatypes.JSON `json:"data"`
	SubmittedBy *string        `gorm:"type:char(36);index" json:"submittedBy"`

	Form *Form `gorm:"foreignKey:FormID" json:"form,omitempty"`
}

func (FormSubmission) TableName() string {
	return "form_submissions"
}
