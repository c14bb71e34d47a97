package models

import (
	"time"

	"gorm.io/datatypes"
)

// Category groups activities, news and gallery albums
type Category struct {
	Base
	Name        string  `gorm:"size:100;not null" json:"name"`
	Slug        string  `gorm:"uniqueIndex;size:100;not null" json:"slug"`
	Description *string `gorm:"type:text" json:"description"`
	Color       *string `gorm:"size:20" json:"color"`
	IsActive    bool    `json:"isActive"`
}

func (Category) TableName() string {
	return "categories"
}

// Project represents a club project with a budget and an academic-year scope
type Project struct {
	Base
	Code             string     `gorm:"uniqueIndex;size:50;not null" json:"code"`
	Title            string     `gorm:"size:300;not null" json:"title"`
	Description      string     `gorm:"type:text;not null" json:"description"`
	ShortDescription *string    `gorm:"size:500" json:"shortDescription"`
	AcademicYear     int        `gorm:"not null;index" json:"academicYear"`
	Semester         int        `gorm:"default:1" json:"semester"`
	Status           string     `gorm:"size:30;default:'PLANNING'" json:"status"`
	Priority         string     `gorm:"size:20;default:'MEDIUM'" json:"priority"`
	StartDate        time.Time  `gorm:"not null" json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	Budget           *float64   `gorm:"type:decimal(15,2)" json:"budget"`
	Objectives       *string    `gorm:"type:text" json:"objectives"`
	TargetGroup      *string    `gorm:"size:500" json:"targetGroup"`
	ExpectedResults  *string    `gorm:"type:text" json:"expectedResults"`
	Sponsor          *string    `gorm:"size:200" json:"sponsor"`
	Coordinator      *string    `gorm:"size:200" json:"coordinator"`
	IsActive         bool       `json:"isActive"`
	Image            *string    `gorm:"size:500" json:"image"`
	AuthorID         string     `gorm:"type:char(36);not null;index" json:"authorId"`

	Author     *User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Activities []Activity `gorm:"foreignKey:ProjectID" json:"activities,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}

// Activity represents a club activity, optionally under a project
type Activity struct {
	Base
	Title               string         `gorm:"size:300;not null" json:"title"`
	Description         string         `gorm:"type:text;not null" json:"description"`
	Type                string         `gorm:"size:30;not null" json:"type"`
	StartDate           time.Time      `gorm:"not null;index" json:"startDate"`
	EndDate             *time.Time     `json:"endDate"`
	Location            *string        `gorm:"size:300" json:"location"`
	Status              string         `gorm:"size:30;default:'PLANNING'" json:"status"`
	IsPublic            bool           `json:"isPublic"`
	Image               *string        `gorm:"size:500" json:"image"`
	Gallery             datatypes.JSON `json:"gallery"`
	MaxParticipants     *int           `json:"maxParticipants"`
	CurrentParticipants int            `gorm:"default:0" json:"currentParticipants"`
	Requirements        *string        `gorm:"type:text" json:"requirements"`
	Budget              *float64       `gorm:"type:decimal(15,2)" json:"budget"`
	Tags                datatypes.JSON `json:"tags"`
	CategoryID          *string        `gorm:"type:char(36);index" json:"categoryId"`
	ProjectID           *string        `gorm:"type:char(36);index" json:"projectId"`
	AuthorID            string         `gorm:"type:char(36);not null;index" json:"authorId"`

	Author   *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Project  *Project  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

func (Activity) TableName() string {
	return "activities"
}

// News represents a news article with a unique generated slug
type News struct {
	Base
	Title       string         `gorm:"size:300;not null" json:"title"`
	Slug        string         `gorm:"uniqueIndex;size:150;not null" json:"slug"`
	Excerpt     *string        `gorm:"size:500" json:"excerpt"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	CategoryID  string         `gorm:"type:char(36);not null;index" json:"categoryId"`
	Priority    string         `gorm:"size:20;default:'MEDIUM'" json:"priority"`
	Status      string         `gorm:"size:20;default:'DRAFT'" json:"status"`
	PublishedAt *time.Time     `json:"publishedAt"`
	ViewCount   int            `gorm:"default:0" json:"viewCount"`
	Image       *string        `gorm:"size:500" json:"image"`
	Tags        datatypes.JSON `json:"tags"`
	AuthorID    string         `gorm:"type:char(36);not null;index" json:"authorId"`

	Author   *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (News) TableName() string {
	return "news"
}

// Content represents generic CMS content (announcements and static pages)
type Content struct {
	Base
	Title       string     `gorm:"size:300;not null" json:"title"`
	Slug        string     `gorm:"uniqueIndex;size:150;not null" json:"slug"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Type        string     `gorm:"size:20;not null" json:"type"`
	Status      string     `gorm:"size:20;default:'DRAFT'" json:"status"`
	PublishedAt *time.Time `json:"publishedAt"`
	ViewCount   int        `gorm:"default:0" json:"viewCount"`
	AuthorID    *string    `gorm:"type:char(36);index" json:"authorId"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Content) TableName() string {
	return "contents"
}
