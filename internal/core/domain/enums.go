package domain

import "strings"

// Role represents user role in the system
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
	RoleUser   Role = "USER"
)

// Roles lists every valid user role
var Roles = []string{string(RoleAdmin), string(RoleMember), string(RoleUser)}

// Activity types (keep in sync with the admin UI)
var ActivityTypes = []string{
	"WORKSHOP",
	"SEMINAR",
	"COMPETITION",
	"VOLUNTEER",
	"SOCIAL",
	"TRAINING",
	"MEETING",
	"CEREMONY",
	"FUNDRAISING",
	"EXHIBITION",
}

// Activity statuses
var ActivityStatuses = []string{
	"PLANNING",
	"OPEN_REGISTRATION",
	"FULL",
	"IN_PROGRESS",
	"COMPLETED",
	"CANCELLED",
}

// Project statuses
var ProjectStatuses = []string{
	"PLANNING",
	"APPROVED",
	"IN_PROGRESS",
	"COMPLETED",
	"ON_HOLD",
	"CANCELLED",
}

// News statuses
var NewsStatuses = []string{"DRAFT", "PUBLISHED", "ARCHIVED"}

// Priorities shared by news, projects and contacts
var Priorities = []string{"LOW", "MEDIUM", "HIGH", "URGENT"}

// Contact statuses (transitions unrestricted, any → any)
var ContactStatuses = []string{"PENDING", "IN_PROGRESS", "RESOLVED", "CLOSED"}

// Donation campaign statuses
var CampaignStatuses = []string{"ACTIVE", "COMPLETED", "CANCELLED"}

// Form statuses
var FormStatuses = []string{"ACTIVE", "INACTIVE", "ARCHIVED"}

// Position types
var PositionTypes = []string{"EXECUTIVE", "COMMITTEE", "MEMBER", "ADVISOR"}

// Content types and statuses for the generic content module
var (
	ContentTypes    = []string{"NEWS", "ACTIVITY", "ANNOUNCEMENT"}
	ContentStatuses = []string{"DRAFT", "PUBLISHED", "ARCHIVED"}
)

// NormalizeEnum upper-cases value and checks it against the allowed set.
// Returns the canonical form, or a validation error naming the allowed values.
func NormalizeEnum(field, value string, allowed []string) (string, error) {
	v := strings.ToUpper(strings.TrimSpace(value))
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}
	return "", Invalid("Invalid %s. Allowed values are: %s", field, strings.Join(allowed, ", "))
}

// ValidRole reports whether role is one of the known roles
func ValidRole(role string) bool {
	for _, r := range Roles {
		if role == r {
			return true
		}
	}
	return false
}
