package models

import (
	"gorm.io/gorm"
)

// User rows are provisioned by the external auth service; the engine only
// resolves token claims back to an ID and never writes credentials.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	FullName string `json:"full_name"`
	Disabled bool   `json:"disabled"`
}
