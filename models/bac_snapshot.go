package models

import (
	"gorm.io/gorm"
)

// BACSnapshot is a persisted point-in-time calculation result, kept for the
// sobriety history graph. It is always derived from the profile + ledger at
// calculation time, never edited afterwards.
type BACSnapshot struct {
	gorm.Model
	UserID                 uint    `gorm:"index;not null" json:"user_id"`
	CurrentBAC             float64 `json:"current_bac"`
	SafetyState            string  `gorm:"size:10" json:"safety_state"`
	DrinksConsumed         int     `json:"drinks_consumed"`
	MinutesSinceFirstDrink int     `json:"minutes_since_first_drink"`
	Known                  bool    `json:"known"` // false = no profile, BAC unknown rather than measured 0
	Recommendations        string  `gorm:"type:text" json:"recommendations"` // "; " separated
}
