package models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type ToleranceLevel string

const (
	ToleranceLow      ToleranceLevel = "low"
	ToleranceModerate ToleranceLevel = "moderate"
	ToleranceHigh     ToleranceLevel = "high"
	ToleranceCustom   ToleranceLevel = "custom"
)

// DefaultEliminationRate is the standard physiological approximation
// (BAC removed per hour).
const DefaultEliminationRate = 0.015

// Thresholds are the three BAC boundaries a profile classifies against.
// Safe < Caution < Danger always holds for a stored profile.
type Thresholds struct {
	Safe    float64 `json:"safe"`
	Caution float64 `json:"caution"`
	Danger  float64 `json:"danger"`
}

// Preset threshold table keyed by self-declared tolerance level. These are
// policy presets, not physiology; user-facing copy should flag that.
var defaultThresholds = map[ToleranceLevel]Thresholds{
	ToleranceLow:      {Safe: 0.020, Caution: 0.040, Danger: 0.060},
	ToleranceModerate: {Safe: 0.030, Caution: 0.050, Danger: 0.080},
	ToleranceHigh:     {Safe: 0.040, Caution: 0.065, Danger: 0.100},
}

// DefaultThresholdsFor returns the preset thresholds for a non-custom level.
func DefaultThresholdsFor(level ToleranceLevel) (Thresholds, bool) {
	t, ok := defaultThresholds[level]
	return t, ok
}

// ToleranceProfile holds a user's physiological parameters and threshold
// configuration. At most one row is active per user; saves append a new row
// and the latest by creation time wins (history kept for audit).
type ToleranceProfile struct {
	gorm.Model
	UserID                uint           `gorm:"index;not null" json:"user_id"`
	WeightKg              float64        `json:"weight_kg"`
	Sex                   string         `gorm:"size:10" json:"sex"` // "male" | "female" | "other"
	Level                 ToleranceLevel `gorm:"size:10" json:"tolerance_level"`
	SafeThreshold         float64        `json:"safe_threshold"`
	CautionThreshold      float64        `json:"caution_threshold"`
	DangerThreshold       float64        `json:"danger_threshold"`
	EliminationRate       float64        `json:"elimination_rate"` // BAC/hour
	FoodAbsorptionFactor  float64        `json:"food_absorption_factor"`
	EmergencyContactEmail string         `json:"emergency_contact_email"`
}

// NewToleranceProfile validates and builds a profile. Preset levels get
// their thresholds synthesized from the default table; custom levels must
// carry strictly increasing thresholds of their own. A zero elimination
// rate falls back to the physiological default.
func NewToleranceProfile(userID uint, weightKg float64, sex string, level ToleranceLevel, custom Thresholds, eliminationRate, foodFactor float64, emergencyEmail string) (*ToleranceProfile, error) {
	if weightKg <= 0 {
		return nil, fmt.Errorf("%w: weight must be positive, got %.1f", ErrValidation, weightKg)
	}
	if eliminationRate == 0 {
		eliminationRate = DefaultEliminationRate
	}
	if eliminationRate <= 0 {
		return nil, fmt.Errorf("%w: elimination rate must be positive", ErrValidation)
	}

	sex = strings.ToLower(strings.TrimSpace(sex))
	switch sex {
	case "male", "female", "other", "":
	default:
		return nil, fmt.Errorf("%w: unknown sex category %q", ErrValidation, sex)
	}

	var t Thresholds
	switch level {
	case ToleranceLow, ToleranceModerate, ToleranceHigh:
		t, _ = DefaultThresholdsFor(level)
	case ToleranceCustom:
		t = custom
		if !(t.Safe < t.Caution && t.Caution < t.Danger) {
			return nil, fmt.Errorf("%w: thresholds must be strictly increasing (safe < caution < danger)", ErrValidation)
		}
		if t.Safe <= 0 {
			return nil, fmt.Errorf("%w: safe threshold must be positive", ErrValidation)
		}
	default:
		return nil, fmt.Errorf("%w: unknown tolerance level %q", ErrValidation, level)
	}

	return &ToleranceProfile{
		UserID:                userID,
		WeightKg:              weightKg,
		Sex:                   sex,
		Level:                 level,
		SafeThreshold:         t.Safe,
		CautionThreshold:      t.Caution,
		DangerThreshold:       t.Danger,
		EliminationRate:       eliminationRate,
		FoodAbsorptionFactor:  foodFactor,
		EmergencyContactEmail: emergencyEmail,
	}, nil
}

// Thresholds returns the profile's effective boundaries. Preset levels are
// re-synthesized from the table so updates to presets apply retroactively.
func (p *ToleranceProfile) Thresholds() Thresholds {
	if t, ok := DefaultThresholdsFor(p.Level); ok {
		return t
	}
	return Thresholds{Safe: p.SafeThreshold, Caution: p.CautionThreshold, Danger: p.DangerThreshold}
}
