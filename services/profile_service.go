package services

import (
	"errors"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

type ProfileInput struct {
	WeightKg              float64 `json:"weight_kg"`
	Sex                   string  `json:"sex"`
	ToleranceLevel        string  `json:"tolerance_level"`
	SafeThreshold         float64 `json:"safe_threshold"`
	CautionThreshold      float64 `json:"caution_threshold"`
	DangerThreshold       float64 `json:"danger_threshold"`
	EliminationRate       float64 `json:"elimination_rate"`
	FoodAbsorptionFactor  float64 `json:"food_absorption_factor"`
	EmergencyContactEmail string  `json:"emergency_contact_email"`
}

// SaveProfile validates and persists a new profile row for the user. Full
// replace, not merge: the new row supersedes any earlier one (latest by
// creation time wins, history kept for audit).
func SaveProfile(userID uint, in ProfileInput) (*models.ToleranceProfile, error) {
	profile, err := models.NewToleranceProfile(
		userID,
		in.WeightKg,
		in.Sex,
		models.ToleranceLevel(in.ToleranceLevel),
		models.Thresholds{
			Safe:    in.SafeThreshold,
			Caution: in.CautionThreshold,
			Danger:  in.DangerThreshold,
		},
		in.EliminationRate,
		in.FoodAbsorptionFactor,
		in.EmergencyContactEmail,
	)
	if err != nil {
		return nil, err
	}

	if err := config.DB.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// GetProfile returns the most recently created profile for the user, with
// preset thresholds synthesized from the default table. A missing profile
// is a normal outcome for a new user and comes back as (nil, nil).
func GetProfile(userID uint) (*models.ToleranceProfile, error) {
	var profile models.ToleranceProfile
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	t := profile.Thresholds()
	profile.SafeThreshold = t.Safe
	profile.CautionThreshold = t.Caution
	profile.DangerThreshold = t.Danger
	return &profile, nil
}
