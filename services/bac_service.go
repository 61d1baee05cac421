package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type BACService struct{ db *gorm.DB }

func NewBACService(db *gorm.DB) *BACService { return &BACService{db: db} }

// Current recomputes the user's estimate from the full recent ledger,
// persists a snapshot for the history graph, and raises alerts when the
// user crosses into the danger band. Persistence failures propagate —
// the engine never fabricates a reassuring "safe" answer.
func (s *BACService) Current(userID uint) (*utils.BACReading, error) {
	profile, err := GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		reading := utils.UnknownReading()
		if err := s.persistSnapshot(userID, reading); err != nil {
			return nil, err
		}
		return reading, nil
	}

	events, err := GetRecentDrinks(userID, DefaultLookbackHours)
	if err != nil {
		return nil, err
	}

	reading, err := utils.EstimateFromEvents(profile, events, time.Now())
	if err != nil {
		return nil, err
	}

	wasDanger, err := s.lastStateWasDanger(userID)
	if err != nil {
		return nil, err
	}

	if err := s.persistSnapshot(userID, reading); err != nil {
		return nil, err
	}

	if reading.SafetyState == utils.StateDanger {
		EmitSafetyAlert(userID, reading.SafetyState,
			fmt.Sprintf("Estimated BAC %.3f is in the danger zone. %s", reading.CurrentBAC, reading.Recommendations[0]))

		// email the safety contact only on entry into danger, not on
		// every recalculation while the user stays there
		if !wasDanger && profile.EmergencyContactEmail != "" {
			s.notifySafetyContact(userID, profile.EmergencyContactEmail, reading.CurrentBAC)
		}
	}

	return reading, nil
}

// History returns persisted snapshots inside the window, newest first.
func (s *BACService) History(userID uint, hoursBack int) ([]models.BACSnapshot, error) {
	if hoursBack <= 0 {
		hoursBack = DefaultLookbackHours
	}
	since := time.Now().Add(-time.Duration(hoursBack) * time.Hour)

	var rows []models.BACSnapshot
	err := s.db.
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (s *BACService) persistSnapshot(userID uint, r *utils.BACReading) error {
	snap := &models.BACSnapshot{
		UserID:                 userID,
		CurrentBAC:             r.CurrentBAC,
		SafetyState:            string(r.SafetyState),
		DrinksConsumed:         r.DrinksConsumed,
		MinutesSinceFirstDrink: r.MinutesSinceFirstDrink,
		Known:                  r.Known,
		Recommendations:        strings.Join(r.Recommendations, "; "),
	}
	return s.db.Create(snap).Error
}

func (s *BACService) lastStateWasDanger(userID uint) (bool, error) {
	var last models.BACSnapshot
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return last.SafetyState == string(utils.StateDanger), nil
}

func (s *BACService) notifySafetyContact(userID uint, contactEmail string, bac float64) {
	var user models.User
	name := "A friend"
	if err := s.db.First(&user, userID).Error; err == nil && user.FullName != "" {
		name = user.FullName
	}
	if err := utils.SendSafetyContactEmail(contactEmail, name, bac); err != nil {
		log.Printf("safety contact email failed for user %d: %v", userID, err)
	}
}
