package services

import (
	"fmt"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitSafetyAlert persists an alert row, then fans out to the user's open
// websockets and registered devices. Safe to call anywhere once deps are
// initialized.
func EmitSafetyAlert(userID uint, state utils.SafetyState, message string) {
	if _alert.db == nil {
		return // not initialized
	}
	a := &models.Alert{UserID: userID, Type: string(state), Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.BroadcastToUser(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, "DrunkSafe alert", message, map[string]string{
			"state": string(state), "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}

// ListAlerts returns the user's alert history, newest first.
func ListAlerts(userID uint, limit int) ([]models.Alert, error) {
	if limit <= 0 {
		limit = 50
	}
	var alerts []models.Alert
	err := _alert.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}
