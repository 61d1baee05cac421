package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// EthanolDensityGPerML converts a volume of pure ethanol to grams.
const EthanolDensityGPerML = 0.789

// DrinkConsumptionEvent is one unit of alcoholic drink consumed. Rows are
// append-only: created at order completion or manual logging, never updated,
// never deleted (historical BAC recalculation depends on them).
type DrinkConsumptionEvent struct {
	gorm.Model
	UserID           uint      `gorm:"index;not null" json:"user_id"`
	OrderItemID      *uint     `gorm:"index" json:"order_item_id,omitempty"`
	DrinkName        string    `json:"drink_name"`
	VolumeML         float64   `json:"volume_ml"`
	ABVPercentage    float64   `json:"abv_percentage"`
	AlcoholGrams     float64   `json:"alcohol_grams"`
	ConsumedAt       time.Time `gorm:"index;not null" json:"consumed_at"`
	FoodRecently     bool      `json:"food_consumed_recently"`
	MinutesSinceFood int       `json:"minutes_since_food"`
}

// NewDrinkConsumptionEvent validates volume and ABV, derives alcohol grams,
// and stamps the event. consumedAt zero means "now" (caller-supplied values
// support backfill and testing).
func NewDrinkConsumptionEvent(userID uint, orderItemID *uint, name string, volumeML, abvPercentage float64, consumedAt time.Time, foodRecently bool, minutesSinceFood int) (*DrinkConsumptionEvent, error) {
	if volumeML <= 0 {
		return nil, fmt.Errorf("%w: volume_ml must be positive, got %.1f", ErrValidation, volumeML)
	}
	if abvPercentage < 0 || abvPercentage > 100 {
		return nil, fmt.Errorf("%w: abv_percentage must be within [0,100], got %.1f", ErrValidation, abvPercentage)
	}
	if consumedAt.IsZero() {
		consumedAt = time.Now()
	}

	return &DrinkConsumptionEvent{
		UserID:           userID,
		OrderItemID:      orderItemID,
		DrinkName:        name,
		VolumeML:         volumeML,
		ABVPercentage:    abvPercentage,
		AlcoholGrams:     volumeML * (abvPercentage / 100.0) * EthanolDensityGPerML,
		ConsumedAt:       consumedAt,
		FoodRecently:     foodRecently,
		MinutesSinceFood: minutesSinceFood,
	}, nil
}
