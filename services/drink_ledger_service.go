package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

const (
	// DefaultLookbackHours bounds which drinks still contribute to a
	// BAC calculation.
	DefaultLookbackHours = 12
	// DefaultFoodWindowMinutes is how far back a completed food order
	// still counts as "ate recently".
	DefaultFoodWindowMinutes = 90
)

type DrinkLogInput struct {
	OrderItemID   *uint     `json:"order_item_id"`
	DrinkName     string    `json:"drink_name"`
	VolumeML      float64   `json:"volume_ml"`
	ABVPercentage float64   `json:"abv_percentage"`
	ConsumedAt    time.Time `json:"consumed_at"` // zero = now
}

// LogDrink validates and appends one consumption event. The recent-food
// flag is resolved at log time from the user's completed orders; events are
// immutable afterwards, so concurrent logs from near-simultaneous order
// completions can only append, never overwrite.
func LogDrink(userID uint, in DrinkLogInput) (*models.DrinkConsumptionEvent, error) {
	foodRecently, minutesSince, err := lastFoodOrder(userID, DefaultFoodWindowMinutes)
	if err != nil {
		return nil, err
	}

	event, err := models.NewDrinkConsumptionEvent(
		userID,
		in.OrderItemID,
		in.DrinkName,
		in.VolumeML,
		in.ABVPercentage,
		in.ConsumedAt,
		foodRecently,
		minutesSince,
	)
	if err != nil {
		return nil, err
	}

	if err := config.DB.Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// GetRecentDrinks returns the user's events inside the lookback window,
// newest first. Pure read.
func GetRecentDrinks(userID uint, hoursBack int) ([]models.DrinkConsumptionEvent, error) {
	if hoursBack <= 0 {
		hoursBack = DefaultLookbackHours
	}
	since := time.Now().Add(-time.Duration(hoursBack) * time.Hour)

	var events []models.DrinkConsumptionEvent
	err := config.DB.
		Where("user_id = ? AND consumed_at >= ?", userID, since).
		Order("consumed_at DESC").
		Find(&events).Error
	return events, err
}

// HasRecentFood reports whether any completed order inside the window
// contained a food-category item.
func HasRecentFood(userID uint, minutesBack int) (bool, error) {
	ok, _, err := lastFoodOrder(userID, minutesBack)
	return ok, err
}

func lastFoodOrder(userID uint, minutesBack int) (bool, int, error) {
	if minutesBack <= 0 {
		minutesBack = DefaultFoodWindowMinutes
	}
	since := time.Now().Add(-time.Duration(minutesBack) * time.Minute)

	var order models.Order
	err := config.DB.
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Where("orders.customer_id = ? AND orders.status = ? AND orders.completed_at >= ? AND order_items.category = ?",
			userID, "completed", since, "food").
		Order("orders.completed_at DESC").
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, 0, nil
	}
	if err != nil {
		return false, 0, err
	}

	minutes := int(time.Since(order.CompletedAt).Minutes())
	return true, minutes, nil
}
