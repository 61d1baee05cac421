package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

// CompleteOrder marks the order completed and auto-logs a drink event for
// every line item the detector recognizes. Unrecognized items are treated
// as non-alcoholic and skipped, never defaulted.
func CompleteOrder(userID, orderID uint) (*models.Order, []models.DrinkConsumptionEvent, error) {
	var order models.Order
	err := config.DB.
		Preload("Items").
		Where("id = ? AND customer_id = ?", orderID, userID).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	if order.Status != "completed" {
		order.Status = "completed"
		order.CompletedAt = time.Now()
		if err := config.DB.Save(&order).Error; err != nil {
			return nil, nil, err
		}
	}

	var logged []models.DrinkConsumptionEvent
	for i := range order.Items {
		item := order.Items[i]
		if item.Category == "food" {
			continue
		}
		entry := utils.DetectDrink(item.Name, item.Description)
		if entry == nil {
			continue
		}

		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		for n := 0; n < qty; n++ {
			event, err := LogDrink(userID, DrinkLogInput{
				OrderItemID:   &item.ID,
				DrinkName:     entry.Name,
				VolumeML:      entry.VolumeML,
				ABVPercentage: entry.ABVPercentage,
			})
			if err != nil {
				return nil, nil, err
			}
			logged = append(logged, *event)
		}
	}

	return &order, logged, nil
}
