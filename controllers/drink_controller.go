package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// POST /drinks
func LogDrink(c *gin.Context) {
	uid := c.GetUint("userID")

	var body services.DrinkLogInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// manual entries without explicit serving values go through the
	// detector; unrecognized items are rejected rather than defaulted
	if body.VolumeML == 0 && body.ABVPercentage == 0 {
		entry := utils.DetectDrink(body.DrinkName, "")
		if entry == nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "item not recognized as an alcoholic drink"})
			return
		}
		body.DrinkName = entry.Name
		body.VolumeML = entry.VolumeML
		body.ABVPercentage = entry.ABVPercentage
	}

	event, err := services.LogDrink(uid, body)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, event)
}

// POST /drinks/detect
func DetectDrink(c *gin.Context) {
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := utils.DetectDrink(body.Name, body.Description)
	if entry == nil {
		c.JSON(http.StatusOK, gin.H{"detected": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"detected": true, "drink": entry})
}

// GET /drinks/recent?hours=12
func RecentDrinks(c *gin.Context) {
	uid := c.GetUint("userID")
	hours, _ := strconv.Atoi(c.DefaultQuery("hours", "12"))

	events, err := services.GetRecentDrinks(uid, hours)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

// POST /orders/:id/complete
func CompleteOrder(c *gin.Context) {
	uid := c.GetUint("userID")
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, logged, err := services.CompleteOrder(uid, uint(orderID))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order, "drinks_logged": logged})
}
