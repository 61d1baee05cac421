package controllers

import (
	"net/http"
	"strconv"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type BACController struct {
	Svc *services.BACService
}

// constructor
func NewBACController(svc *services.BACService) *BACController {
	return &BACController{Svc: svc}
}

// GET /bac/current
func (bc *BACController) Current(c *gin.Context) {
	uid := c.GetUint("userID")

	reading, err := bc.Svc.Current(uid)
	if err != nil {
		// fail closed: no snapshot rather than a falsely reassuring one
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reading)
}

// POST /bac/preview — stateless live calculator for the profile screen
func (bc *BACController) Preview(c *gin.Context) {
	var body struct {
		Drinks       float64 `json:"drinks"`
		WeightKg     float64 `json:"weight_kg"`
		HoursElapsed float64 `json:"hours_elapsed"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bac, err := utils.EstimateSimpleBAC(body.Drinks, body.WeightKg, body.HoursElapsed)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bac": bac})
}

// GET /bac/history?hours=12
func (bc *BACController) History(c *gin.Context) {
	uid := c.GetUint("userID")
	hours, _ := strconv.Atoi(c.DefaultQuery("hours", "12"))

	rows, err := bc.Svc.History(uid, hours)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
