package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// GET /alerts?limit=50
func ListAlerts(c *gin.Context) {
	uid := c.GetUint("userID")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	alerts, err := services.ListAlerts(uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}
