package controllers

import (
	"errors"
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// PUT /user/tolerance-profile
func SaveToleranceProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var in services.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.SaveProfile(uid, in)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GET /user/tolerance-profile
func GetToleranceProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	profile, err := services.GetProfile(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if profile == nil {
		// not an error: a new user simply hasn't set one up yet
		c.JSON(http.StatusNotFound, gin.H{"message": "no tolerance profile yet — create one to enable BAC tracking"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
