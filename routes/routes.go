package routes

import (
	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub, ps *services.PushService) *gin.Engine {
	r := gin.Default()

	bacSvc := services.NewBACService(config.DB)
	bacCtl := controllers.NewBACController(bacSvc)
	devCtl := controllers.NewDeviceController(ps)
	rtCtl := controllers.NewRealtimeController(rt)

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.PUT("/tolerance-profile", controllers.SaveToleranceProfile)
		user.GET("/tolerance-profile", controllers.GetToleranceProfile)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
	}

	drinks := r.Group("/drinks")
	drinks.Use(middlewares.AuthMiddleware())
	{
		drinks.POST("", controllers.LogDrink)
		drinks.POST("/detect", controllers.DetectDrink)
		drinks.GET("/recent", controllers.RecentDrinks)
	}

	bac := r.Group("/bac")
	bac.Use(middlewares.AuthMiddleware())
	{
		bac.GET("/current", bacCtl.Current)
		bac.POST("/preview", bacCtl.Preview)
		bac.GET("/history", bacCtl.History)
	}

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.POST("/orders/:id/complete", controllers.CompleteOrder)
		protected.GET("/alerts", controllers.ListAlerts)
		protected.POST("/devices/register", devCtl.Register)
		protected.GET("/ws/alerts", rtCtl.AlertsWS)
	}

	return r
}
