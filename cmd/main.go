package main

import (
	"log"

	"backend/config"
	"backend/routes"
	"backend/services"
)

func main() {
	config.InitDB()

	rt := services.NewRealtimeHub()
	ps, err := services.NewPushService(config.DB)
	if err != nil {
		log.Fatalf("push service init failed: %v", err)
	}
	services.InitAlertDeps(config.DB, rt, ps)

	r := routes.SetupRouter(rt, ps)
	r.Run(":8080")
}
