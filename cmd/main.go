package main

import (
	"time"

	"backend/config"
	"backend/controllers"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	db := config.InitDB()
	utils.InitS3()
	utils.InitSES()

	// One limiter per process, shared by every mutating operation.
	limiter := services.NewRateLimiter(10, time.Minute)
	svc := services.NewItemService(db, limiter)

	r := routes.SetupRouter(controllers.NewItemController(svc))
	r.Run(config.Port())
}
