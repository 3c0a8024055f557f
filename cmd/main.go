package main

import (
	"os"

	"github.com/jayuttam/fitness-diet-recommendation-system/config"
	"github.com/jayuttam/fitness-diet-recommendation-system/logger"
	"github.com/jayuttam/fitness-diet-recommendation-system/routes"
	"github.com/jayuttam/fitness-diet-recommendation-system/utils"
)

func main() {
	config.LoadEnv()
	logger.Init(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FILE"))
	config.InitDB()
	utils.InitS3()
	utils.InitSES()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	if err := r.Run(":" + port); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}
