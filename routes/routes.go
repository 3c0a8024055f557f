package routes

import (
	"os"
	"strings"
	"time"

	"github.com/jayuttam/fitness-diet-recommendation-system/controllers"
	"github.com/jayuttam/fitness-diet-recommendation-system/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Browser clients; CORS_ORIGINS extends the list in deployment.
	origins := []string{"http://localhost:5173"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		origins = append(origins, strings.Split(extra, ",")...)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}
	r.GET("/api/ratings", controllers.ListRatings)
	r.POST("/api/contact", controllers.CreateContact)

	// Protected routes
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)

		api.POST("/user/daily-logs", controllers.SaveDailyLog)
		api.GET("/user/daily-logs", controllers.GetUserLogs)
		api.GET("/user/daily-logs/today", controllers.GetTodayLog)
		api.GET("/user/daily-logs/:date", controllers.GetLogByDate)
		api.PUT("/user/daily-logs/id/:logId", controllers.UpdateLog)
		api.DELETE("/user/daily-logs/id/:logId", controllers.DeleteLog)

		api.POST("/ml/predict", controllers.GetMLPrediction)

		api.POST("/ratings", controllers.CreateRating)

		api.POST("/referrals", controllers.CreateReferral)
		api.GET("/referrals", controllers.ListReferrals)
		api.POST("/referrals/:id/complete", controllers.CompleteReferral)
	}

	return r
}
