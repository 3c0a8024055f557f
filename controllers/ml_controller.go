package controllers

import (
	"errors"
	"net/http"

	"github.com/jayuttam/fitness-diet-recommendation-system/config"
	"github.com/jayuttam/fitness-diet-recommendation-system/models"
	"github.com/jayuttam/fitness-diet-recommendation-system/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetMLPrediction recomputes the caller's recommendation on demand. The
// response is 200 even when the prediction service is down and the fallback
// path produced the numbers; the source tag tells the client which it got.
func GetMLPrediction(c *gin.Context) {
	var user models.User
	err := config.DB.First(&user, currentUserID(c)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	rec, refreshed := services.NewRecommendationService(config.DB).Refresh(c.Request.Context(), &user)
	if !refreshed {
		c.JSON(http.StatusOK, gin.H{
			"message": "Recommendation skipped: complete your height, weight and date of birth first",
			"ml":      nil,
		})
		return
	}

	message := "Recommendation generated successfully"
	if rec.Source != services.SourceAIModel {
		message = "Using " + rec.Source + " recommendations"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "ml": rec})
}
