package controllers

import (
	"net/http"

	"github.com/jayuttam/fitness-diet-recommendation-system/config"
	"github.com/jayuttam/fitness-diet-recommendation-system/services"

	"github.com/gin-gonic/gin"
)

func userService() *services.UserService {
	return services.NewUserService(config.DB, services.NewRecommendationService(config.DB))
}

func GetProfile(c *gin.Context) {
	profile, err := userService().Profile(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile saves the provided profile fields and returns the refreshed
// profile, including whatever recommendation the update produced. The
// recommendation path can never fail this request.
func UpdateProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := userService().UpdateProfile(c.Request.Context(), currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"profile": profile,
		"ml":      profile["ml"],
	})
}
