package controllers

import (
	"net/http"

	"github.com/jayuttam/fitness-diet-recommendation-system/config"
	"github.com/jayuttam/fitness-diet-recommendation-system/services"

	"github.com/gin-gonic/gin"
)

type RatingInput struct {
	Rating int    `json:"rating" binding:"required"`
	Review string `json:"review"`
}

func CreateRating(c *gin.Context) {
	var input RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := services.NewRatingService(config.DB).Create(c.Request.Context(), currentUserID(c), input.Rating, input.Review)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rating)
}

func ListRatings(c *gin.Context) {
	ratings, err := services.NewRatingService(config.DB).List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}
