package controllers

import (
	"net/http"
	"strconv"

	"github.com/jayuttam/fitness-diet-recommendation-system/config"
	"github.com/jayuttam/fitness-diet-recommendation-system/services"

	"github.com/gin-gonic/gin"
)

type ReferralInput struct {
	Email string `json:"email" binding:"required,email"`
}

func CreateReferral(c *gin.Context) {
	var input ReferralInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ref, err := services.NewReferralService(config.DB).Create(c.Request.Context(), currentUserID(c), input.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ref)
}

func ListReferrals(c *gin.Context) {
	refs, points, err := services.NewReferralService(config.DB).ListByReferrer(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"referrals": refs, "totalRewardPoints": points})
}

func CompleteReferral(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid referral id"})
		return
	}

	ref, err := services.NewReferralService(config.DB).Complete(c.Request.Context(), currentUserID(c), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ref)
}
