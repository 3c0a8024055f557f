package controllers

import (
	"net/http"

	"github.com/jayuttam/fitness-diet-recommendation-system/config"
	"github.com/jayuttam/fitness-diet-recommendation-system/services"

	"github.com/gin-gonic/gin"
)

type ContactInput struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Description string `json:"description" binding:"required"`
}

func CreateContact(c *gin.Context) {
	var input ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := services.NewContactService(config.DB).Create(c.Request.Context(), input.FullName, input.Email, input.Description); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Message saved successfully"})
}
