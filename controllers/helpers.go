package controllers

import (
	"errors"
	"net/http"

	"github.com/jayuttam/fitness-diet-recommendation-system/services"

	"github.com/gin-gonic/gin"
)

func currentUserID(c *gin.Context) uint {
	return c.MustGet("userID").(uint)
}

// respondError maps service errors onto HTTP statuses: validation problems
// are 400, ownership-scoped misses 404, everything else 500.
func respondError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Msg})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
