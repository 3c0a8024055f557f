package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jayuttam/fitness-diet-recommendation-system/config"
	"github.com/jayuttam/fitness-diet-recommendation-system/services"

	"github.com/gin-gonic/gin"
)

func logService() *services.DailyLogService {
	return services.NewDailyLogService(config.DB)
}

func parseLogID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("logId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return 0, false
	}
	return uint(id), true
}

// SaveDailyLog creates or replaces the caller's log for the given date.
func SaveDailyLog(c *gin.Context) {
	var input services.DailyLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, updated, err := logService().Upsert(c.Request.Context(), currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Log saved successfully"
	if updated {
		message = "Log updated successfully"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "log": view})
}

// GetUserLogs returns the caller's recent logs plus a summary over the same
// window. startDate and endDate are both required to apply the range filter.
func GetUserLogs(c *gin.Context) {
	var start, end *time.Time
	if s, e := c.Query("startDate"), c.Query("endDate"); s != "" && e != "" {
		st, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be formatted as YYYY-MM-DD"})
			return
		}
		en, err := time.ParseInLocation("2006-01-02", e, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be formatted as YYYY-MM-DD"})
			return
		}
		start, end = &st, &en
	}

	logs, summary, err := logService().Range(c.Request.Context(), currentUserID(c), start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs, "summary": summary})
}

// GetTodayLog returns the caller's log for the current calendar day, with an
// explicit exists flag so "no log yet" is not an error.
func GetTodayLog(c *gin.Context) {
	view, exists, err := logService().Today(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	if !exists {
		c.JSON(http.StatusOK, gin.H{"log": nil, "exists": false, "message": "No log found for today"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"log": view, "exists": true})
}

// GetLogByDate is GetTodayLog for an arbitrary date path parameter.
func GetLogByDate(c *gin.Context) {
	date, err := time.ParseInLocation("2006-01-02", c.Param("date"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
		return
	}

	view, exists, err := logService().ByDate(c.Request.Context(), currentUserID(c), date)
	if err != nil {
		respondError(c, err)
		return
	}

	if !exists {
		c.JSON(http.StatusOK, gin.H{"log": nil, "exists": false, "message": "No log found for this date"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"log": view, "exists": true})
}

// UpdateLog partially updates one of the caller's logs by id.
func UpdateLog(c *gin.Context) {
	logID, ok := parseLogID(c)
	if !ok {
		return
	}

	var patch services.DailyLogPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := logService().Update(c.Request.Context(), currentUserID(c), logID, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Log updated successfully", "log": view})
}

// DeleteLog removes one of the caller's logs by id.
func DeleteLog(c *gin.Context) {
	logID, ok := parseLogID(c)
	if !ok {
		return
	}

	if err := logService().Delete(c.Request.Context(), currentUserID(c), logID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Log deleted successfully"})
}
