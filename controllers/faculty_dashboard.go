package controllers

import (
	"net/http"

	"faculty-appraisal-api/config"
	"faculty-appraisal-api/models"

	"github.com/gin-gonic/gin"
)

// GetFacultyDashboard returns the caller's appraisal statistics
func GetFacultyDashboard(c *gin.Context) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}
	userID := userIDVal.(int)

	stats := make(map[string]interface{})

	var counts struct {
		Total     int64 `json:"total"`
		Draft     int64 `json:"draft"`
		Submitted int64 `json:"submitted"`
		Reviewed  int64 `json:"reviewed"`
		Approved  int64 `json:"approved"`
	}

	config.DB.Model(&models.Appraisal{}).
		Where("user_id = ? AND delete_at IS NULL", userID).
		Count(&counts.Total)

	var statusRows []struct {
		Status models.AppraisalStatus
		Total  int64
	}
	config.DB.Model(&models.Appraisal{}).
		Select("status, COUNT(*) AS total").
		Where("user_id = ? AND delete_at IS NULL", userID).
		Group("status").
		Scan(&statusRows)

	for _, row := range statusRows {
		switch row.Status {
		case models.StatusDraft:
			counts.Draft = row.Total
		case models.StatusSubmitted:
			counts.Submitted = row.Total
		case models.StatusReviewed:
			counts.Reviewed = row.Total
		case models.StatusApproved:
			counts.Approved = row.Total
		}
	}

	stats["appraisals"] = counts

	// Latest approved score, if any
	var latest models.Appraisal
	if err := config.DB.
		Where("user_id = ? AND status = ? AND delete_at IS NULL", userID, models.StatusApproved).
		Order("reviewed_at DESC").
		First(&latest).Error; err == nil && latest.FinalScore != nil {
		stats["latest_final_score"] = *latest.FinalScore
	}

	// Recent records for the landing page
	var recent []models.Appraisal
	config.DB.Where("user_id = ? AND delete_at IS NULL", userID).
		Order("create_at DESC").
		Limit(5).
		Find(&recent)
	stats["recent_appraisals"] = recent

	c.JSON(http.StatusOK, gin.H{
		"stats": stats,
	})
}
