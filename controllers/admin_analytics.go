package controllers

import (
	"net/http"

	"faculty-appraisal-api/config"
	"faculty-appraisal-api/models"

	"github.com/gin-gonic/gin"
)

// GetAnalytics returns system-wide appraisal distributions for the admin
// charts: counts per status, per-department breakdown, and the final-score
// spread of approved appraisals.
func GetAnalytics(c *gin.Context) {
	analytics := make(map[string]interface{})

	var statusRows []struct {
		Status models.AppraisalStatus `json:"status"`
		Total  int64                  `json:"total"`
	}
	config.DB.Model(&models.Appraisal{}).
		Select("status, COUNT(*) AS total").
		Where("delete_at IS NULL").
		Group("status").
		Scan(&statusRows)
	analytics["status_distribution"] = statusRows

	var departmentRows []struct {
		Department   string   `json:"department"`
		Faculty      int64    `json:"faculty"`
		Appraisals   int64    `json:"appraisals"`
		AverageScore *float64 `json:"average_score"`
	}
	err := config.DB.Table("users u").
		Select(`u.department,
                COUNT(DISTINCT u.user_id) AS faculty,
                COUNT(a.appraisal_id) AS appraisals,
                AVG(CASE WHEN a.status = ? THEN a.final_score END) AS average_score`,
			models.StatusApproved).
		Joins("LEFT JOIN appraisals a ON a.user_id = u.user_id AND a.delete_at IS NULL").
		Where("u.role = ? AND u.delete_at IS NULL", models.RoleFaculty).
		Group("u.department").
		Order("u.department ASC").
		Scan(&departmentRows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build analytics"})
		return
	}
	analytics["departments"] = departmentRows

	var scoreSpread struct {
		Lowest  *float64 `json:"lowest"`
		Highest *float64 `json:"highest"`
		Average *float64 `json:"average"`
	}
	config.DB.Model(&models.Appraisal{}).
		Select("MIN(final_score) AS lowest, MAX(final_score) AS highest, AVG(final_score) AS average").
		Where("status = ? AND delete_at IS NULL", models.StatusApproved).
		Scan(&scoreSpread)
	analytics["approved_scores"] = scoreSpread

	c.JSON(http.StatusOK, gin.H{
		"analytics": analytics,
	})
}
