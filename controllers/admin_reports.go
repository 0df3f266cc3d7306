package controllers

import (
	"net/http"
	"time"

	"faculty-appraisal-api/config"
	"faculty-appraisal-api/models"

	"github.com/gin-gonic/gin"
)

const reportDateLayout = "2006-01-02"

// GetAppraisalReport filters appraisals by submission date range and/or
// department and returns totals plus the average final score. With
// group_by=department the aggregates are returned per department.
func GetAppraisalReport(c *gin.Context) {
	query := config.DB.Table("appraisals a").
		Joins("JOIN users u ON a.user_id = u.user_id").
		Where("a.delete_at IS NULL AND a.submitted_at IS NOT NULL")

	if from := c.Query("from"); from != "" {
		fromDate, err := time.Parse(reportDateLayout, from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
			return
		}
		query = query.Where("a.submitted_at >= ?", fromDate)
	}

	if to := c.Query("to"); to != "" {
		toDate, err := time.Parse(reportDateLayout, to)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
			return
		}
		// Inclusive upper bound on the given day
		query = query.Where("a.submitted_at < ?", toDate.AddDate(0, 0, 1))
	}

	if department := c.Query("department"); department != "" {
		query = query.Where("u.department = ?", department)
	}

	if c.Query("group_by") == "department" {
		var rows []struct {
			Department   string   `json:"department"`
			Total        int64    `json:"total"`
			Approved     int64    `json:"approved"`
			AverageScore *float64 `json:"average_score"`
		}

		err := query.
			Select(`u.department,
                    COUNT(*) AS total,
                    SUM(CASE WHEN a.status = ? THEN 1 ELSE 0 END) AS approved,
                    AVG(CASE WHEN a.status = ? THEN a.final_score END) AS average_score`,
				models.StatusApproved, models.StatusApproved).
			Group("u.department").
			Order("u.department ASC").
			Scan(&rows).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"report": rows,
		})
		return
	}

	var summary struct {
		Total        int64    `json:"total"`
		Submitted    int64    `json:"submitted"`
		Reviewed     int64    `json:"reviewed"`
		Approved     int64    `json:"approved"`
		AverageScore *float64 `json:"average_score"`
	}

	err := query.
		Select(`COUNT(*) AS total,
                SUM(CASE WHEN a.status = ? THEN 1 ELSE 0 END) AS submitted,
                SUM(CASE WHEN a.status = ? THEN 1 ELSE 0 END) AS reviewed,
                SUM(CASE WHEN a.status = ? THEN 1 ELSE 0 END) AS approved,
                AVG(CASE WHEN a.status = ? THEN a.final_score END) AS average_score`,
			models.StatusSubmitted, models.StatusReviewed, models.StatusApproved, models.StatusApproved).
		Scan(&summary).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"report": summary,
	})
}
