package controllers

import (
	"net/http"
	"time"

	"faculty-appraisal-api/config"
	"faculty-appraisal-api/models"

	"github.com/gin-gonic/gin"
)

// GetAdminDashboard returns system-wide appraisal statistics
func GetAdminDashboard(c *gin.Context) {
	stats := make(map[string]interface{})

	var totalFaculty int64
	config.DB.Model(&models.User{}).
		Where("role = ? AND is_active = ? AND delete_at IS NULL", models.RoleFaculty, true).
		Count(&totalFaculty)
	stats["total_faculty"] = totalFaculty

	var pendingCount int64
	config.DB.Model(&models.Appraisal{}).
		Where("status = ? AND delete_at IS NULL", models.StatusSubmitted).
		Count(&pendingCount)
	stats["pending_count"] = pendingCount

	var approvedCount int64
	config.DB.Model(&models.Appraisal{}).
		Where("status = ? AND delete_at IS NULL", models.StatusApproved).
		Count(&approvedCount)
	stats["approved_count"] = approvedCount

	var reviewedCount int64
	config.DB.Model(&models.Appraisal{}).
		Where("status = ? AND delete_at IS NULL", models.StatusReviewed).
		Count(&reviewedCount)
	stats["reviewed_count"] = reviewedCount

	// Latest submissions waiting for a decision
	var recent []struct {
		AppraisalID     int        `json:"appraisal_id"`
		AppraisalNumber string     `json:"appraisal_number"`
		AcademicYear    string     `json:"academic_year"`
		SubmittedAt     *time.Time `json:"submitted_at"`
		FacultyName     string     `json:"faculty_name"`
		Department      string     `json:"department"`
	}
	config.DB.Table("appraisals a").
		Select("a.appraisal_id, a.appraisal_number, a.academic_year, a.submitted_at, u.name AS faculty_name, u.department").
		Joins("JOIN users u ON a.user_id = u.user_id").
		Where("a.status = ? AND a.delete_at IS NULL", models.StatusSubmitted).
		Order("a.submitted_at DESC").
		Limit(10).
		Scan(&recent)
	stats["recent_submissions"] = recent

	stats["current_date"] = time.Now().Format("2006-01-02")

	c.JSON(http.StatusOK, gin.H{
		"stats": stats,
	})
}
