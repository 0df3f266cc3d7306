package controllers

import (
	"fmt"
	"net/http"
	"time"

	"faculty-appraisal-api/config"
	"faculty-appraisal-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppraisalRequest struct {
	AcademicYear        string   `json:"academic_year"`
	Semester            string   `json:"semester"`
	CoursesTaught       *int     `json:"courses_taught"`
	TeachingHours       *int     `json:"teaching_hours"`
	AverageFeedback     *float64 `json:"average_feedback"`
	AdministrativeRoles *int     `json:"administrative_roles"`
	Committees          *int     `json:"committees"`
	ServiceDetails      *string  `json:"service_details"`
	Achievements        *string  `json:"achievements"`
	SelfAssessment      *string  `json:"self_assessment"`
}

// GetAppraisals returns the caller's own appraisals
func GetAppraisals(c *gin.Context) {
	userID, _ := c.Get("userID")

	var appraisals []models.Appraisal
	query := config.DB.Preload("Publications").Preload("Events").
		Where("user_id = ? AND delete_at IS NULL", userID)

	if status := c.Query("status"); status != "" {
		if parsed, ok := models.ParseStatus(status); ok {
			query = query.Where("status = ?", parsed)
		}
	}

	if err := query.Order("create_at DESC").Find(&appraisals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appraisals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appraisals": appraisals,
		"total":      len(appraisals),
	})
}

// GetAppraisal returns a single owned appraisal by ID
func GetAppraisal(c *gin.Context) {
	id := c.Param("id")
	userID, _ := c.Get("userID")

	var appraisal models.Appraisal
	if err := config.DB.Preload("Publications").Preload("Events").
		Where("appraisal_id = ? AND user_id = ? AND delete_at IS NULL", id, userID).
		First(&appraisal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appraisal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appraisal": appraisal,
	})
}

// CreateAppraisal opens a new draft appraisal for the caller. A faculty
// member can hold only one draft or submitted appraisal at a time.
func CreateAppraisal(c *gin.Context) {
	type CreateRequest struct {
		AcademicYear string `json:"academic_year" binding:"required"`
		Semester     string `json:"semester" binding:"required"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userIDVal, _ := c.Get("userID")
	userID := userIDVal.(int)

	// Friendly pre-check; the unique active_owner_id index is the real guard.
	var open models.Appraisal
	if err := config.DB.Where("active_owner_id = ?", userID).
		First(&open).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An appraisal is already in progress"})
		return
	}

	now := time.Now()
	owner := userID
	appraisal := models.Appraisal{
		AppraisalNumber: generateAppraisalNumber(),
		UserID:          userID,
		AcademicYear:    req.AcademicYear,
		Semester:        req.Semester,
		Status:          models.StatusDraft,
		ActiveOwnerID:   &owner,
		CreateAt:        &now,
		UpdateAt:        &now,
	}

	if err := config.DB.Create(&appraisal).Error; err != nil {
		// Lost the race: another request created an open appraisal first.
		if isDuplicateEntry(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "An appraisal is already in progress"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appraisal"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Appraisal created successfully",
		"appraisal": appraisal,
	})
}

// UpdateAppraisal merges submitted section fields into an owned draft
func UpdateAppraisal(c *gin.Context) {
	id := c.Param("id")
	userID, _ := c.Get("userID")

	var req AppraisalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.AverageFeedback != nil && (*req.AverageFeedback < 0 || *req.AverageFeedback > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Average feedback must be between 0 and 5"})
		return
	}

	var appraisal models.Appraisal
	if err := config.DB.Where("appraisal_id = ? AND user_id = ? AND delete_at IS NULL", id, userID).
		First(&appraisal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appraisal not found"})
		return
	}

	if appraisal.Status != models.StatusDraft {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only draft appraisals can be edited"})
		return
	}

	now := time.Now()
	if req.AcademicYear != "" {
		appraisal.AcademicYear = req.AcademicYear
	}
	if req.Semester != "" {
		appraisal.Semester = req.Semester
	}
	if req.CoursesTaught != nil {
		appraisal.CoursesTaught = *req.CoursesTaught
	}
	if req.TeachingHours != nil {
		appraisal.TeachingHours = *req.TeachingHours
	}
	if req.AverageFeedback != nil {
		appraisal.AverageFeedback = *req.AverageFeedback
	}
	if req.AdministrativeRoles != nil {
		appraisal.AdministrativeRoles = *req.AdministrativeRoles
	}
	if req.Committees != nil {
		appraisal.Committees = *req.Committees
	}
	if req.ServiceDetails != nil {
		appraisal.ServiceDetails = *req.ServiceDetails
	}
	if req.Achievements != nil {
		appraisal.Achievements = *req.Achievements
	}
	if req.SelfAssessment != nil {
		appraisal.SelfAssessment = *req.SelfAssessment
	}
	appraisal.UpdateAt = &now

	if err := config.DB.Save(&appraisal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appraisal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Appraisal updated successfully",
		"appraisal": appraisal,
	})
}

// DeleteAppraisal soft deletes an owned draft appraisal
func DeleteAppraisal(c *gin.Context) {
	id := c.Param("id")
	userID, _ := c.Get("userID")

	var appraisal models.Appraisal
	if err := config.DB.Where("appraisal_id = ? AND user_id = ? AND delete_at IS NULL", id, userID).
		First(&appraisal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appraisal not found"})
		return
	}

	if appraisal.Status != models.StatusDraft {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only draft appraisals can be deleted"})
		return
	}

	now := time.Now()
	appraisal.DeleteAt = &now
	appraisal.ActiveOwnerID = nil

	if err := config.DB.Save(&appraisal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete appraisal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appraisal deleted successfully"})
}

// SubmitAppraisal moves an owned draft to submitted
func SubmitAppraisal(c *gin.Context) {
	id := c.Param("id")
	userID, _ := c.Get("userID")

	var appraisal models.Appraisal
	if err := config.DB.Where("appraisal_id = ? AND user_id = ? AND delete_at IS NULL", id, userID).
		First(&appraisal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appraisal not found"})
		return
	}

	if !models.CanTransition(appraisal.Status, models.StatusSubmitted) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only draft appraisals can be submitted"})
		return
	}

	now := time.Now()
	appraisal.Status = models.StatusSubmitted
	appraisal.SubmittedAt = &now
	appraisal.UpdateAt = &now

	if err := config.DB.Save(&appraisal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit appraisal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Appraisal submitted successfully",
		"appraisal": appraisal,
	})
}

// Helper function to generate appraisal reference number
func generateAppraisalNumber() string {
	// Format: APR-YYYYMMDD-xxxxxxxx
	dateStr := time.Now().Format("20060102")
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("APR-%s-%s", dateStr, suffix)
}
