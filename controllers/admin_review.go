package controllers

import (
	"net/http"
	"time"

	"faculty-appraisal-api/config"
	"faculty-appraisal-api/models"
	"faculty-appraisal-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// GetSubmittedAppraisals lists all submitted appraisals joined with faculty
// identity, newest first.
func GetSubmittedAppraisals(c *gin.Context) {
	var rows []struct {
		AppraisalID     int        `json:"appraisal_id"`
		AppraisalNumber string     `json:"appraisal_number"`
		AcademicYear    string     `json:"academic_year"`
		Semester        string     `json:"semester"`
		SubmittedAt     *time.Time `json:"submitted_at"`
		FacultyName     string     `json:"faculty_name"`
		Email           string     `json:"email"`
		Department      string     `json:"department"`
		Designation     string     `json:"designation"`
	}

	err := config.DB.Table("appraisals a").
		Select(`a.appraisal_id, a.appraisal_number, a.academic_year, a.semester, a.submitted_at,
                u.name AS faculty_name, u.email, u.department, u.designation`).
		Joins("JOIN users u ON a.user_id = u.user_id").
		Where("a.status = ? AND a.delete_at IS NULL", models.StatusSubmitted).
		Order("a.submitted_at DESC").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appraisals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appraisals": rows,
		"total":      len(rows),
	})
}

// GetAppraisalForReview returns a full appraisal record for an admin reader
func GetAppraisalForReview(c *gin.Context) {
	id := c.Param("id")

	var appraisal models.Appraisal
	if err := config.DB.Preload("User").Preload("Publications").Preload("Events").
		Where("appraisal_id = ? AND delete_at IS NULL", id).
		First(&appraisal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appraisal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appraisal": appraisal,
	})
}

// ReviewAppraisal applies an admin decision to a submitted appraisal. The
// target status must be reviewed or approved; approval computes and stores
// the final score.
func ReviewAppraisal(c *gin.Context) {
	id := c.Param("id")

	type ReviewRequest struct {
		Status   string `json:"status" binding:"required"`
		Feedback string `json:"feedback"`
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target, ok := models.ParseStatus(req.Status)
	if !ok || (target != models.StatusReviewed && target != models.StatusApproved) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be reviewed or approved"})
		return
	}

	var appraisal models.Appraisal
	if err := config.DB.Preload("Publications").Preload("Events").
		Where("appraisal_id = ? AND delete_at IS NULL", id).
		First(&appraisal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appraisal not found"})
		return
	}

	if !models.CanTransition(appraisal.Status, target) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only submitted appraisals can be reviewed"})
		return
	}

	reviewerIDVal, _ := c.Get("userID")
	reviewerID := reviewerIDVal.(int)

	now := time.Now()
	appraisal.Status = target
	appraisal.ReviewerID = &reviewerID
	appraisal.ReviewedAt = &now
	appraisal.UpdateAt = &now
	if req.Feedback != "" {
		appraisal.Feedback = &req.Feedback
	}

	// The decision ends the owner's open appraisal slot either way.
	appraisal.ActiveOwnerID = nil

	if target == models.StatusApproved {
		score := services.ComputeFinalScore(services.BuildScoreInputs(&appraisal))
		appraisal.FinalScore = &score
	}

	// Sub-records were only loaded for scoring; don't write them back.
	if err := config.DB.Omit(clause.Associations).Save(&appraisal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to review appraisal"})
		return
	}

	var owner models.User
	if err := config.DB.Where("user_id = ?", appraisal.UserID).First(&owner).Error; err == nil {
		var reviewer models.User
		config.DB.Where("user_id = ?", reviewerID).First(&reviewer)
		services.NotifyReviewOutcome(&appraisal, &owner, &reviewer)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Appraisal " + string(target),
		"appraisal": appraisal,
	})
}
