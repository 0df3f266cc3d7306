package controllers

import (
	"net/http"
	"time"

	"faculty-appraisal-api/config"
	"faculty-appraisal-api/models"

	"github.com/gin-gonic/gin"
)

// GetFacultyList returns all faculty accounts
func GetFacultyList(c *gin.Context) {
	var users []models.User
	query := config.DB.Where("role = ? AND delete_at IS NULL", models.RoleFaculty)

	if department := c.Query("department"); department != "" {
		query = query.Where("department = ?", department)
	}

	if err := query.Order("name ASC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch faculty"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"faculty": users,
		"total":   len(users),
	})
}

// GetFacultyMember returns a single faculty account with appraisal history
func GetFacultyMember(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := config.DB.Where("user_id = ? AND role = ? AND delete_at IS NULL", id, models.RoleFaculty).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Faculty member not found"})
		return
	}

	var appraisals []models.Appraisal
	config.DB.Where("user_id = ? AND delete_at IS NULL", user.UserID).
		Order("create_at DESC").
		Find(&appraisals)

	c.JSON(http.StatusOK, gin.H{
		"faculty":    user,
		"appraisals": appraisals,
	})
}

// SetFacultyStatus activates or deactivates a faculty account
func SetFacultyStatus(c *gin.Context) {
	id := c.Param("id")

	type StatusRequest struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("user_id = ? AND role = ? AND delete_at IS NULL", id, models.RoleFaculty).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Faculty member not found"})
		return
	}

	now := time.Now()
	user.IsActive = *req.IsActive
	user.UpdateAt = &now

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update faculty status"})
		return
	}

	message := "Faculty member activated"
	if !user.IsActive {
		message = "Faculty member deactivated"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"faculty": user,
	})
}
