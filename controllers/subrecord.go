package controllers

import (
	"net/http"
	"time"

	"faculty-appraisal-api/config"
	"faculty-appraisal-api/models"
	"faculty-appraisal-api/utils"

	"github.com/gin-gonic/gin"
)

// currentDraft loads the caller's active draft appraisal. Sub-records are
// only addressable through it.
func currentDraft(c *gin.Context) (*models.Appraisal, bool) {
	userID, _ := c.Get("userID")

	var appraisal models.Appraisal
	if err := config.DB.Where("user_id = ? AND status = ? AND delete_at IS NULL",
		userID, models.StatusDraft).First(&appraisal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No draft appraisal found"})
		return nil, false
	}
	return &appraisal, true
}

type PublicationRequest struct {
	Type  string `json:"type" binding:"required"`
	Title string `json:"title" binding:"required"`
	Venue string `json:"venue"`
	Year  int    `json:"year"`
}

// AddPublication appends a publication to the active draft
func AddPublication(c *gin.Context) {
	var req PublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidPublicationType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Publication type must be journal, conference or patent"})
		return
	}

	draft, ok := currentDraft(c)
	if !ok {
		return
	}

	now := time.Now()
	publication := models.Publication{
		AppraisalID: draft.AppraisalID,
		Type:        req.Type,
		Title:       utils.SanitizeInput(req.Title),
		Venue:       utils.SanitizeInput(req.Venue),
		Year:        req.Year,
		CreateAt:    &now,
		UpdateAt:    &now,
	}

	if err := config.DB.Create(&publication).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add publication"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Publication added successfully",
		"publication": publication,
	})
}

// UpdatePublication updates a publication inside the active draft
func UpdatePublication(c *gin.Context) {
	id := c.Param("id")

	var req PublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidPublicationType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Publication type must be journal, conference or patent"})
		return
	}

	draft, ok := currentDraft(c)
	if !ok {
		return
	}

	var publication models.Publication
	if err := config.DB.Where("publication_id = ? AND appraisal_id = ?", id, draft.AppraisalID).
		First(&publication).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Publication not found"})
		return
	}

	now := time.Now()
	publication.Type = req.Type
	publication.Title = utils.SanitizeInput(req.Title)
	publication.Venue = utils.SanitizeInput(req.Venue)
	publication.Year = req.Year
	publication.UpdateAt = &now

	if err := config.DB.Save(&publication).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update publication"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Publication updated successfully",
		"publication": publication,
	})
}

// DeletePublication removes a publication from the active draft
func DeletePublication(c *gin.Context) {
	id := c.Param("id")

	draft, ok := currentDraft(c)
	if !ok {
		return
	}

	var publication models.Publication
	if err := config.DB.Where("publication_id = ? AND appraisal_id = ?", id, draft.AppraisalID).
		First(&publication).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Publication not found"})
		return
	}

	if err := config.DB.Delete(&publication).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete publication"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Publication deleted successfully"})
}

type EventRequest struct {
	Type      string     `json:"type" binding:"required"`
	Title     string     `json:"title" binding:"required"`
	Organizer string     `json:"organizer"`
	EventDate *time.Time `json:"event_date"`
}

// AddEvent appends a workshop or certification entry to the active draft
func AddEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidEventType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event type must be workshop or certification"})
		return
	}

	draft, ok := currentDraft(c)
	if !ok {
		return
	}

	now := time.Now()
	event := models.ActivityEvent{
		AppraisalID: draft.AppraisalID,
		Type:        req.Type,
		Title:       utils.SanitizeInput(req.Title),
		Organizer:   utils.SanitizeInput(req.Organizer),
		EventDate:   req.EventDate,
		CreateAt:    &now,
		UpdateAt:    &now,
	}

	if err := config.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event added successfully",
		"event":   event,
	})
}

// UpdateEvent updates an event inside the active draft
func UpdateEvent(c *gin.Context) {
	id := c.Param("id")

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidEventType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event type must be workshop or certification"})
		return
	}

	draft, ok := currentDraft(c)
	if !ok {
		return
	}

	var event models.ActivityEvent
	if err := config.DB.Where("event_id = ? AND appraisal_id = ?", id, draft.AppraisalID).
		First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	now := time.Now()
	event.Type = req.Type
	event.Title = utils.SanitizeInput(req.Title)
	event.Organizer = utils.SanitizeInput(req.Organizer)
	event.EventDate = req.EventDate
	event.UpdateAt = &now

	if err := config.DB.Save(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully",
		"event":   event,
	})
}

// DeleteEvent removes an event from the active draft
func DeleteEvent(c *gin.Context) {
	id := c.Param("id")

	draft, ok := currentDraft(c)
	if !ok {
		return
	}

	var event models.ActivityEvent
	if err := config.DB.Where("event_id = ? AND appraisal_id = ?", id, draft.AppraisalID).
		First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if err := config.DB.Delete(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
