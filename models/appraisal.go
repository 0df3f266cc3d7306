package models

import (
	"time"
)

// Publication sub-record types.
const (
	PublicationJournal    = "journal"
	PublicationConference = "conference"
	PublicationPatent     = "patent"
)

// Activity event sub-record types.
const (
	EventWorkshop      = "workshop"
	EventCertification = "certification"
)

type Appraisal struct {
	AppraisalID     int             `gorm:"primaryKey;column:appraisal_id" json:"appraisal_id"`
	AppraisalNumber string          `gorm:"column:appraisal_number;unique" json:"appraisal_number"`
	UserID          int             `gorm:"column:user_id;index" json:"user_id"`
	AcademicYear    string          `gorm:"column:academic_year" json:"academic_year"`
	Semester        string          `gorm:"column:semester" json:"semester"`
	Status          AppraisalStatus `gorm:"column:status" json:"status"`

	// ActiveOwnerID mirrors UserID while the appraisal is draft or submitted
	// and is cleared afterwards. The unique index makes a second open
	// appraisal for the same owner fail at the database, closing the race
	// between two concurrent creates.
	ActiveOwnerID *int `gorm:"column:active_owner_id;uniqueIndex" json:"-"`

	// Teaching section
	CoursesTaught   int     `gorm:"column:courses_taught" json:"courses_taught"`
	TeachingHours   int     `gorm:"column:teaching_hours" json:"teaching_hours"`
	AverageFeedback float64 `gorm:"column:average_feedback" json:"average_feedback"`

	// Service section
	AdministrativeRoles int    `gorm:"column:administrative_roles" json:"administrative_roles"`
	Committees          int    `gorm:"column:committees" json:"committees"`
	ServiceDetails      string `gorm:"column:service_details" json:"service_details"`

	Achievements   string `gorm:"column:achievements" json:"achievements"`
	SelfAssessment string `gorm:"column:self_assessment" json:"self_assessment"`

	FinalScore  *float64   `gorm:"column:final_score" json:"final_score,omitempty"`
	Feedback    *string    `gorm:"column:feedback" json:"feedback,omitempty"`
	ReviewerID  *int       `gorm:"column:reviewer_id" json:"reviewer_id,omitempty"`
	SubmittedAt *time.Time `gorm:"column:submitted_at" json:"submitted_at,omitempty"`
	ReviewedAt  *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`

	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	User         User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Reviewer     *User           `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
	Publications []Publication   `gorm:"foreignKey:AppraisalID" json:"publications,omitempty"`
	Events       []ActivityEvent `gorm:"foreignKey:AppraisalID" json:"events,omitempty"`
}

// Publication is a research output recorded inside one appraisal. It has no
// lifecycle of its own.
type Publication struct {
	PublicationID int        `gorm:"primaryKey;column:publication_id" json:"publication_id"`
	AppraisalID   int        `gorm:"column:appraisal_id;index" json:"appraisal_id"`
	Type          string     `gorm:"column:type" json:"type"`
	Title         string     `gorm:"column:title" json:"title"`
	Venue         string     `gorm:"column:venue" json:"venue"`
	Year          int        `gorm:"column:year" json:"year"`
	CreateAt      *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt      *time.Time `gorm:"column:update_at" json:"update_at"`
}

// ActivityEvent is a professional-development entry (workshop attended,
// certification earned) recorded inside one appraisal.
type ActivityEvent struct {
	EventID     int        `gorm:"primaryKey;column:event_id" json:"event_id"`
	AppraisalID int        `gorm:"column:appraisal_id;index" json:"appraisal_id"`
	Type        string     `gorm:"column:type" json:"type"`
	Title       string     `gorm:"column:title" json:"title"`
	Organizer   string     `gorm:"column:organizer" json:"organizer"`
	EventDate   *time.Time `gorm:"column:event_date" json:"event_date,omitempty"`
	CreateAt    *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    *time.Time `gorm:"column:update_at" json:"update_at"`
}

func (Appraisal) TableName() string {
	return "appraisals"
}

func (Publication) TableName() string {
	return "appraisal_publications"
}

func (ActivityEvent) TableName() string {
	return "appraisal_events"
}

// ValidPublicationType reports whether t is one of the accepted publication types.
func ValidPublicationType(t string) bool {
	return t == PublicationJournal || t == PublicationConference || t == PublicationPatent
}

// ValidEventType reports whether t is one of the accepted event types.
func ValidEventType(t string) bool {
	return t == EventWorkshop || t == EventCertification
}
