package services

import (
	"fmt"
	"log"

	"faculty-appraisal-api/config"
	"faculty-appraisal-api/models"
)

// NotifyReviewOutcome mails the owning faculty member after an admin review.
// Delivery is best effort: a failing relay must never fail the review request,
// so errors are only logged.
func NotifyReviewOutcome(appraisal *models.Appraisal, owner *models.User, reviewer *models.User) {
	if owner == nil || owner.Email == "" {
		return
	}

	subject := fmt.Sprintf("Appraisal %s has been %s", appraisal.AppraisalNumber, appraisal.Status)

	feedback := ""
	if appraisal.Feedback != nil && *appraisal.Feedback != "" {
		feedback = fmt.Sprintf("<p>Reviewer feedback:</p><blockquote>%s</blockquote>", *appraisal.Feedback)
	}

	scoreLine := ""
	if appraisal.Status == models.StatusApproved && appraisal.FinalScore != nil {
		scoreLine = fmt.Sprintf("<p>Final score: <strong>%.2f</strong> / 100</p>", *appraisal.FinalScore)
	}

	reviewerName := ""
	if reviewer != nil {
		reviewerName = fmt.Sprintf("<p>Reviewed by %s</p>", reviewer.Name)
	}

	html := fmt.Sprintf(
		`<p>Dear %s,</p>
<p>Your appraisal for %s (%s semester) is now <strong>%s</strong>.</p>
%s%s%s
<p>You can see the full record in the appraisal portal.</p>`,
		owner.Name, appraisal.AcademicYear, appraisal.Semester, appraisal.Status,
		scoreLine, feedback, reviewerName,
	)

	if err := config.SendMail([]string{owner.Email}, subject, html); err != nil {
		log.Printf("Warning: review notification mail to %s failed: %v", owner.Email, err)
	}
}
