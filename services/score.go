package services

import (
	"faculty-appraisal-api/models"
)

// Category weights of the final score. Teaching is graded out of its weight
// directly; the other categories accumulate fixed points per item and are
// then scaled by their weight fraction.
const (
	teachingWeight    = 40.0
	researchFraction  = 0.3
	serviceFraction   = 0.2
	developFraction   = 0.1
	maxFinalScore     = 100.0
	maxFeedbackRating = 5.0
)

// Points per research output.
const (
	journalPoints    = 5.0
	conferencePoints = 3.0
	patentPoints     = 8.0
)

// ScoreInputs is an immutable snapshot of the category counts an appraisal
// is scored from. Building the snapshot is the only place that touches the
// record; the computation itself is persistence-free.
type ScoreInputs struct {
	AverageFeedback     float64
	Publications        int
	Conferences         int
	Patents             int
	AdministrativeRoles int
	Committees          int
	Workshops           int
	Certifications      int
}

// ComputeFinalScore applies the weighted category formula and clamps the
// result to 100. Same inputs always yield the same score.
func ComputeFinalScore(in ScoreInputs) float64 {
	teaching := (in.AverageFeedback / maxFeedbackRating) * teachingWeight
	research := (float64(in.Publications)*journalPoints +
		float64(in.Conferences)*conferencePoints +
		float64(in.Patents)*patentPoints) * researchFraction
	service := float64(in.AdministrativeRoles+in.Committees) * 2 * serviceFraction
	develop := float64(in.Workshops+in.Certifications) * 2 * developFraction

	score := teaching + research + service + develop
	if score > maxFinalScore {
		score = maxFinalScore
	}
	return score
}

// BuildScoreInputs derives the scoring snapshot from an appraisal and its
// loaded sub-records. Research counts come from publications by type,
// development counts from events by type.
func BuildScoreInputs(appraisal *models.Appraisal) ScoreInputs {
	in := ScoreInputs{
		AverageFeedback:     appraisal.AverageFeedback,
		AdministrativeRoles: appraisal.AdministrativeRoles,
		Committees:          appraisal.Committees,
	}

	for _, pub := range appraisal.Publications {
		switch pub.Type {
		case models.PublicationJournal:
			in.Publications++
		case models.PublicationConference:
			in.Conferences++
		case models.PublicationPatent:
			in.Patents++
		}
	}

	for _, event := range appraisal.Events {
		switch event.Type {
		case models.EventWorkshop:
			in.Workshops++
		case models.EventCertification:
			in.Certifications++
		}
	}

	return in
}
