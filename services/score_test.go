package services

import (
	"math"
	"testing"

	"faculty-appraisal-api/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeFinalScoreWeightedCategories(t *testing.T) {
	// Full teaching marks, two journals, one conference, one committee.
	in := ScoreInputs{
		AverageFeedback: 5,
		Publications:    2,
		Conferences:     1,
		Committees:      1,
	}

	got := ComputeFinalScore(in)

	// 40 + (2*5+1*3)*0.3 + 1*2*0.2 + 0 = 44.3
	if !almostEqual(got, 44.3) {
		t.Fatalf("expected 44.3, got %v", got)
	}
}

func TestComputeFinalScoreAllCategories(t *testing.T) {
	in := ScoreInputs{
		AverageFeedback:     4,
		Publications:        1,
		Conferences:         2,
		Patents:             1,
		AdministrativeRoles: 1,
		Committees:          2,
		Workshops:           3,
		Certifications:      1,
	}

	got := ComputeFinalScore(in)

	// teaching 32, research (5+6+8)*0.3=5.7, service 3*2*0.2=1.2, develop 4*2*0.1=0.8
	if !almostEqual(got, 39.7) {
		t.Fatalf("expected 39.7, got %v", got)
	}
}

func TestComputeFinalScoreClampsAt100(t *testing.T) {
	in := ScoreInputs{
		AverageFeedback: 5,
		Patents:         100,
	}

	if got := ComputeFinalScore(in); got != 100 {
		t.Fatalf("expected score clamped to 100, got %v", got)
	}
}

func TestComputeFinalScoreZeroInputs(t *testing.T) {
	if got := ComputeFinalScore(ScoreInputs{}); got != 0 {
		t.Fatalf("expected 0 for empty inputs, got %v", got)
	}
}

func TestComputeFinalScoreDeterministic(t *testing.T) {
	in := ScoreInputs{
		AverageFeedback: 3.7,
		Publications:    4,
		Workshops:       2,
	}

	first := ComputeFinalScore(in)
	second := ComputeFinalScore(in)

	if first != second {
		t.Fatalf("expected deterministic score, got %v then %v", first, second)
	}
}

func TestBuildScoreInputsCountsSubRecordsByType(t *testing.T) {
	appraisal := &models.Appraisal{
		AverageFeedback:     4.5,
		AdministrativeRoles: 1,
		Committees:          2,
		Publications: []models.Publication{
			{Type: models.PublicationJournal},
			{Type: models.PublicationJournal},
			{Type: models.PublicationConference},
			{Type: models.PublicationPatent},
			{Type: "unknown"},
		},
		Events: []models.ActivityEvent{
			{Type: models.EventWorkshop},
			{Type: models.EventCertification},
			{Type: models.EventCertification},
			{Type: "unknown"},
		},
	}

	in := BuildScoreInputs(appraisal)

	if in.AverageFeedback != 4.5 {
		t.Fatalf("expected average feedback 4.5, got %v", in.AverageFeedback)
	}
	if in.Publications != 2 || in.Conferences != 1 || in.Patents != 1 {
		t.Fatalf("unexpected research counts: %+v", in)
	}
	if in.AdministrativeRoles != 1 || in.Committees != 2 {
		t.Fatalf("unexpected service counts: %+v", in)
	}
	if in.Workshops != 1 || in.Certifications != 2 {
		t.Fatalf("unexpected development counts: %+v", in)
	}
}
