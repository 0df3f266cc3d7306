package controllers

import (
	"database/sql/driver"
	"net/http"
	"regexp"
	"strings"
	"testing"
	"time"

	"faculty-appraisal-api/config"
	"faculty-appraisal-api/models"
	"faculty-appraisal-api/services"

	"github.com/gin-gonic/gin"
)

func adminRouter() *gin.Engine {
	r := gin.New()
	group := r.Group("", withIdentity(1, models.RoleAdmin))
	group.PUT("/appraisals/:id/review", ReviewAppraisal)
	return r
}

func TestReviewAppraisalRejectsInvalidStatus(t *testing.T) {
	// "draft" is a known status but not a legal review target, so the
	// handler must refuse before touching the database.
	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()
	config.DB = db

	w := performRequest(adminRouter(), http.MethodPut, "/appraisals/5/review",
		`{"status":"draft","feedback":"try again"}`, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReviewAppraisalRejectsUnknownStatus(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()
	config.DB = db

	w := performRequest(adminRouter(), http.MethodPut, "/appraisals/5/review",
		`{"status":"rubber-stamped"}`, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// setArgIndex finds the bind-argument position of column within the SET
// clause of a captured UPDATE statement. SET arguments precede the WHERE
// arguments, so the position in the clause is the position in the bind list.
func setArgIndex(t *testing.T, query, column string) int {
	t.Helper()
	start := strings.Index(query, "SET ")
	end := strings.Index(query, " WHERE")
	if start < 0 || end < 0 {
		t.Fatalf("not an UPDATE statement: %s", query)
	}
	parts := strings.Split(query[start+4:end], ",")
	for i, part := range parts {
		if strings.Contains(part, "`"+column+"`") {
			return i
		}
	}
	t.Fatalf("column %s not in SET clause: %s", column, query)
	return -1
}

// reviewSteps scripts the full review round trip for appraisal 5 owned by
// user 7: load with sub-records, persist the decision, then look up owner
// and reviewer for the notification. The owner row carries no email so no
// mail is sent.
func reviewSteps() []*queryStep {
	return []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .+ FROM .appraisals. WHERE appraisal_id = \\?"),
			args:    []driver.Value{"5"},
			columns: []string{"appraisal_id", "user_id", "status", "average_feedback", "committees"},
			rows: [][]driver.Value{
				{int64(5), int64(7), "submitted", 5.0, int64(1)},
			},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .+ FROM .appraisal_events. WHERE"),
			args:    []driver.Value{int64(5)},
			columns: []string{"event_id", "appraisal_id", "type"},
			rows:    [][]driver.Value{},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .+ FROM .appraisal_publications. WHERE"),
			args:    []driver.Value{int64(5)},
			columns: []string{"publication_id", "appraisal_id", "type"},
			rows: [][]driver.Value{
				{int64(11), int64(5), "journal"},
				{int64(12), int64(5), "journal"},
				{int64(13), int64(5), "conference"},
			},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE .appraisals. SET"),
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .+ FROM .users. WHERE user_id = \\?"),
			args:    []driver.Value{int64(7)},
			columns: []string{"user_id", "name"},
			rows: [][]driver.Value{
				{int64(7), "Prof"},
			},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .+ FROM .users. WHERE user_id = \\?"),
			args:    []driver.Value{int64(1)},
			columns: []string{"user_id", "name"},
			rows: [][]driver.Value{
				{int64(1), "Dean"},
			},
		},
	}
}

func TestReviewAppraisalApprovalPersistsScoreAndReviewer(t *testing.T) {
	steps := reviewSteps()
	update := steps[3]

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()
	config.DB = db

	w := performRequest(adminRouter(), http.MethodPut, "/appraisals/5/review",
		`{"status":"approved","feedback":"strong year"}`, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}

	if got := update.saw[setArgIndex(t, update.sawQuery, "status")]; got != string(models.StatusApproved) {
		t.Fatalf("persisted status = %v, want approved", got)
	}

	// The stored score must be exactly what the formula yields for the
	// loaded counts: feedback 5.0, two journals, one conference, one committee.
	want := services.ComputeFinalScore(services.ScoreInputs{
		AverageFeedback: 5,
		Publications:    2,
		Conferences:     1,
		Committees:      1,
	})
	got := update.saw[setArgIndex(t, update.sawQuery, "final_score")]
	if score, ok := got.(float64); !ok || score != want {
		t.Fatalf("persisted final_score = %v, want %v", got, want)
	}

	if got := update.saw[setArgIndex(t, update.sawQuery, "reviewer_id")]; got != int64(1) {
		t.Fatalf("persisted reviewer_id = %v, want 1", got)
	}
	if got := update.saw[setArgIndex(t, update.sawQuery, "reviewed_at")]; got == nil {
		t.Fatal("persisted reviewed_at is NULL, want a timestamp")
	} else if _, ok := got.(time.Time); !ok {
		t.Fatalf("persisted reviewed_at = %T, want time.Time", got)
	}
	if got := update.saw[setArgIndex(t, update.sawQuery, "active_owner_id")]; got != nil {
		t.Fatalf("persisted active_owner_id = %v, want NULL", got)
	}
}

func TestReviewAppraisalReviewedLeavesScoreUnset(t *testing.T) {
	steps := reviewSteps()
	update := steps[3]

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()
	config.DB = db

	w := performRequest(adminRouter(), http.MethodPut, "/appraisals/5/review",
		`{"status":"reviewed","feedback":"needs revision"}`, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}

	if got := update.saw[setArgIndex(t, update.sawQuery, "status")]; got != string(models.StatusReviewed) {
		t.Fatalf("persisted status = %v, want reviewed", got)
	}
	if got := update.saw[setArgIndex(t, update.sawQuery, "final_score")]; got != nil {
		t.Fatalf("persisted final_score = %v, want NULL", got)
	}
	if got := update.saw[setArgIndex(t, update.sawQuery, "reviewer_id")]; got != int64(1) {
		t.Fatalf("persisted reviewer_id = %v, want 1", got)
	}
}

func TestReviewAppraisalMissingRecordReturns404(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .+ FROM .appraisals. WHERE appraisal_id = \\?"),
			args:    []driver.Value{"5"},
			columns: []string{"appraisal_id", "user_id", "status"},
			rows:    [][]driver.Value{},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()
	config.DB = db

	w := performRequest(adminRouter(), http.MethodPut, "/appraisals/5/review",
		`{"status":"approved"}`, nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
