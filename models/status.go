package models

// AppraisalStatus is the closed set of workflow states an appraisal moves
// through. Transitions are restricted to draft→submitted→{reviewed,approved};
// anything else is rejected at the request boundary.
type AppraisalStatus string

const (
	StatusDraft     AppraisalStatus = "draft"
	StatusSubmitted AppraisalStatus = "submitted"
	StatusReviewed  AppraisalStatus = "reviewed"
	StatusApproved  AppraisalStatus = "approved"
)

var allowedTransitions = map[AppraisalStatus][]AppraisalStatus{
	StatusDraft:     {StatusSubmitted},
	StatusSubmitted: {StatusReviewed, StatusApproved},
}

// ParseStatus returns the canonical status for s, or false when s is not a
// known status value.
func ParseStatus(s string) (AppraisalStatus, bool) {
	switch AppraisalStatus(s) {
	case StatusDraft, StatusSubmitted, StatusReviewed, StatusApproved:
		return AppraisalStatus(s), true
	}
	return "", false
}

// CanTransition reports whether an appraisal in state from may move to state to.
func CanTransition(from, to AppraisalStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsOpen reports whether the status still occupies the owner's single
// active-appraisal slot.
func (s AppraisalStatus) IsOpen() bool {
	return s == StatusDraft || s == StatusSubmitted
}
