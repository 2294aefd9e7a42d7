package domain

import "strings"

// Stage is a candidate's position in the recruitment pipeline.
type Stage string

// Pipeline stages, in progression order.
const (
	// StageApplied is the entry stage for every new candidate.
	StageApplied Stage = "Applied"

	// StageInterview means the candidate is being interviewed.
	StageInterview Stage = "Interview"

	// StageOffer means an offer has been extended.
	StageOffer Stage = "Offer"

	// StageRejected means the candidate is no longer being considered.
	StageRejected Stage = "Rejected"
)

// DefaultStage is assigned to candidates added without an explicit stage.
const DefaultStage = StageApplied

// MessageStageConstraints is shown when a stage token is not recognised.
const MessageStageConstraints = "Stage should be one of: Applied, Interview, Offer, Rejected"

// AllStages returns every stage in progression order.
func AllStages() []Stage {
	return []Stage{StageApplied, StageInterview, StageOffer, StageRejected}
}

// IsValid returns true if the stage is recognised.
func (s Stage) IsValid() bool {
	switch s {
	case StageApplied, StageInterview, StageOffer, StageRejected:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s Stage) String() string {
	return string(s)
}

// ParseStage matches s against the known stages, ignoring case.
func ParseStage(s string) (Stage, error) {
	for _, stage := range AllStages() {
		if strings.EqualFold(s, string(stage)) {
			return stage, nil
		}
	}
	return "", invalid("Stage", MessageStageConstraints)
}
