package interview

import (
	"time"

	"github.com/quotelens/interview-engine/internal/conflict"
	"github.com/quotelens/interview-engine/internal/questionbank"
	"github.com/quotelens/interview-engine/internal/scoring"
)

// #region status

// Status is the interview lifecycle state.
type Status string

const (
	StatusCollecting Status = "collecting"
	StatusSuggested  Status = "suggested"
)

// #endregion

// #region constants

const (
	// MaxRounds caps the interview; at the cap the engine force-suggests if
	// nothing blocks.
	MaxRounds = 8

	// TargetConfidence is the auto-suggest threshold.
	TargetConfidence = 0.82
)

// #endregion

// #region answer

// Answer is one accepted interview answer. The answers slice is append-only;
// insertion order is the canonical history.
type Answer struct {
	QuestionID string    `json:"qid"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	CreatedAt  time.Time `json:"createdAt"`
}

// #endregion

// #region meta

// Meta carries bookkeeping that drives the anti-repeat guard.
type Meta struct {
	UpdatedAt    time.Time `json:"updatedAt"`
	LastAskedQID string    `json:"lastAskedQid,omitempty"`
}

// #endregion

// #region state

// State is the engine's persisted value, embedded under DocumentKey in a
// tenant's onboarding document.
type State struct {
	Status               Status                 `json:"status"`
	Round                int                    `json:"round"`
	ConfidenceScore      float64                `json:"confidenceScore"`
	SuggestedIndustryKey string                 `json:"suggestedIndustryKey,omitempty"`
	NeedsConfirmation    bool                   `json:"needsConfirmation"`
	NextQuestion         *questionbank.Question `json:"nextQuestion,omitempty"`
	Answers              []Answer               `json:"answers"`
	Candidates           []scoring.Candidate    `json:"candidates"`
	Conflicts            []conflict.Conflict    `json:"conflicts,omitempty"`
	Meta                 Meta                   `json:"meta"`
}

// NewState returns the fresh state created on first start or on reset.
func NewState() State {
	return State{
		Status:     StatusCollecting,
		Round:      1,
		Answers:    []Answer{},
		Candidates: []scoring.Candidate{},
	}
}

// normalized repairs a state loaded from a possibly stale or hand-edited
// document so every field honors the engine's invariants.
func (s State) normalized() State {
	if s.Status != StatusCollecting && s.Status != StatusSuggested {
		s.Status = StatusCollecting
	}
	if s.Round < 1 {
		s.Round = 1
	}
	if s.Round > MaxRounds {
		s.Round = MaxRounds
	}
	if s.ConfidenceScore < 0 {
		s.ConfidenceScore = 0
	}
	if s.ConfidenceScore > 1 {
		s.ConfidenceScore = 1
	}
	if s.Answers == nil {
		s.Answers = []Answer{}
	}
	if s.Candidates == nil {
		s.Candidates = []scoring.Candidate{}
	}
	if s.Status == StatusSuggested {
		s.NextQuestion = nil
	}
	return s
}

// #endregion
