package selector

import (
	"github.com/quotelens/interview-engine/internal/industry"
	"github.com/quotelens/interview-engine/internal/questionbank"
	"github.com/quotelens/interview-engine/internal/scoring"
)

// #region groups

var automotiveFamily = map[string]bool{
	"auto_detailing": true,
	"auto_repair":    true,
	"auto_collision": true,
	"auto_glass":     true,
	"car_wash":       true,
}

var tradesGroup = map[string]bool{
	"hvac":       true,
	"plumbing":   true,
	"electrical": true,
	"roofing":    true,
}

// #endregion

// #region checklists

// Per-branch checklists: the first unanswered id is asked next. An exhausted
// checklist returns "" and the orchestrator falls back to a clarifier or
// freeform prompt.
var (
	automotiveChecklist = []string{
		questionbank.QSpecialty,
		questionbank.QTopJobs,
		questionbank.QJobType,
		questionbank.QMaterialsObjects,
	}
	tradesChecklist = []string{
		questionbank.QJobType,
		questionbank.QMaterials,
		questionbank.QWhoFor,
		questionbank.QTopJobs,
	}
	cleaningChecklist = []string{
		questionbank.QWhoFor,
		questionbank.QTopJobs,
		questionbank.QMaterialsObjects,
	}
	genericChecklist = []string{
		questionbank.QTopJobs,
		questionbank.QMaterialsObjects,
		questionbank.QJobType,
		questionbank.QMaterials,
		questionbank.QWhoFor,
		questionbank.QSpecialty,
		questionbank.QLocation,
	}
)

// #endregion

// #region selector

// Selector picks the next interview question from a fixed decision tree keyed
// on the current top-two candidates and the answered-question set.
type Selector struct {
	bank *questionbank.Bank
}

// New creates a selector over the given question bank.
func New(bank *questionbank.Bank) *Selector {
	return &Selector{bank: bank}
}

// #endregion

// #region next

// Next returns the next targeted question id, or "" when the active branch is
// exhausted. The broad opener always goes first.
func (s *Selector) Next(answered map[string]bool, cands []scoring.Candidate) string {
	if !answered[questionbank.QServices] {
		return questionbank.QServices
	}

	top, second := topTwoKeys(cands)

	switch {
	case automotiveFamily[top] || automotiveFamily[second]:
		return firstUnanswered(automotiveChecklist, answered)
	case tradesGroup[top] || tradesGroup[second]:
		return firstUnanswered(tradesChecklist, answered)
	case top == "cleaning_services" || second == "cleaning_services":
		return firstUnanswered(cleaningChecklist, answered)
	default:
		return firstUnanswered(genericChecklist, answered)
	}
}

func firstUnanswered(checklist []string, answered map[string]bool) string {
	for _, id := range checklist {
		if !answered[id] {
			return id
		}
	}
	return ""
}

func topTwoKeys(cands []scoring.Candidate) (string, string) {
	top, second := "", ""
	if len(cands) > 0 {
		top = industry.NormalizeKey(cands[0].Key)
	}
	if len(cands) > 1 {
		second = industry.NormalizeKey(cands[1].Key)
	}
	return top, second
}

// #endregion
