package selector

import (
	"github.com/quotelens/interview-engine/internal/conflict"
	"github.com/quotelens/interview-engine/internal/industry"
	"github.com/quotelens/interview-engine/internal/questionbank"
	"github.com/quotelens/interview-engine/internal/scoring"
)

// #region priority-list

// repeatFallbacks is scanned in order when the proposed question would repeat
// the one asked last turn.
var repeatFallbacks = []string{
	questionbank.QSpecialty,
	questionbank.QTopJobs,
	questionbank.QMaterials,
	questionbank.QJobType,
	questionbank.QMaterialsObjects,
	questionbank.QWhoFor,
	questionbank.QLocation,
}

// #endregion

// #region guard

// GuardRepeat ensures the engine never re-asks the question it asked last
// turn. On a repeat it tries the clarifier, then the fallback priority list,
// then the freeform rotation, which by construction differs from the last
// asked id. Forward progress is guaranteed.
func (s *Selector) GuardRepeat(
	proposed questionbank.Question,
	lastAskedID string,
	answered map[string]bool,
	conflicts []conflict.Conflict,
	cands []scoring.Candidate,
) questionbank.Question {
	last := industry.NormalizeKey(lastAskedID)
	if last == "" || industry.NormalizeKey(proposed.ID) != last {
		return proposed
	}

	if len(cands) >= 2 {
		c := s.Clarify(conflicts, cands)
		if industry.NormalizeKey(c.ID) != last {
			return c
		}
	}

	for _, id := range repeatFallbacks {
		if answered[id] || industry.NormalizeKey(id) == last {
			continue
		}
		if q, ok := s.bank.Get(id); ok {
			return q
		}
	}

	return questionbank.Freeform(lastAskedID)
}

// #endregion
