package selector

import (
	"github.com/quotelens/interview-engine/internal/conflict"
	"github.com/quotelens/interview-engine/internal/questionbank"
	"github.com/quotelens/interview-engine/internal/scoring"
)

// #region pair-table

// pairClarifiers holds hand-written disambiguation questions for industry
// pairs that free text regularly confuses. Keyed by unordered normalized pair.
var pairClarifiers = map[[2]string]questionbank.Question{
	pairKey("auto_detailing", "auto_repair"): {
		ID:     "clarify_detail_vs_repair",
		Prompt: "Which sounds more like the bulk of your work?",
		Options: []string{
			"Cleaning, polishing, or protecting vehicles",
			"Fixing mechanical problems",
			"A bit of both",
		},
	},
	pairKey("auto_detailing", "cleaning_services"): {
		ID:     "clarify_detail_vs_cleaning",
		Prompt: "Do you mostly work on vehicles, or on homes and offices?",
		Options: []string{
			"Vehicles",
			"Homes or offices",
			"Both",
		},
	},
	pairKey("auto_repair", "auto_collision"): {
		ID:     "clarify_repair_vs_collision",
		Prompt: "Is most of your work accident damage, or mechanical breakdowns?",
		Options: []string{
			"Accident and body damage, often insurance work",
			"Mechanical breakdowns and maintenance",
			"Both",
		},
	},
}

func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

// #endregion

// #region clarify

// Clarify produces a targeted disambiguation question for the current top-two
// candidates: a registered pair question if the pair is known-confusable, a
// generic pick-one question otherwise, and an open-ended description prompt
// when fewer than two candidates exist.
func (s *Selector) Clarify(conflicts []conflict.Conflict, cands []scoring.Candidate) questionbank.Question {
	if len(cands) < 2 {
		if q, ok := s.bank.Get(questionbank.QDescribeBusiness); ok {
			return q
		}
		return questionbank.Question{
			ID:     questionbank.QDescribeBusiness,
			Prompt: "In one sentence, how would you describe your business to a new customer?",
		}
	}

	top, second := topTwoKeys(cands)
	if q, ok := pairClarifiers[pairKey(top, second)]; ok {
		return q
	}

	return questionbank.Question{
		ID:     "clarify_top_two",
		Prompt: "Which is closer to your business?",
		Options: []string{
			cands[0].Label,
			cands[1].Label,
			"Something else",
		},
	}
}

// #endregion
