package scoring

import (
	"sort"
	"strings"

	"github.com/quotelens/interview-engine/internal/industry"
)

// #region types

// Answered is one answer from the interview history, in insertion order.
type Answered struct {
	QuestionID string
	Text       string
}

// Candidate is an industry key with its accumulated heuristic score.
type Candidate struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Score int    `json:"score"`
}

// MaxCandidates caps the ranked candidate list.
const MaxCandidates = 6

// FallbackKey is emitted with score 0 when nothing scored above zero.
const FallbackKey = "service"

// #endregion

// #region scorer

// ScoreCandidates ranks industry candidates from the full answer history.
// Keyword patterns test the concatenated haystack once each; option boosts
// test individual answers against their question's registered triggers.
// Keys outside a non-empty canonical list are discarded. Sort is stable
// descending, so ties keep table insertion order.
func ScoreCandidates(answers []Answered, canon []industry.Entry, rules Rules) []Candidate {
	texts := make([]string, 0, len(answers))
	for _, a := range answers {
		texts = append(texts, a.Text)
	}
	haystack := strings.ToLower(strings.Join(texts, "\n"))

	totals := make(map[string]int)
	order := make([]string, 0, len(rules.Keywords))
	touch := func(key string, points int) {
		key = industry.NormalizeKey(key)
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] += points
	}

	for _, rule := range rules.Keywords {
		for _, p := range rule.Patterns {
			if p.Match(haystack) {
				touch(rule.Key, 1)
			}
		}
	}

	for _, a := range answers {
		lower := strings.ToLower(a.Text)
		for _, b := range rules.Boosts {
			if b.QuestionID != a.QuestionID {
				continue
			}
			if b.Trigger.Match(lower) {
				touch(b.Key, b.Points)
			}
		}
	}

	allowed := canonKeySet(canon)
	cands := make([]Candidate, 0, len(order))
	for _, key := range order {
		if totals[key] <= 0 {
			continue
		}
		if allowed != nil && !allowed[key] {
			continue
		}
		cands = append(cands, Candidate{
			Key:   key,
			Label: industry.LabelFor(canon, key),
			Score: totals[key],
		})
	}

	if len(cands) == 0 {
		return []Candidate{{
			Key:   FallbackKey,
			Label: industry.LabelFor(canon, FallbackKey),
			Score: 0,
		}}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Score > cands[j].Score
	})
	if len(cands) > MaxCandidates {
		cands = cands[:MaxCandidates]
	}
	return cands
}

func canonKeySet(canon []industry.Entry) map[string]bool {
	if len(canon) == 0 {
		return nil
	}
	set := make(map[string]bool, len(canon))
	for _, e := range canon {
		set[industry.NormalizeKey(e.Key)] = true
	}
	return set
}

// #endregion
