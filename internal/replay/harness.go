package replay

import (
	"fmt"

	"github.com/quotelens/interview-engine/internal/industry"
	"github.com/quotelens/interview-engine/internal/interview"
)

// #region types

// TurnResult captures the state after one scripted turn.
type TurnResult struct {
	Turn  int
	QID   string
	State interview.State
	Err   error
}

// Mismatch is one failed expectation.
type Mismatch struct {
	Turn  int
	Field string
	Want  string
	Got   string
}

// Summary aggregates a replay run.
type Summary struct {
	Turns      int
	Checked    int
	Mismatches []Mismatch
	Final      interview.State
}

// #endregion types

// #region replay

// Replay runs a scripted interview from a fresh state through the engine and
// diffs each expectation against the state after its turn. Operates entirely
// in-memory.
func Replay(engine *interview.Engine, f *Fixture) ([]TurnResult, Summary) {
	st := engine.Start(interview.NewState(), f.Canon)

	results := make([]TurnResult, 0, len(f.Turns))
	for i, turn := range f.Turns {
		qid := turn.QID
		if qid == "" && st.NextQuestion != nil {
			qid = st.NextQuestion.ID
		}
		next, err := engine.Answer(st, qid, turn.Answer, f.Canon)
		if err == nil {
			st = next
		}
		results = append(results, TurnResult{Turn: i + 1, QID: qid, State: st, Err: err})
	}

	summary := Summary{Turns: len(results), Final: st}
	for _, exp := range f.Expected {
		if exp.Turn < 1 || exp.Turn > len(results) {
			summary.Mismatches = append(summary.Mismatches, Mismatch{
				Turn: exp.Turn, Field: "turn", Want: "within script", Got: "out of range",
			})
			continue
		}
		summary.Checked++
		summary.Mismatches = append(summary.Mismatches, check(exp, results[exp.Turn-1].State)...)
	}
	return results, summary
}

// #endregion replay

// #region check

func check(exp Expectation, st interview.State) []Mismatch {
	var out []Mismatch
	add := func(field, want, got string) {
		if want != got {
			out = append(out, Mismatch{Turn: exp.Turn, Field: field, Want: want, Got: got})
		}
	}

	if exp.Status != "" {
		add("status", exp.Status, string(st.Status))
	}
	if exp.Round != 0 {
		add("round", fmt.Sprintf("%d", exp.Round), fmt.Sprintf("%d", st.Round))
	}
	if exp.TopKey != "" {
		got := ""
		if len(st.Candidates) > 0 {
			got = industry.NormalizeKey(st.Candidates[0].Key)
		}
		add("top_key", industry.NormalizeKey(exp.TopKey), got)
	}
	if exp.NextQID != "" {
		got := ""
		if st.NextQuestion != nil {
			got = st.NextQuestion.ID
		}
		add("next_qid", exp.NextQID, got)
	}
	if exp.SuggestedKey != "" {
		add("suggested_key", industry.NormalizeKey(exp.SuggestedKey), st.SuggestedIndustryKey)
	}
	if len(exp.ConflictTypes) > 0 {
		want := make(map[string]bool, len(exp.ConflictTypes))
		for _, t := range exp.ConflictTypes {
			want[t] = true
		}
		got := make(map[string]bool, len(st.Conflicts))
		for _, c := range st.Conflicts {
			got[string(c.Type)] = true
		}
		for t := range want {
			if !got[t] {
				out = append(out, Mismatch{Turn: exp.Turn, Field: "conflict_types", Want: t, Got: "absent"})
			}
		}
		for t := range got {
			if !want[t] {
				out = append(out, Mismatch{Turn: exp.Turn, Field: "conflict_types", Want: "absent", Got: t})
			}
		}
	}
	return out
}

// #endregion check
