package interview

// #region imports
import (
	"errors"
	"strings"
	"time"

	"github.com/quotelens/interview-engine/internal/conflict"
	"github.com/quotelens/interview-engine/internal/industry"
	"github.com/quotelens/interview-engine/internal/questionbank"
	"github.com/quotelens/interview-engine/internal/scoring"
	"github.com/quotelens/interview-engine/internal/selector"
)

// #endregion

// #region errors

// Validation errors. The caller must reject the request without mutating
// state; the returned state equals the input.
var (
	ErrEmptyQuestionID = errors.New("interview: empty question id")
	ErrEmptyAnswer     = errors.New("interview: empty answer text")
)

// #endregion

// #region engine

// Engine is the interview state machine. It is a pure, synchronous
// computation over an immutable input state: rule tables and question bank
// are injected at construction, the clock via WithClock, and persistence is
// the caller's responsibility.
type Engine struct {
	bank  *questionbank.Bank
	rules scoring.Rules
	sel   *selector.Selector
	now   func() time.Time
}

// NewEngine creates an engine over the given bank and rule tables.
func NewEngine(bank *questionbank.Bank, rules scoring.Rules) *Engine {
	return &Engine{
		bank:  bank,
		rules: rules,
		sel:   selector.New(bank),
		now:   time.Now,
	}
}

// WithClock overrides the time source. Tests supply fixed clocks.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// #endregion

// #region start

// Start computes the first question for a fresh interview. Idempotent: if a
// question is already pending or the state is already suggested, the input
// state is returned unchanged.
func (e *Engine) Start(st State, canon []industry.Entry) State {
	st = st.normalized()
	if st.Status == StatusSuggested || st.NextQuestion != nil {
		return st
	}

	answered := answeredSet(st.Answers)
	q := e.chooseQuestion(st, answered)
	q = e.sel.GuardRepeat(q, st.Meta.LastAskedQID, answered, st.Conflicts, st.Candidates)

	st.NextQuestion = &q
	st.Meta.LastAskedQID = q.ID
	st.Meta.UpdatedAt = e.now()
	return st
}

// #endregion

// #region answer

// Answer accepts one answer and produces the next state: rescore, re-estimate
// confidence, detect conflicts against the pre-answer state, then either
// suggest a final industry or ask the next question. A duplicate of the
// immediately preceding answer is rejected without mutation.
func (e *Engine) Answer(st State, qid, answerText string, canon []industry.Entry) (State, error) {
	st = st.normalized()

	qid = strings.TrimSpace(qid)
	text := strings.TrimSpace(answerText)
	if qid == "" {
		return st, ErrEmptyQuestionID
	}
	if text == "" {
		return st, ErrEmptyAnswer
	}
	if n := len(st.Answers); n > 0 {
		last := st.Answers[n-1]
		if last.QuestionID == qid && strings.EqualFold(last.Answer, text) {
			return st, nil
		}
	}

	prev := conflict.Previous{
		Round:      st.Round,
		TopKey:     topKey(st.Candidates),
		Confidence: st.ConfidenceScore,
	}

	now := e.now()
	answers := make([]Answer, len(st.Answers), len(st.Answers)+1)
	copy(answers, st.Answers)
	st.Answers = append(answers, Answer{
		QuestionID: qid,
		Question:   e.questionText(st, qid),
		Answer:     text,
		CreatedAt:  now,
	})

	st.Candidates = scoring.ScoreCandidates(toAnswered(st.Answers), canon, e.rules)
	st.ConfidenceScore = scoring.ComputeConfidence(st.Candidates)
	st.Conflicts = conflict.Detect(prev, st.Candidates, st.ConfidenceScore)

	st.Round = prev.Round + 1
	if st.Round > MaxRounds {
		st.Round = MaxRounds
	}

	blocking := conflict.Blocking(st.Conflicts)
	top := st.Candidates[0]
	reachedTarget := st.ConfidenceScore >= TargetConfidence && !blocking
	canForceSuggest := st.Round >= MaxRounds && !blocking && top.Score > 0

	if reachedTarget || canForceSuggest {
		st.Status = StatusSuggested
		st.NextQuestion = nil
		st.SuggestedIndustryKey = industry.NormalizeKey(top.Key)
		st.NeedsConfirmation = true
		st.Meta.UpdatedAt = now
		return st, nil
	}

	st.Status = StatusCollecting
	st.SuggestedIndustryKey = ""

	answered := answeredSet(st.Answers)
	var q questionbank.Question
	if blocking {
		q = e.sel.Clarify(st.Conflicts, st.Candidates)
	} else {
		q = e.chooseQuestion(st, answered)
	}
	q = e.sel.GuardRepeat(q, st.Meta.LastAskedQID, answered, st.Conflicts, st.Candidates)

	st.NextQuestion = &q
	st.Meta.LastAskedQID = q.ID
	st.Meta.UpdatedAt = now
	return st, nil
}

// #endregion

// #region reset

// Reset discards all accumulated state. The caller issues Start to get the
// first question of the rebuilt interview.
func (e *Engine) Reset(st State) State {
	fresh := NewState()
	fresh.Meta.UpdatedAt = e.now()
	return fresh
}

// #endregion

// #region helpers

// chooseQuestion walks the adaptive decision tree, falling through to the
// freeform rotation when the active branch is exhausted.
func (e *Engine) chooseQuestion(st State, answered map[string]bool) questionbank.Question {
	if len(st.Conflicts) > 0 && len(st.Candidates) > 0 {
		return e.sel.Clarify(st.Conflicts, st.Candidates)
	}
	id := e.sel.Next(answered, st.Candidates)
	if id != "" {
		if q, ok := e.bank.Get(id); ok {
			return q
		}
	}
	return questionbank.Freeform(st.Meta.LastAskedQID)
}

// questionText resolves the prompt for qid: the pending question first, then
// the bank. An unknown qid keeps an empty prompt; the answer itself is still
// the signal.
func (e *Engine) questionText(st State, qid string) string {
	if st.NextQuestion != nil && st.NextQuestion.ID == qid {
		return st.NextQuestion.Prompt
	}
	if q, ok := e.bank.Get(qid); ok {
		return q.Prompt
	}
	return ""
}

func answeredSet(answers []Answer) map[string]bool {
	set := make(map[string]bool, len(answers))
	for _, a := range answers {
		set[a.QuestionID] = true
	}
	return set
}

func toAnswered(answers []Answer) []scoring.Answered {
	out := make([]scoring.Answered, len(answers))
	for i, a := range answers {
		out[i] = scoring.Answered{QuestionID: a.QuestionID, Text: a.Answer}
	}
	return out
}

func topKey(cands []scoring.Candidate) string {
	if len(cands) == 0 {
		return ""
	}
	return cands[0].Key
}

// #endregion
