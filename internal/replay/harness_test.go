package replay

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quotelens/interview-engine/internal/interview"
	"github.com/quotelens/interview-engine/internal/questionbank"
	"github.com/quotelens/interview-engine/internal/scoring"
)

func testEngine() *interview.Engine {
	return interview.NewEngine(questionbank.Default(), scoring.DefaultRules()).
		WithClock(func() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) })
}

func TestReplayFastPath(t *testing.T) {
	f := &Fixture{
		Description: "ceramic coating shop resolves in one answer",
		Turns: []Turn{
			{Answer: "We do ceramic coating and detailing"},
		},
		Expected: []Expectation{
			{Turn: 1, Status: "suggested", Round: 2, TopKey: "auto_detailing", SuggestedKey: "auto_detailing"},
		},
	}

	results, summary := Replay(testEngine(), f)
	if len(results) != 1 {
		t.Fatalf("got %d results", len(results))
	}
	// an empty scripted qid answers the pending opener
	if results[0].QID != questionbank.QServices {
		t.Errorf("turn 1 qid = %q, want %q", results[0].QID, questionbank.QServices)
	}
	if summary.Checked != 1 {
		t.Errorf("checked = %d, want 1", summary.Checked)
	}
	if len(summary.Mismatches) != 0 {
		t.Errorf("mismatches: %+v", summary.Mismatches)
	}
	if summary.Final.Status != interview.StatusSuggested {
		t.Errorf("final status = %s", summary.Final.Status)
	}
}

func TestReplayCloseCallScript(t *testing.T) {
	f := &Fixture{
		Description: "ambiguous shop needs a clarifier before suggesting",
		Turns: []Turn{
			{QID: "top_jobs", Answer: "detailing and oil changes"},
			{QID: "clarify_detail_vs_repair", Answer: "Cleaning, polishing, or protecting vehicles"},
		},
		Expected: []Expectation{
			{Turn: 1, Status: "collecting", NextQID: "clarify_detail_vs_repair", ConflictTypes: []string{"close_call"}},
			{Turn: 2, Status: "suggested", Round: 3, SuggestedKey: "auto_detailing"},
		},
	}

	_, summary := Replay(testEngine(), f)
	if summary.Checked != 2 {
		t.Errorf("checked = %d, want 2", summary.Checked)
	}
	if len(summary.Mismatches) != 0 {
		t.Errorf("mismatches: %+v", summary.Mismatches)
	}
}

func TestReplayReportsMismatches(t *testing.T) {
	f := &Fixture{
		Turns: []Turn{
			{Answer: "We do ceramic coating and detailing"},
		},
		Expected: []Expectation{
			{Turn: 1, Status: "collecting"},
			{Turn: 9, Status: "suggested"},
		},
	}

	_, summary := Replay(testEngine(), f)
	if len(summary.Mismatches) != 2 {
		t.Fatalf("mismatches = %+v, want a status diff and an out-of-range turn", summary.Mismatches)
	}
}

func TestReplayKeepsStateOnRejectedTurn(t *testing.T) {
	f := &Fixture{
		Turns: []Turn{
			{QID: "services", Answer: "   "},
			{QID: "services", Answer: "We do ceramic coating and detailing"},
		},
		Expected: []Expectation{
			{Turn: 2, Status: "suggested", SuggestedKey: "auto_detailing"},
		},
	}

	results, summary := Replay(testEngine(), f)
	if results[0].Err == nil {
		t.Error("blank answer should be rejected")
	}
	if len(summary.Mismatches) != 0 {
		t.Errorf("mismatches: %+v", summary.Mismatches)
	}
}

func TestLoadFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.json")
	body := `{
		"description": "smoke",
		"turns": [{"qid": "services", "answer": "ceramic coating"}],
		"expected": [{"turn": 1, "top_key": "auto_detailing"}]
	}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := LoadFixture(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Description != "smoke" || len(f.Turns) != 1 || len(f.Expected) != 1 {
		t.Errorf("fixture = %+v", f)
	}

	if _, err := LoadFixture(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
