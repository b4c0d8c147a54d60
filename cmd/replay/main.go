package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/quotelens/interview-engine/internal/interview"
	"github.com/quotelens/interview-engine/internal/questionbank"
	"github.com/quotelens/interview-engine/internal/replay"
	"github.com/quotelens/interview-engine/internal/scoring"
)

// #region main

func main() {
	verbose := flag.Bool("v", false, "print state after every turn")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: replay [-v] fixture.json [fixture.json ...]")
		os.Exit(2)
	}

	engine := interview.NewEngine(questionbank.Default(), scoring.DefaultRules())

	exitCode := 0
	for _, path := range flag.Args() {
		if !runFixture(engine, path, *verbose) {
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

// #endregion main

// #region run-fixture

func runFixture(engine *interview.Engine, path string, verbose bool) bool {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return false
	}

	results, summary := replay.Replay(engine, f)

	if verbose {
		for _, r := range results {
			if r.Err != nil {
				fmt.Printf("  turn %d (%s): rejected: %v\n", r.Turn, r.QID, r.Err)
				continue
			}
			next := "-"
			if r.State.NextQuestion != nil {
				next = r.State.NextQuestion.ID
			}
			top := "-"
			if len(r.State.Candidates) > 0 {
				top = fmt.Sprintf("%s(%d)", r.State.Candidates[0].Key, r.State.Candidates[0].Score)
			}
			fmt.Printf("  turn %d (%s): round=%d status=%s top=%s conf=%.2f next=%s\n",
				r.Turn, r.QID, r.State.Round, r.State.Status, top, r.State.ConfidenceScore, next)
		}
	}

	if len(summary.Mismatches) == 0 {
		fmt.Printf("PASS %s — %d turns, %d expectations\n", path, summary.Turns, summary.Checked)
		return true
	}

	fmt.Printf("FAIL %s — %s\n", path, f.Description)
	for _, m := range summary.Mismatches {
		fmt.Printf("  turn %d %s: want %q, got %q\n", m.Turn, m.Field, m.Want, m.Got)
	}
	return false
}

// #endregion run-fixture
