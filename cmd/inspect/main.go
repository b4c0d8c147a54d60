package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/quotelens/interview-engine/internal/interview"
	"github.com/quotelens/interview-engine/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "interview.db", "path to interview.db")
	tenant := flag.String("tenant", "", "tenant id to inspect")
	last := flag.Int("last", 20, "show N most recent decisions")
	jsonOut := flag.Bool("json", false, "output state as JSON")
	flag.Parse()

	if *tenant == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db interview.db --tenant ID [--last N] [--json]")
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := run(st, *tenant, *last, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region run

func run(st *store.Store, tenant string, last int, jsonOut bool) error {
	doc, err := st.GetDoc(tenant)
	if err != nil {
		return err
	}
	ivst, err := interview.ExtractState(doc)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ivst)
	}

	fmt.Printf("tenant %s: status=%s round=%d confidence=%.2f\n",
		tenant, ivst.Status, ivst.Round, ivst.ConfidenceScore)
	if ivst.SuggestedIndustryKey != "" {
		fmt.Printf("  suggested: %s (needs confirmation: %v)\n",
			ivst.SuggestedIndustryKey, ivst.NeedsConfirmation)
	}
	if ivst.NextQuestion != nil {
		fmt.Printf("  pending question: %s (%s)\n", ivst.NextQuestion.ID, ivst.NextQuestion.Prompt)
	}
	for i, c := range ivst.Candidates {
		fmt.Printf("  #%d %-24s %3d  %s\n", i+1, c.Key, c.Score, c.Label)
	}
	for _, c := range ivst.Conflicts {
		fmt.Printf("  conflict %s: %s\n", c.Type, c.Reason)
	}

	decisions, err := st.RecentDecisions(tenant, last)
	if err != nil {
		return err
	}
	if len(decisions) > 0 {
		fmt.Println("\nrecent decisions:")
		for _, d := range decisions {
			fmt.Printf("  %s  r%-2d %-7s %-8s q=%-28s key=%s conf=%.2f\n",
				d.CreatedAt.Format("2006-01-02 15:04:05"),
				d.Round, d.Action, d.Decision, d.QuestionID, d.SuggestedKey, d.Confidence)
		}
	}
	return nil
}

// #endregion run
