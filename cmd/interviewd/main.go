package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/quotelens/interview-engine/internal/industry"
	"github.com/quotelens/interview-engine/internal/interview"
	"github.com/quotelens/interview-engine/internal/questionbank"
	"github.com/quotelens/interview-engine/internal/scoring"
	"github.com/quotelens/interview-engine/internal/server"
	"github.com/quotelens/interview-engine/internal/store"
	"github.com/quotelens/interview-engine/internal/subindustry"
)

// #region main

func main() {
	dbPath := envOr("INTERVIEW_DB", "interview.db")
	addr := envOr("INTERVIEW_ADDR", ":8084")
	canonPath := os.Getenv("INTERVIEW_CANON")

	st, err := store.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	canon, err := loadCanon(canonPath)
	if err != nil {
		log.Fatalf("failed to load canonical industry list: %v", err)
	}

	var model *subindustry.Client
	if url := os.Getenv("SUBINDUSTRY_MODEL_URL"); url != "" {
		model = subindustry.NewClient(url, os.Getenv("SUBINDUSTRY_MODEL_KEY"), nil)
	}

	engine := interview.NewEngine(questionbank.Default(), scoring.DefaultRules())
	srv := server.New(st, engine, canon, model, subindustry.DefaultRegistry())

	log.Printf("[MAIN] interview engine ready. db=%s addr=%s canon=%d entries model=%v",
		dbPath, addr, len(canon), model != nil)
	if err := http.ListenAndServe(addr, srv.Routes()); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

// #endregion main

// #region helpers

// loadCanon reads the canonical industry list from a JSON file of
// [{"key": ..., "label": ...}]. An empty path means no filter.
func loadCanon(path string) ([]industry.Entry, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var canon []industry.Entry
	if err := json.Unmarshal(data, &canon); err != nil {
		return nil, err
	}
	return canon, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
