package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/quotelens/interview-engine/internal/industry"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a scripted interview.
type Fixture struct {
	Description string           `json:"description"`
	Canon       []industry.Entry `json:"canon"`
	Turns       []Turn           `json:"turns"`
	Expected    []Expectation    `json:"expected"`
}

// Turn is one scripted answer. An empty qid means "answer whatever question
// is pending", which keeps fixtures robust against selector reordering.
type Turn struct {
	QID    string `json:"qid,omitempty"`
	Answer string `json:"answer"`
}

// Expectation pins down the state after a given 1-based turn. Zero-valued
// fields are not checked.
type Expectation struct {
	Turn          int      `json:"turn"`
	Status        string   `json:"status,omitempty"`
	Round         int      `json:"round,omitempty"`
	TopKey        string   `json:"top_key,omitempty"`
	NextQID       string   `json:"next_qid,omitempty"`
	SuggestedKey  string   `json:"suggested_key,omitempty"`
	ConflictTypes []string `json:"conflict_types,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// #endregion fixture-loader
