package conflict

import (
	"fmt"

	"github.com/quotelens/interview-engine/internal/industry"
	"github.com/quotelens/interview-engine/internal/scoring"
)

// #region types

// Kind tags a conflict record.
type Kind string

const (
	KindCloseCall         Kind = "close_call"
	KindTopFlipped        Kind = "top_flipped"
	KindConfidencePlateau Kind = "confidence_plateau"
)

// Conflict is a tagged record produced by one evaluation round. Only the
// fields for its kind are populated.
type Conflict struct {
	Type    Kind     `json:"type"`
	Between []string `json:"between,omitempty"`
	Scores  []int    `json:"scores,omitempty"`
	From    string   `json:"from,omitempty"`
	To      string   `json:"to,omitempty"`
	Prev    float64  `json:"prev,omitempty"`
	Next    float64  `json:"next,omitempty"`
	Reason  string   `json:"reason"`
}

// #endregion

// #region constants

// CloseCallMaxGap is the largest top-two score gap still considered too close
// to call.
const CloseCallMaxGap = 1

// ConfidencePlateauDelta is the round-over-round confidence change below
// which the interview is considered stalled.
const ConfidencePlateauDelta = 0.05

// #endregion

// #region previous

// Previous is the slice of the pre-answer state the detector compares against.
type Previous struct {
	Round      int
	TopKey     string
	Confidence float64
}

// #endregion

// #region detect

// Detect compares the fresh evaluation against the pre-answer state. All
// applicable conflicts are reported together; they are not mutually exclusive.
func Detect(prev Previous, cands []scoring.Candidate, confidence float64) []Conflict {
	var out []Conflict

	newTop := ""
	if len(cands) > 0 {
		newTop = industry.NormalizeKey(cands[0].Key)
	}
	prevTop := industry.NormalizeKey(prev.TopKey)

	if prevTop != "" && newTop != "" && prevTop != newTop {
		out = append(out, Conflict{
			Type:   KindTopFlipped,
			From:   prevTop,
			To:     newTop,
			Reason: fmt.Sprintf("top candidate changed from %s to %s", prevTop, newTop),
		})
	}

	if len(cands) >= 2 && cands[0].Score > 0 {
		gap := cands[0].Score - cands[1].Score
		if gap < 0 {
			gap = -gap
		}
		if gap <= CloseCallMaxGap {
			out = append(out, Conflict{
				Type:    KindCloseCall,
				Between: []string{industry.NormalizeKey(cands[0].Key), industry.NormalizeKey(cands[1].Key)},
				Scores:  []int{cands[0].Score, cands[1].Score},
				Reason:  fmt.Sprintf("top two scores within %d point(s): %d vs %d", CloseCallMaxGap, cands[0].Score, cands[1].Score),
			})
		}
	}

	if prev.Round >= 2 {
		delta := confidence - prev.Confidence
		if delta < 0 {
			delta = -delta
		}
		if delta < ConfidencePlateauDelta {
			out = append(out, Conflict{
				Type:   KindConfidencePlateau,
				Prev:   prev.Confidence,
				Next:   confidence,
				Reason: fmt.Sprintf("confidence moved %.3f, under plateau threshold %.2f", delta, ConfidencePlateauDelta),
			})
		}
	}

	return out
}

// Blocking reports whether any detected conflict prevents auto-suggestion.
// Every conflict kind this detector emits blocks.
func Blocking(conflicts []Conflict) bool {
	return len(conflicts) > 0
}

// #endregion
