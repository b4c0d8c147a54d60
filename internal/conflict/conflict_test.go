package conflict

import (
	"testing"

	"github.com/quotelens/interview-engine/internal/scoring"
)

func kinds(conflicts []Conflict) map[Kind]bool {
	out := make(map[Kind]bool, len(conflicts))
	for _, c := range conflicts {
		out[c.Type] = true
	}
	return out
}

func TestDetect(t *testing.T) {
	cases := []struct {
		name       string
		prev       Previous
		cands      []scoring.Candidate
		confidence float64
		want       []Kind
	}{
		{
			name:  "clear leader no history",
			prev:  Previous{Round: 1},
			cands: []scoring.Candidate{{Key: "auto_detailing", Score: 9}},
			want:  nil,
		},
		{
			name:  "close call",
			prev:  Previous{Round: 1},
			cands: []scoring.Candidate{{Key: "auto_detailing", Score: 5}, {Key: "auto_repair", Score: 4}},
			want:  []Kind{KindCloseCall},
		},
		{
			name:  "zero top score is never close",
			prev:  Previous{Round: 1},
			cands: []scoring.Candidate{{Key: "service", Score: 0}, {Key: "auto_repair", Score: 0}},
			want:  nil,
		},
		{
			name:  "top flipped",
			prev:  Previous{Round: 1, TopKey: "auto_repair"},
			cands: []scoring.Candidate{{Key: "auto_detailing", Score: 5}, {Key: "auto_repair", Score: 2}},
			want:  []Kind{KindTopFlipped},
		},
		{
			name:  "flip needs a previous top",
			prev:  Previous{Round: 1, TopKey: ""},
			cands: []scoring.Candidate{{Key: "auto_detailing", Score: 5}, {Key: "auto_repair", Score: 2}},
			want:  nil,
		},
		{
			name:  "flip compares normalized keys",
			prev:  Previous{Round: 1, TopKey: "Auto Detailing"},
			cands: []scoring.Candidate{{Key: "auto_detailing", Score: 5}, {Key: "auto_repair", Score: 2}},
			want:  nil,
		},
		{
			name:       "plateau from round two",
			prev:       Previous{Round: 2, TopKey: "hvac", Confidence: 0.50},
			cands:      []scoring.Candidate{{Key: "hvac", Score: 5}, {Key: "plumbing", Score: 1}},
			confidence: 0.52,
			want:       []Kind{KindConfidencePlateau},
		},
		{
			name:       "no plateau on the first round",
			prev:       Previous{Round: 1, TopKey: "hvac", Confidence: 0.50},
			cands:      []scoring.Candidate{{Key: "hvac", Score: 5}, {Key: "plumbing", Score: 1}},
			confidence: 0.50,
			want:       nil,
		},
		{
			name:       "confidence moved enough",
			prev:       Previous{Round: 3, TopKey: "hvac", Confidence: 0.50},
			cands:      []scoring.Candidate{{Key: "hvac", Score: 6}, {Key: "plumbing", Score: 1}},
			confidence: 0.60,
			want:       nil,
		},
		{
			name:       "everything at once",
			prev:       Previous{Round: 3, TopKey: "auto_repair", Confidence: 0.50},
			cands:      []scoring.Candidate{{Key: "auto_detailing", Score: 5}, {Key: "auto_repair", Score: 5}},
			confidence: 0.51,
			want:       []Kind{KindTopFlipped, KindCloseCall, KindConfidencePlateau},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Detect(tc.prev, tc.cands, tc.confidence)
			gotKinds := kinds(got)
			if len(got) != len(tc.want) {
				t.Fatalf("Detect returned %d conflicts %v, want kinds %v", len(got), gotKinds, tc.want)
			}
			for _, k := range tc.want {
				if !gotKinds[k] {
					t.Errorf("missing conflict kind %q in %v", k, gotKinds)
				}
			}
			for _, c := range got {
				if c.Reason == "" {
					t.Errorf("conflict %q has no reason", c.Type)
				}
			}
		})
	}
}

func TestDetectCloseCallFields(t *testing.T) {
	got := Detect(Previous{Round: 1}, []scoring.Candidate{
		{Key: "auto_detailing", Score: 4},
		{Key: "auto_repair", Score: 3},
	}, 0.4)
	if len(got) != 1 {
		t.Fatalf("expected one conflict, got %+v", got)
	}
	c := got[0]
	if len(c.Between) != 2 || c.Between[0] != "auto_detailing" || c.Between[1] != "auto_repair" {
		t.Errorf("between = %v", c.Between)
	}
	if len(c.Scores) != 2 || c.Scores[0] != 4 || c.Scores[1] != 3 {
		t.Errorf("scores = %v", c.Scores)
	}
}

func TestBlocking(t *testing.T) {
	if Blocking(nil) {
		t.Error("no conflicts must not block")
	}
	if !Blocking([]Conflict{{Type: KindCloseCall}}) {
		t.Error("a detected conflict must block auto-suggestion")
	}
}
