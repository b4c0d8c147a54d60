package interview

import (
	"encoding/json"
	"testing"
)

func TestExtractStateFreshCases(t *testing.T) {
	cases := []struct {
		name string
		doc  []byte
	}{
		{"nil document", nil},
		{"empty document", []byte{}},
		{"no interview key", []byte(`{"companyProfile":{"name":"Acme"}}`)},
		{"null interview key", []byte(`{"industryInterview":null}`)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, err := ExtractState(tc.doc)
			if err != nil {
				t.Fatal(err)
			}
			if st.Status != StatusCollecting || st.Round != 1 || len(st.Answers) != 0 {
				t.Errorf("expected a fresh state, got %+v", st)
			}
		})
	}
}

func TestExtractStateInvalid(t *testing.T) {
	if _, err := ExtractState([]byte(`{not json`)); err == nil {
		t.Error("expected an error for a malformed document")
	}
	if _, err := ExtractState([]byte(`{"industryInterview":"oops"}`)); err == nil {
		t.Error("expected an error for a malformed interview state")
	}
}

func TestExtractStateRepairs(t *testing.T) {
	doc := []byte(`{"industryInterview":{"status":"weird","round":0,"confidenceScore":42}}`)
	st, err := ExtractState(doc)
	if err != nil {
		t.Fatal(err)
	}
	if st.Status != StatusCollecting {
		t.Errorf("status = %s", st.Status)
	}
	if st.Round != 1 {
		t.Errorf("round = %d", st.Round)
	}
	if st.ConfidenceScore != 1 {
		t.Errorf("confidence = %f, want clamped to 1", st.ConfidenceScore)
	}

	doc = []byte(`{"industryInterview":{"status":"suggested","round":3,"confidenceScore":0.9,"nextQuestion":{"id":"services","prompt":"x"}}}`)
	st, err = ExtractState(doc)
	if err != nil {
		t.Fatal(err)
	}
	if st.NextQuestion != nil {
		t.Errorf("suggested state kept a pending question: %+v", st.NextQuestion)
	}
}

func TestEmbedStatePreservesSiblings(t *testing.T) {
	doc := []byte(`{"companyProfile":{"name":"Acme Detailing"},"billing":{"plan":"pro"},"industryInterview":null}`)

	st, err := ExtractState(doc)
	if err != nil {
		t.Fatal(err)
	}
	st.Round = 3

	out, err := EmbedState(doc, st)
	if err != nil {
		t.Fatal(err)
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatal(err)
	}
	if string(m["companyProfile"]) != `{"name":"Acme Detailing"}` {
		t.Errorf("companyProfile changed: %s", m["companyProfile"])
	}
	if string(m["billing"]) != `{"plan":"pro"}` {
		t.Errorf("billing changed: %s", m["billing"])
	}

	roundTrip, err := ExtractState(out)
	if err != nil {
		t.Fatal(err)
	}
	if roundTrip.Round != 3 {
		t.Errorf("round = %d after round trip, want 3", roundTrip.Round)
	}
}

func TestEmbedStateIntoEmptyDoc(t *testing.T) {
	st := NewState()
	out, err := EmbedState(nil, st)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ExtractState(out)
	if err != nil {
		t.Fatal(err)
	}
	if back.Status != StatusCollecting || back.Round != 1 {
		t.Errorf("round trip produced %+v", back)
	}
}
