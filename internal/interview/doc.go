package interview

import (
	"encoding/json"
	"fmt"
)

// #region document-key

// DocumentKey is the well-known key the interview state lives under inside a
// tenant's onboarding document. Sibling fields belong to other subsystems and
// round-trip untouched.
const DocumentKey = "industryInterview"

// #endregion

// #region extract

// ExtractState pulls the interview state out of an onboarding document. An
// empty document, or one without the key, yields a fresh state.
func ExtractState(doc []byte) (State, error) {
	if len(doc) == 0 {
		return NewState(), nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(doc, &m); err != nil {
		return State{}, fmt.Errorf("parse onboarding doc: %w", err)
	}
	raw, ok := m[DocumentKey]
	if !ok || string(raw) == "null" {
		return NewState(), nil
	}
	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		return State{}, fmt.Errorf("parse interview state: %w", err)
	}
	return st.normalized(), nil
}

// #endregion

// #region embed

// EmbedState serializes st back under DocumentKey, preserving every sibling
// field of the document byte-for-byte as raw JSON.
func EmbedState(doc []byte, st State) ([]byte, error) {
	m := map[string]json.RawMessage{}
	if len(doc) > 0 {
		if err := json.Unmarshal(doc, &m); err != nil {
			return nil, fmt.Errorf("parse onboarding doc: %w", err)
		}
	}
	raw, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("marshal interview state: %w", err)
	}
	m[DocumentKey] = raw
	out, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal onboarding doc: %w", err)
	}
	return out, nil
}

// #endregion
