package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// #region record

// DecisionRecord is one row of the interview decision log: what the engine
// decided for one tenant action and why.
type DecisionRecord struct {
	TurnID        string
	TenantID      string
	Round         int
	Action        string // "start" | "answer" | "reset"
	Decision      string // "ask" | "suggest" | "reject" | "no_op"
	QuestionID    string
	SuggestedKey  string
	Confidence    float64
	ConflictsJSON string
	CreatedAt     time.Time
}

// #endregion record

// #region log-decision

// LogDecision appends a decision row. A missing turn id or timestamp is
// filled in here.
func (s *Store) LogDecision(rec DecisionRecord) error {
	if rec.TurnID == "" {
		rec.TurnID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO interview_decisions
		 (turn_id, tenant_id, round, action, decision, question_id, suggested_key, confidence, conflicts_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.TurnID,
		rec.TenantID,
		rec.Round,
		rec.Action,
		rec.Decision,
		nullIfEmpty(rec.QuestionID),
		nullIfEmpty(rec.SuggestedKey),
		rec.Confidence,
		nullIfEmpty(rec.ConflictsJSON),
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// #endregion log-decision

// #region recent-decisions

// RecentDecisions returns the newest decision rows for a tenant.
func (s *Store) RecentDecisions(tenantID string, limit int) ([]DecisionRecord, error) {
	rows, err := s.db.Query(
		`SELECT turn_id, tenant_id, round, action, decision,
		        COALESCE(question_id, ''), COALESCE(suggested_key, ''),
		        confidence, COALESCE(conflicts_json, ''), created_at
		 FROM interview_decisions
		 WHERE tenant_id = ?
		 ORDER BY id DESC LIMIT ?`,
		tenantID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var out []DecisionRecord
	for rows.Next() {
		var rec DecisionRecord
		var createdStr string
		if err := rows.Scan(
			&rec.TurnID, &rec.TenantID, &rec.Round, &rec.Action, &rec.Decision,
			&rec.QuestionID, &rec.SuggestedKey, &rec.Confidence, &rec.ConflictsJSON,
			&createdStr,
		); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// #endregion recent-decisions

// #region helpers

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
