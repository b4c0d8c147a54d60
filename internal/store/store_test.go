package store

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetDocMissing(t *testing.T) {
	s := testStore(t)
	doc, err := s.GetDoc("t1")
	if err != nil {
		t.Fatal(err)
	}
	if doc != nil {
		t.Errorf("expected nil for an unknown tenant, got %s", doc)
	}
}

func TestUpdateDocCreatesAndMutates(t *testing.T) {
	s := testStore(t)

	out, err := s.UpdateDoc("t1", func(doc []byte) ([]byte, error) {
		if doc != nil {
			t.Errorf("first update received an existing doc: %s", doc)
		}
		return []byte(`{"v":1}`), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"v":1}` {
		t.Errorf("update returned %s", out)
	}

	_, err = s.UpdateDoc("t1", func(doc []byte) ([]byte, error) {
		if string(doc) != `{"v":1}` {
			t.Errorf("second update received %s", doc)
		}
		return []byte(`{"v":2}`), nil
	})
	if err != nil {
		t.Fatal(err)
	}

	doc, err := s.GetDoc("t1")
	if err != nil {
		t.Fatal(err)
	}
	if string(doc) != `{"v":2}` {
		t.Errorf("persisted doc = %s", doc)
	}
}

func TestUpdateDocAbortsOnError(t *testing.T) {
	s := testStore(t)
	if _, err := s.UpdateDoc("t1", func([]byte) ([]byte, error) {
		return []byte(`{"v":1}`), nil
	}); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	_, err := s.UpdateDoc("t1", func([]byte) ([]byte, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the callback error", err)
	}

	doc, err := s.GetDoc("t1")
	if err != nil {
		t.Fatal(err)
	}
	if string(doc) != `{"v":1}` {
		t.Errorf("failed update changed the doc: %s", doc)
	}
}

func TestUpdateDocTenantsAreIsolated(t *testing.T) {
	s := testStore(t)
	for _, tenant := range []string{"a", "b"} {
		tenant := tenant
		if _, err := s.UpdateDoc(tenant, func([]byte) ([]byte, error) {
			return []byte(`{"tenant":"` + tenant + `"}`), nil
		}); err != nil {
			t.Fatal(err)
		}
	}
	doc, _ := s.GetDoc("a")
	if string(doc) != `{"tenant":"a"}` {
		t.Errorf("tenant a doc = %s", doc)
	}
}

func TestUpdateDocSerializesPerTenant(t *testing.T) {
	s := testStore(t)
	if _, err := s.UpdateDoc("t1", func([]byte) ([]byte, error) {
		return []byte(`{"n":0}`), nil
	}); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.UpdateDoc("t1", func(doc []byte) ([]byte, error) {
				// crude counter: {"n":K} has K at offset 5
				n := int(doc[5] - '0')
				return []byte(`{"n":` + string(rune('0'+n+1)) + `}`), nil
			})
			if err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	doc, err := s.GetDoc("t1")
	if err != nil {
		t.Fatal(err)
	}
	if string(doc) != `{"n":8}` {
		t.Errorf("doc = %s after 8 serialized increments", doc)
	}
}

func TestDecisionLog(t *testing.T) {
	s := testStore(t)

	recs := []DecisionRecord{
		{TenantID: "t1", Round: 1, Action: "start", Decision: "ask", QuestionID: "services"},
		{TenantID: "t1", Round: 2, Action: "answer", Decision: "ask", QuestionID: "top_jobs", Confidence: 0.125},
		{TenantID: "t1", Round: 3, Action: "answer", Decision: "suggest", SuggestedKey: "auto_detailing", Confidence: 0.9},
		{TenantID: "t2", Round: 1, Action: "start", Decision: "ask", QuestionID: "services"},
	}
	for _, rec := range recs {
		if err := s.LogDecision(rec); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.RecentDecisions("t1", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	// newest first
	if got[0].Decision != "suggest" || got[0].SuggestedKey != "auto_detailing" {
		t.Errorf("newest row = %+v", got[0])
	}
	if got[1].QuestionID != "top_jobs" || got[1].Confidence != 0.125 {
		t.Errorf("second row = %+v", got[1])
	}
	for _, rec := range got {
		if rec.TurnID == "" {
			t.Error("turn id was not filled in")
		}
		if rec.CreatedAt.IsZero() {
			t.Error("created_at was not filled in")
		}
		if rec.TenantID != "t1" {
			t.Errorf("cross-tenant row leaked: %+v", rec)
		}
	}
}
