package server

// #region imports
import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/quotelens/interview-engine/internal/industry"
	"github.com/quotelens/interview-engine/internal/interview"
	"github.com/quotelens/interview-engine/internal/store"
	"github.com/quotelens/interview-engine/internal/subindustry"
)

// #endregion

// #region server-struct

// Server exposes the three engine operations over HTTP, tenant-scoped. It is
// the "caller" from the engine's point of view: it owns the read-modify-write
// cycle against the document store and supplies the canonical industry list.
type Server struct {
	store  *store.Store
	engine *interview.Engine
	canon  []industry.Entry
	model  *subindustry.Client
	subs   subindustry.Registry
}

// New creates a server. model may be nil when no sub-industry endpoint is
// configured; the route then answers 503.
func New(st *store.Store, engine *interview.Engine, canon []industry.Entry, model *subindustry.Client, subs subindustry.Registry) *Server {
	return &Server{store: st, engine: engine, canon: canon, model: model, subs: subs}
}

// Routes builds the HTTP router.
func (s *Server) Routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/v1/tenants/{tenant}/interview", s.handleGet).Methods(http.MethodGet)
	r.HandleFunc("/v1/tenants/{tenant}/interview/start", s.handleStart).Methods(http.MethodPost)
	r.HandleFunc("/v1/tenants/{tenant}/interview/answer", s.handleAnswer).Methods(http.MethodPost)
	r.HandleFunc("/v1/tenants/{tenant}/interview/reset", s.handleReset).Methods(http.MethodPost)
	r.HandleFunc("/v1/tenants/{tenant}/interview/subindustry", s.handleSubindustry).Methods(http.MethodPost)
	return r
}

// #endregion

// #region get

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	tenant := mux.Vars(r)["tenant"]
	doc, err := s.store.GetDoc(tenant)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	st, err := interview.ExtractState(doc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// #endregion

// #region start

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	tenant := mux.Vars(r)["tenant"]

	var next interview.State
	_, err := s.store.UpdateDoc(tenant, func(doc []byte) ([]byte, error) {
		st, err := interview.ExtractState(doc)
		if err != nil {
			return nil, err
		}
		next = s.engine.Start(st, s.canon)
		return interview.EmbedState(doc, next)
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.logDecision(tenant, "start", next)
	writeJSON(w, http.StatusOK, next)
}

// #endregion

// #region answer

type answerRequest struct {
	QID    string `json:"qid"`
	Answer string `json:"answer"`
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	tenant := mux.Vars(r)["tenant"]

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var next interview.State
	_, err := s.store.UpdateDoc(tenant, func(doc []byte) ([]byte, error) {
		st, err := interview.ExtractState(doc)
		if err != nil {
			return nil, err
		}
		next, err = s.engine.Answer(st, req.QID, req.Answer, s.canon)
		if err != nil {
			return nil, err
		}
		return interview.EmbedState(doc, next)
	})
	if errors.Is(err, interview.ErrEmptyQuestionID) || errors.Is(err, interview.ErrEmptyAnswer) {
		s.logReject(tenant, req.QID, err)
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.logDecision(tenant, "answer", next)
	writeJSON(w, http.StatusOK, next)
}

// #endregion

// #region reset

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	tenant := mux.Vars(r)["tenant"]

	var next interview.State
	_, err := s.store.UpdateDoc(tenant, func(doc []byte) ([]byte, error) {
		st, err := interview.ExtractState(doc)
		if err != nil {
			return nil, err
		}
		next = s.engine.Reset(st)
		return interview.EmbedState(doc, next)
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.logDecision(tenant, "reset", next)
	writeJSON(w, http.StatusOK, next)
}

// #endregion

// #region subindustry

type subindustryResponse struct {
	ParentKey      string `json:"parentKey"`
	SubIndustryKey string `json:"subIndustryKey"`
}

// handleSubindustry runs the second classification pass: once the first
// interview has a suggested industry, ask the model which registered
// sub-industry fits the answer history.
func (s *Server) handleSubindustry(w http.ResponseWriter, r *http.Request) {
	tenant := mux.Vars(r)["tenant"]

	if s.model == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("sub-industry model not configured"))
		return
	}

	doc, err := s.store.GetDoc(tenant)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	st, err := interview.ExtractState(doc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if st.Status != interview.StatusSuggested || st.SuggestedIndustryKey == "" {
		writeError(w, http.StatusConflict, errors.New("interview has no suggested industry yet"))
		return
	}

	subs := s.subs.For(st.SuggestedIndustryKey)
	if len(subs) == 0 {
		writeError(w, http.StatusNotFound, errors.New("no sub-industries registered for "+st.SuggestedIndustryKey))
		return
	}

	key, err := s.model.Suggest(r.Context(), st.SuggestedIndustryKey, st.Answers, subs)
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}

	s.logDecision(tenant, "subindustry", st)
	writeJSON(w, http.StatusOK, subindustryResponse{
		ParentKey:      st.SuggestedIndustryKey,
		SubIndustryKey: key,
	})
}

// #endregion

// #region decision-log

func (s *Server) logDecision(tenant, action string, st interview.State) {
	decision := "ask"
	questionID := ""
	switch {
	case st.Status == interview.StatusSuggested:
		decision = "suggest"
	case st.NextQuestion != nil:
		questionID = st.NextQuestion.ID
	default:
		decision = "no_op"
	}

	conflictsJSON := ""
	if len(st.Conflicts) > 0 {
		if b, err := json.Marshal(st.Conflicts); err == nil {
			conflictsJSON = string(b)
		}
	}

	rec := store.DecisionRecord{
		TenantID:      tenant,
		Round:         st.Round,
		Action:        action,
		Decision:      decision,
		QuestionID:    questionID,
		SuggestedKey:  st.SuggestedIndustryKey,
		Confidence:    st.ConfidenceScore,
		ConflictsJSON: conflictsJSON,
	}
	if err := s.store.LogDecision(rec); err != nil {
		log.Printf("[HTTP] decision log failed for %s: %v", tenant, err)
	}
}

func (s *Server) logReject(tenant, qid string, cause error) {
	rec := store.DecisionRecord{
		TenantID:   tenant,
		Action:     "answer",
		Decision:   "reject",
		QuestionID: qid,
	}
	if err := s.store.LogDecision(rec); err != nil {
		log.Printf("[HTTP] decision log failed for %s: %v", tenant, err)
	}
	log.Printf("[HTTP] rejected answer for %s: %v", tenant, cause)
}

// #endregion

// #region responses

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[HTTP] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// #endregion
