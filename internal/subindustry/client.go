package subindustry

// #region imports
import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/quotelens/interview-engine/internal/industry"
	"github.com/quotelens/interview-engine/internal/interview"
)

// #endregion

// #region client

// Client calls the generative model used by the sub-industry pass. The
// adaptive loop itself reuses the interview engine unchanged; only this one
// network call is model-backed, so the client stays a thin boundary.
type Client struct {
	httpClient *http.Client
	url        string
	apiKey     string
}

// NewClient creates a client for the model endpoint. httpClient may be nil.
func NewClient(url, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{httpClient: httpClient, url: url, apiKey: apiKey}
}

// #endregion

// #region wire-types

type completionRequest struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

type completionResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// #endregion

// #region suggest

// Suggest asks the model which sub-industry of parentKey best fits the
// interview's answer history. The reply must resolve, after normalization, to
// one of the supplied sub-industry keys; anything else is an error so a
// hallucinated key never reaches the onboarding document.
func (c *Client) Suggest(ctx context.Context, parentKey string, answers []interview.Answer, subs []industry.Entry) (string, error) {
	if len(subs) == 0 {
		return "", fmt.Errorf("subindustry: no sub-industries registered for %s", parentKey)
	}

	body, err := json.Marshal(completionRequest{
		Prompt:    buildPrompt(parentKey, answers, subs),
		MaxTokens: 64,
	})
	if err != nil {
		return "", fmt.Errorf("subindustry: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("subindustry: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("subindustry: call model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("subindustry: model returned %d", resp.StatusCode)
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("subindustry: decode response: %w", err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("subindustry: model error: %s", out.Error)
	}

	key, ok := matchKey(out.Text, subs)
	if !ok {
		return "", fmt.Errorf("subindustry: model reply %q matches no registered key", strings.TrimSpace(out.Text))
	}
	return key, nil
}

// #endregion

// #region prompt

func buildPrompt(parentKey string, answers []interview.Answer, subs []industry.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A business was classified as %q. Pick the single best sub-industry key from this list:\n", parentKey)
	for _, s := range subs {
		fmt.Fprintf(&b, "- %s (%s)\n", industry.NormalizeKey(s.Key), s.Label)
	}
	b.WriteString("\nInterview answers:\n")
	for _, a := range answers {
		fmt.Fprintf(&b, "Q: %s\nA: %s\n", a.Question, a.Answer)
	}
	b.WriteString("\nReply with exactly one key from the list and nothing else.")
	return b.String()
}

// matchKey resolves the model's reply to a registered key, tolerating extra
// prose around the key itself.
func matchKey(reply string, subs []industry.Entry) (string, bool) {
	norm := industry.NormalizeKey(reply)
	for _, s := range subs {
		key := industry.NormalizeKey(s.Key)
		if norm == key || strings.Contains(norm, key) {
			return key, true
		}
	}
	return "", false
}

// #endregion
