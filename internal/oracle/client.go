package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/alexanderramin/dayweave/internal/app"
	"github.com/alexanderramin/dayweave/internal/domain"
)

// SkeletonRequest describes the day the oracle should draft a plan for.
type SkeletonRequest struct {
	UserID    string
	Date      string // YYYY-MM-DD
	Archetype domain.Archetype
	Mode      domain.Mode
	WakeTime  string // HH:MM, optional
	SleepTime string // HH:MM, optional
}

// PlanOracle proposes skeleton day plans. Skeleton generation is a black
// box to the personalization core; this is its narrow interface.
type PlanOracle interface {
	// ProposeSkeleton asks the oracle for a draft day plan.
	ProposeSkeleton(ctx context.Context, req SkeletonRequest) (*app.Skeleton, error)

	// Available checks whether the oracle endpoint is reachable.
	Available(ctx context.Context) bool
}

// ollamaOracle implements PlanOracle using the Ollama HTTP API.
type ollamaOracle struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewOllamaOracle creates a PlanOracle that talks to an Ollama instance.
func NewOllamaOracle(cfg Config, observer Observer) PlanOracle {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &ollamaOracle{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// ollamaRequest is the JSON body sent to POST /api/generate.
type ollamaRequest struct {
	Model   string        `json:"model"`
	System  string        `json:"system,omitempty"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// ollamaResponse is the JSON body returned by POST /api/generate.
type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

func (c *ollamaOracle) ProposeSkeleton(ctx context.Context, req SkeletonRequest) (*app.Skeleton, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	body := ollamaRequest{
		Model:  c.cfg.Model,
		System: skeletonSystemPrompt,
		Prompt: buildSkeletonPrompt(req),
		Stream: false,
		Options: ollamaOptions{
			Temperature: c.cfg.Temperature,
			NumPredict:  c.cfg.MaxTokens,
		},
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		resp, err := c.doRequest(ctx, body)
		if err == nil {
			skeleton, perr := ExtractJSON[app.Skeleton](resp.Response, validateSkeleton)
			if perr != nil {
				lastErr = perr
				continue
			}
			c.observer.OnCallComplete(CallEvent{
				Model:     c.cfg.Model,
				LatencyMs: time.Since(start).Milliseconds(),
				Success:   true,
			})
			return &skeleton, nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout.
		if ctx.Err() != nil {
			break
		}
	}

	c.observer.OnCallComplete(CallEvent{
		Model:     c.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(lastErr),
	})

	if ctx.Err() != nil {
		return nil, ErrTimeout
	}
	if errors.Is(lastErr, ErrInvalidOutput) {
		return nil, lastErr
	}
	if isConnectionError(lastErr) {
		return nil, ErrUnavailable
	}
	return nil, fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func (c *ollamaOracle) doRequest(ctx context.Context, body ollamaRequest) (*ollamaResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := c.cfg.Endpoint + "/api/generate"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oracle returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp ollamaResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &resp, nil
}

func (c *ollamaOracle) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	url := c.cfg.Endpoint + "/api/tags"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// validateSkeleton rejects skeletons with no usable structure before the
// assembler sees them.
func validateSkeleton(s app.Skeleton) error {
	if len(s.Blocks) == 0 {
		return fmt.Errorf("skeleton has no time blocks")
	}
	for i, b := range s.Blocks {
		if b.StartTime == "" || b.EndTime == "" {
			return fmt.Errorf("block %d missing start or end time", i)
		}
	}
	return nil
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidOutput):
		return "invalid_output"
	case isConnectionError(err):
		return "unavailable"
	default:
		return "request_failed"
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "dial tcp")
}
