package feedback

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

	"github.com/tidwall/gjson"
)

// Client scores sentences.
type Client interface {
	Score(ctx context.Context, req Request) (*Response, error)

	// Available checks whether the feedback service answers at all.
	Available(ctx context.Context) bool
}

type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewHTTPClient creates a Client that posts requests to cfg.Endpoint.
func NewHTTPClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
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

// statusError is a non-2xx reply. Message comes from the body's "error"
// field when present.
type statusError struct {
	code    int
	message string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("feedback service returned status %d: %s", e.code, e.message)
}

func (c *httpClient) Score(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	var lastErr error
	attempts := 0
	for attempts < 1+c.cfg.MaxRetries {
		attempts++
		resp, err := c.doRequest(ctx, data)
		if err == nil {
			c.observe(req, start, attempts, nil)
			resp.Source = SourceRemote
			return resp, nil
		}
		lastErr = err

		// Only non-2xx replies and transport errors are retried.
		if ctx.Err() != nil || errors.Is(err, ErrBadResponse) {
			break
		}
	}

	var final error
	switch {
	case ctx.Err() != nil:
		final = ErrTimeout
	case isConnectionError(lastErr):
		final = ErrUnavailable
	case errors.Is(lastErr, ErrBadResponse):
		final = lastErr
	default:
		final = fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
	}
	c.observe(req, start, attempts, final)
	return nil, final
}

func (c *httpClient) observe(req Request, start time.Time, attempts int, err error) {
	c.observer.OnCallComplete(CallEvent{
		Mode:             req.FeedbackMode,
		LanguageFunction: req.LanguageFunction,
		LatencyMs:        time.Since(start).Milliseconds(),
		Attempts:         attempts,
		Success:          err == nil,
		ErrorCode:        errorCode(err),
	})
}

func (c *httpClient) doRequest(ctx context.Context, body []byte) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
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

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		msg := gjson.GetBytes(respBody, "error").String()
		if msg == "" {
			msg = strings.TrimSpace(string(respBody))
		}
		return nil, &statusError{code: httpResp.StatusCode, message: msg}
	}

	parsed := gjson.ParseBytes(respBody)
	if !gjson.ValidBytes(respBody) || !parsed.IsObject() || !parsed.Get("summary").Exists() {
		return nil, fmt.Errorf("%w: missing summary", ErrBadResponse)
	}
	var resp Response
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	resp.Score = clampScore(resp.Score)
	return &resp, nil
}

func (c *httpClient) Available(ctx context.Context) bool {
	if !c.cfg.Enabled || c.cfg.Endpoint == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodOptions, c.cfg.Endpoint, nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode < http.StatusInternalServerError
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrBadResponse):
		return "BAD_RESPONSE"
	case errors.Is(err, ErrRetryExhausted):
		return "RETRY_EXHAUSTED"
	default:
		return "UNKNOWN"
	}
}

func clampScore(n int) int {
	switch {
	case n < 0:
		return 0
	case n > 100:
		return 100
	default:
		return n
	}
}
