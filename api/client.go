package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/schedsim/sim"
)

// Client calls a remote simulation service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a Client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: time.Minute},
	}
}

// Simulate posts req to /simulate. A 400 response is reported as sim.ErrInvalidInput,
// any other non-200 status as a plain error carrying the server message.
func (c *Client) Simulate(ctx context.Context, req *SimulateRequest) (*SimulateResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding simulate request: %w", err)
	}
	var out SimulateResponse
	if err := c.do(ctx, http.MethodPost, "/simulate", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Policies lists the policy names the service accepts.
func (c *Client) Policies(ctx context.Context) ([]string, error) {
	var out PoliciesResponse
	if err := c.do(ctx, http.MethodGet, "/policies", nil, &out); err != nil {
		return nil, err
	}
	return out.Policies, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logrus.Debugf("%s %s", method, httpReq.URL)
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := string(data)
		var errResp ErrorResponse
		if json.Unmarshal(data, &errResp) == nil && errResp.Error != "" {
			msg = errResp.Error
		}
		if resp.StatusCode == http.StatusBadRequest {
			return fmt.Errorf("%w: server rejected request: %s", sim.ErrInvalidInput, msg)
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, msg)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
