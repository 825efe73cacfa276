package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is the Airtable REST endpoint
const DefaultBaseURL = "https://api.airtable.com/v0"

// Client defines the interface for interacting with Airtable API
type Client interface {
	RecordExists(ctx context.Context, table, hash string) (bool, error)
	CreateRecord(ctx context.Context, table string, fields map[string]interface{}) error
}

type clientImpl struct {
	apiKey  string
	baseID  string
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// Option customizes a client
type Option func(*clientImpl)

// WithBaseURL points the client at another endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *clientImpl) { c.baseURL = baseURL }
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientImpl) { c.http = hc }
}

// NewClient creates a new Airtable client
func NewClient(apiKey, baseID string, logger *zap.Logger, opts ...Option) Client {
	c := &clientImpl{
		apiKey:  apiKey,
		baseID:  baseID,
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *clientImpl) tableURL(table string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.baseID, url.PathEscape(table))
}

func (c *clientImpl) do(req *http.Request) ([]byte, int, error) {
	req.Header.Add("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("error reading response: %w", err)
	}
	return body, resp.StatusCode, nil
}

func (c *clientImpl) RecordExists(ctx context.Context, table, hash string) (bool, error) {
	query := url.Values{}
	query.Set("filterByFormula", fmt.Sprintf(`{hash}="%s"`, hash))
	endpoint := c.tableURL(table) + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("error creating request: %w", err)
	}

	body, status, err := c.do(req)
	if err != nil {
		return false, fmt.Errorf("error checking Airtable: %w", err)
	}
	if status != http.StatusOK {
		return false, fmt.Errorf("error from Airtable API: %s", string(body))
	}

	var response struct {
		Records []struct {
			ID string `json:"id"`
		} `json:"records"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return false, fmt.Errorf("error parsing response: %w", err)
	}

	exists := len(response.Records) > 0
	c.logger.Debug("Airtable record check",
		zap.String("table", table),
		zap.String("hash", hash),
		zap.Bool("exists", exists))
	return exists, nil
}

func (c *clientImpl) CreateRecord(ctx context.Context, table string, fields map[string]interface{}) error {
	payload := map[string]interface{}{
		"records": []map[string]interface{}{
			{"fields": fields},
		},
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tableURL(table), bytes.NewReader(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Content-Type", "application/json")

	body, status, err := c.do(req)
	if err != nil {
		return fmt.Errorf("error creating Airtable record: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("error from Airtable API: %s", string(body))
	}

	c.logger.Info("Created Airtable record", zap.String("table", table))
	return nil
}
