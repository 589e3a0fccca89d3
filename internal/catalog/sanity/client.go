package sanity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNoWriteToken is returned when a mutation is attempted with a read-only client.
var ErrNoWriteToken = errors.New("sanity: write token is required for mutations")

// Client talks to the Sanity HTTP API: the query endpoint for GROQ reads and the
// mutate endpoint for seed writes. There is no official Go SDK, so this is the
// same kind of hand-built JSON API client we keep for other hosted services.
type Client struct {
	projectID  string
	dataset    string
	apiVersion string
	token      string // write-scoped; empty for the read-only storefront client
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for one project/dataset pair. Pass an empty token
// for read-only use; queries against a public dataset need no credential.
func NewClient(projectID, dataset, apiVersion, token string) *Client {
	return &Client{
		projectID:  projectID,
		dataset:    dataset,
		apiVersion: apiVersion,
		token:      token,
		baseURL:    fmt.Sprintf("https://%s.api.sanity.io", projectID),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL is the test seam: it points the client at a stub server
// instead of the hosted API.
func NewClientWithBaseURL(baseURL, dataset, apiVersion, token string) *Client {
	c := NewClient("test", dataset, apiVersion, token)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// Query runs a GROQ query and decodes the result envelope into out.
// params are exposed to the query as $name values, JSON-encoded per the API
// contract. A null result (absent document) leaves out untouched.
func (c *Client) Query(ctx context.Context, groq string, params map[string]string, out any) error {
	values := url.Values{}
	values.Set("query", groq)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("sanity: encode query param %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}

	endpoint := fmt.Sprintf("%s/v%s/data/query/%s?%s", c.baseURL, c.apiVersion, c.dataset, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("sanity: build query request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sanity: query request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sanity: query status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("sanity: decode query response: %w", err)
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("sanity: decode query result: %w", err)
	}
	return nil
}

// Mutation is one entry of a mutate call. The seeder only ever upserts, so
// createOrReplace is the only shape carried here.
type Mutation struct {
	CreateOrReplace map[string]any `json:"createOrReplace,omitempty"`
}

// MutateResult reports what the store did with each mutation.
type MutateResult struct {
	TransactionID string           `json:"transactionId"`
	Results       []MutationResult `json:"results"`
}

type MutationResult struct {
	ID        string `json:"id"`
	Operation string `json:"operation"`
}

// Mutate applies mutations in one transaction. Requires a write-scoped token.
func (c *Client) Mutate(ctx context.Context, mutations []Mutation) (*MutateResult, error) {
	if c.token == "" {
		return nil, ErrNoWriteToken
	}

	payload, err := json.Marshal(map[string]any{"mutations": mutations})
	if err != nil {
		return nil, fmt.Errorf("sanity: encode mutations: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v%s/data/mutate/%s", c.baseURL, c.apiVersion, c.dataset)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("sanity: build mutate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sanity: mutate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("sanity: mutate status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result MutateResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("sanity: decode mutate response: %w", err)
	}
	return &result, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
