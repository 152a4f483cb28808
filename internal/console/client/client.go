package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/xavierca1/leadtrack/internal/entity"
	"github.com/xavierca1/leadtrack/internal/usecase"
)

// Client talks to the lead store API over its JSON contract.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError carries the server-provided message of a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed (status %d)", e.StatusCode)
}

func (c *Client) ListLeads(ctx context.Context) ([]entity.Lead, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/leads", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch leads: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.asAPIError(resp)
	}

	var leads []entity.Lead
	if err := json.NewDecoder(resp.Body).Decode(&leads); err != nil {
		return nil, fmt.Errorf("decode leads: %w", err)
	}

	return leads, nil
}

func (c *Client) CreateLead(ctx context.Context, input usecase.CreateLeadInput) (*entity.Lead, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/leads", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, c.asAPIError(resp)
	}

	var lead entity.Lead
	if err := json.NewDecoder(resp.Body).Decode(&lead); err != nil {
		return nil, fmt.Errorf("decode lead: %w", err)
	}

	return &lead, nil
}

func (c *Client) asAPIError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	// A body without a message still yields a usable error.
	json.NewDecoder(resp.Body).Decode(&payload)

	return &APIError{StatusCode: resp.StatusCode, Message: payload.Message}
}
