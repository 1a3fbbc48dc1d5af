// Package store implements the REST client for the remote resume store.
// Every payload travels inside a {"data": ...} envelope; errors come back
// as {"error": {"message": ...}}.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"resume-builder/internal/model"
)

// ErrMissingDocumentID reports a create response that lacked the
// store-assigned identifier. The call is treated as failed even when the
// HTTP status said otherwise.
var ErrMissingDocumentID = errors.New("store response missing documentId")

// APIError is a remote failure with the server-provided message, surfaced
// verbatim in user notifications.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("store returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("store returned %d", e.StatusCode)
}

// Record is a persisted resume as the store returns it. DocumentID is the
// store-assigned identifier; the correlation id only matters during create.
type Record struct {
	DocumentID    string    `json:"documentId"`
	CorrelationID string    `json:"resumeId,omitempty"`
	UserEmail     string    `json:"userEmail"`
	UserName      string    `json:"userName,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty"`
	model.Resume
}

type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewClient() *Client {
	base := os.Getenv("RESUME_STORE_URL")
	if base == "" {
		base = "http://localhost:3000"
	}
	return &Client{
		BaseURL: base,
		APIKey:  os.Getenv("RESUME_STORE_API_KEY"),
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// doWithRetry performs one HTTP exchange with retry/backoff on transport
// errors. Non-2xx responses are returned to the caller, not retried.
func (c *Client) doWithRetry(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	attempts := 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		var rd io.Reader
		if body != nil {
			rd = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.APIKey)
		}

		resp, err := c.HTTP.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

func remoteError(status int, body []byte) error {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	_ = json.Unmarshal(body, &envelope)
	return &APIError{StatusCode: status, Message: envelope.Error.Message}
}

func decodeRecord(body []byte) (*Record, error) {
	var envelope struct {
		Data Record `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decoding store response: %w", err)
	}
	envelope.Data.EnsureDefaults()
	return &envelope.Data, nil
}

// Create persists a new resume record. correlationID is a client-generated
// id used only to track the creation request; the record is addressed by
// the returned DocumentID from then on.
func (c *Client) Create(ctx context.Context, ownerEmail, userName, title, correlationID string) (*Record, error) {
	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"title":     title,
			"resumeId":  correlationID,
			"userEmail": ownerEmail,
			"userName":  userName,
		},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.doWithRetry(ctx, http.MethodPost, "/api/user-resumes", b)
	if err != nil {
		return nil, fmt.Errorf("creating resume: %w", err)
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, remoteError(resp.StatusCode, rb)
	}

	rec, err := decodeRecord(rb)
	if err != nil {
		return nil, err
	}
	if rec.DocumentID == "" {
		return nil, ErrMissingDocumentID
	}
	return rec, nil
}

// ListByOwner fetches all records whose owner equals ownerEmail. Ordering
// is unspecified; any further filtering happens client-side.
func (c *Client) ListByOwner(ctx context.Context, ownerEmail string) ([]Record, error) {
	path := "/api/user-resumes?userEmail=" + url.QueryEscape(ownerEmail)
	resp, err := c.doWithRetry(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing resumes: %w", err)
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, remoteError(resp.StatusCode, rb)
	}

	var envelope struct {
		Data []Record `json:"data"`
	}
	if err := json.Unmarshal(rb, &envelope); err != nil {
		return nil, fmt.Errorf("decoding store response: %w", err)
	}
	for i := range envelope.Data {
		envelope.Data[i].EnsureDefaults()
	}
	return envelope.Data, nil
}

func (c *Client) GetByID(ctx context.Context, id string) (*Record, error) {
	resp, err := c.doWithRetry(ctx, http.MethodGet, "/api/user-resumes/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("fetching resume %s: %w", id, err)
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, remoteError(resp.StatusCode, rb)
	}
	return decodeRecord(rb)
}

// UpdateByID submits a partial update. Top-level fields absent from the
// patch are left untouched server-side; list fields present in the patch
// replace the stored list wholesale.
func (c *Client) UpdateByID(ctx context.Context, id string, patch model.Patch) (*Record, error) {
	b, err := json.Marshal(map[string]interface{}{"data": patch})
	if err != nil {
		return nil, err
	}

	resp, err := c.doWithRetry(ctx, http.MethodPut, "/api/user-resumes/"+url.PathEscape(id), b)
	if err != nil {
		return nil, fmt.Errorf("updating resume %s: %w", id, err)
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, remoteError(resp.StatusCode, rb)
	}
	return decodeRecord(rb)
}

// DeleteByID removes a record. The caller cannot distinguish "already
// deleted" from "deleted now": a 404 counts as success.
func (c *Client) DeleteByID(ctx context.Context, id string) error {
	resp, err := c.doWithRetry(ctx, http.MethodDelete, "/api/user-resumes/"+url.PathEscape(id), nil)
	if err != nil {
		return fmt.Errorf("deleting resume %s: %w", id, err)
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		return nil
	default:
		return remoteError(resp.StatusCode, rb)
	}
}
