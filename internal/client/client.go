// Package client provides the programmatic surface the UI layers build
// on: a typed HTTP client for the sites API and a cached collection
// store with refetch-after-mutation semantics.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/discoverguadeloupe/backend/internal/domain/entities"
	"github.com/discoverguadeloupe/backend/internal/domain/repositories"
	apperrors "github.com/discoverguadeloupe/backend/pkg/errors"
)

// Client is a typed HTTP client for the sites REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL (e.g. "http://localhost:3001")
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// NewWithHTTPClient creates a client using the given http.Client
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	c := New(baseURL)
	c.httpClient = httpClient
	return c
}

// ListSites fetches the full site collection
func (c *Client) ListSites(ctx context.Context) ([]entities.Site, error) {
	var sites []entities.Site
	if err := c.do(ctx, http.MethodGet, "/sites", nil, http.StatusOK, &sites); err != nil {
		return nil, err
	}
	return sites, nil
}

// GetSite fetches a single site by id
func (c *Client) GetSite(ctx context.Context, id string) (*entities.Site, error) {
	var site entities.Site
	if err := c.do(ctx, http.MethodGet, "/sites/"+id, nil, http.StatusOK, &site); err != nil {
		return nil, err
	}
	return &site, nil
}

// CreateSite creates a site; the server assigns an id when the payload
// omits one
func (c *Client) CreateSite(ctx context.Context, site entities.Site) (*entities.Site, error) {
	var created entities.Site
	if err := c.do(ctx, http.MethodPost, "/sites", site, http.StatusCreated, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateSite applies a partial update
func (c *Client) UpdateSite(ctx context.Context, id string, changes repositories.SiteChangeset) (*entities.Site, error) {
	var updated entities.Site
	if err := c.do(ctx, http.MethodPatch, "/sites/"+id, changes, http.StatusOK, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteSite removes a site
func (c *Client) DeleteSite(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/sites/"+id, nil, http.StatusNoContent, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, wantStatus int, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return apperrors.NewInternalError("failed to encode request body", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return apperrors.NewInternalError("failed to build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewExternalError(fmt.Sprintf("%s %s failed", method, path), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return errorFromResponse(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apperrors.NewExternalError("failed to decode response body", err)
		}
	}
	return nil
}

// errorFromResponse maps a non-success response to the error taxonomy,
// carrying the server's error message when one is present.
func errorFromResponse(resp *http.Response) error {
	message := resp.Status
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		message = body.Error
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return apperrors.NewNotFoundError(message)
	case http.StatusConflict:
		return apperrors.NewConflictError(message)
	case http.StatusBadRequest:
		return apperrors.NewValidationError(message)
	default:
		return apperrors.NewExternalError(message, nil)
	}
}
