// Package api is the HTTP client for the files-manager server. It mirrors
// the server's JSON surface and translates error responses back into the
// shared sentinel errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/avasiljevs/filesmanager/internal/common"
)

// User is the account payload returned by the server.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// FileEntry is the file metadata payload returned by the server.
type FileEntry struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID string `json:"parentId"`
	IsPublic bool   `json:"isPublic"`
}

// UploadInput is the body of an upload request. Data carries the
// base64-encoded payload for non-folder kinds.
type UploadInput struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID string `json:"parentId,omitempty"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data,omitempty"`
}

// Status is the backing-store liveness report.
type Status struct {
	Store bool `json:"store"`
	Cache bool `json:"cache"`
}

// Stats carries aggregate document counts.
type Stats struct {
	Users int64 `json:"users"`
	Files int64 `json:"files"`
}

// Client talks to one files-manager server. The session token set via
// SetToken is attached to every subsequent request.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New constructs a Client for the given base URL, e.g. "http://127.0.0.1:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken attaches a session token to all subsequent requests. An empty
// value clears it.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the currently attached session token.
func (c *Client) Token() string { return c.token }

type errorResponse struct {
	Error string `json:"error"`
}

// apiError converts a non-2xx response into an error. Status codes the
// server uses for auth and lookup failures map onto the shared sentinels so
// callers can use errors.Is.
func apiError(status int, body []byte) error {
	var er errorResponse
	msg := http.StatusText(status)
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		msg = er.Error
	}

	switch status {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", common.ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, msg)
	default:
		return fmt.Errorf("server error (%d): %s", status, msg)
	}
}

// do sends one request and decodes a JSON response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any, auth func(*http.Request)) error {
	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("X-Token", c.token)
	}
	if auth != nil {
		auth(req)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(resp.Body)
		return apiError(resp.StatusCode, buf.Bytes())
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, email, password string) (*User, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var user User
	if err := c.do(ctx, http.MethodPost, "/users", req, &user, nil); err != nil {
		return nil, err
	}
	return &user, nil
}

// Connect exchanges credentials for a session token and attaches it to the
// client.
func (c *Client) Connect(ctx context.Context, email, password string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	auth := func(r *http.Request) { r.SetBasicAuth(email, password) }
	if err := c.do(ctx, http.MethodGet, "/connect", nil, &resp, auth); err != nil {
		return "", err
	}
	c.token = resp.Token
	return resp.Token, nil
}

// Disconnect revokes the attached session token and clears it.
func (c *Client) Disconnect(ctx context.Context) error {
	if err := c.do(ctx, http.MethodGet, "/disconnect", nil, nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// Me returns the account bound to the attached token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &user, nil); err != nil {
		return nil, err
	}
	return &user, nil
}

// Upload creates a folder or stores a file.
func (c *Client) Upload(ctx context.Context, input UploadInput) (*FileEntry, error) {
	var entry FileEntry
	if err := c.do(ctx, http.MethodPost, "/files", input, &entry, nil); err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns one page of the caller's entries under a parent.
func (c *Client) List(ctx context.Context, parentID string, page int64) ([]FileEntry, error) {
	q := url.Values{}
	if parentID != "" {
		q.Set("parentId", parentID)
	}
	if page > 0 {
		q.Set("page", strconv.FormatInt(page, 10))
	}
	path := "/files"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var entries []FileEntry
	if err := c.do(ctx, http.MethodGet, path, nil, &entries, nil); err != nil {
		return nil, err
	}
	return entries, nil
}

// Stat returns one entry owned by the caller.
func (c *Client) Stat(ctx context.Context, id string) (*FileEntry, error) {
	var entry FileEntry
	if err := c.do(ctx, http.MethodGet, "/files/"+url.PathEscape(id), nil, &entry, nil); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Status reports backing-store liveness.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	var st Status
	if err := c.do(ctx, http.MethodGet, "/status", nil, &st, nil); err != nil {
		return nil, err
	}
	return &st, nil
}

// Stats returns aggregate user and file counts.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var st Stats
	if err := c.do(ctx, http.MethodGet, "/stats", nil, &st, nil); err != nil {
		return nil, err
	}
	return &st, nil
}
