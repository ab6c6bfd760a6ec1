// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package vault

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/joaojacome/bitwarden-ssh-agent/models"
)

// ServeConfig configures a [ServeClient].
type ServeConfig struct {
	// BaseURL is the address of the running `bw serve` process, e.g.
	// "http://localhost:8087".
	BaseURL string

	// Timeout bounds each request. Defaults to 15 seconds.
	Timeout time.Duration
}

// ServeClient talks to the REST API of a running `bw serve` process.
//
// The serve process keeps the unlocked vault state on its side, so unlike
// the CLI client no token has to accompany each request. The client still
// records the session token returned by Unlock so callers can export it.
type ServeClient struct {
	client *resty.Client

	mu      sync.RWMutex
	session string
}

// NewServeClient creates a ServeClient for the given endpoint.
func NewServeClient(cfg ServeConfig) *ServeClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &ServeClient{client: cli}
}

// SetSession stores the session token. The serve process tracks its own
// unlock state, so the token is kept only for reporting.
func (s *ServeClient) SetSession(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = strings.TrimSpace(session)
}

// Session returns the session token captured by the last Unlock, or an
// empty string.
func (s *ServeClient) Session() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Status reports whether the vault behind the serve process is
// unauthenticated, locked, or unlocked.
func (s *ServeClient) Status(ctx context.Context) (models.VaultStatus, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get("/status")
	if err != nil {
		return models.VaultStatus{}, fmt.Errorf("%w: status request: %v", ErrAuth, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultStatus{}, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	var tmpl serveTemplate
	if err = decodeServeData(resp.Body(), &tmpl); err != nil {
		return models.VaultStatus{}, fmt.Errorf("%w: decode status: %v", ErrAuth, err)
	}
	return tmpl.Template, nil
}

// Login is not available over the REST API: the serve process can only
// unlock an account that is already logged in on this machine.
func (s *ServeClient) Login(ctx context.Context, email, password string) error {
	return fmt.Errorf("%w: serve endpoint cannot log in, run `bw login` first", ErrAuth)
}

// Unlock opens the vault with the master password. The serve process
// switches to the unlocked state itself; the returned session token is
// recorded for reporting.
func (s *ServeClient) Unlock(ctx context.Context, password string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(unlockRequest{Password: password}).
		Post("/unlock")
	if err != nil {
		return fmt.Errorf("%w: unlock request: %v", ErrAuth, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%w: %v", ErrAuth, err)
	}

	var msg serveMessage
	if err = decodeServeData(resp.Body(), &msg); err != nil {
		return fmt.Errorf("%w: decode unlock response: %v", ErrAuth, err)
	}
	s.SetSession(msg.Raw)
	return nil
}

// ListFolders returns the folders whose names contain search, or all
// folders when search is empty.
func (s *ServeClient) ListFolders(ctx context.Context, search string) ([]models.Folder, error) {
	req := s.client.R().SetContext(ctx)
	if search != "" {
		req.SetQueryParam("search", search)
	}

	resp, err := req.Get("/list/object/folders")
	if err != nil {
		return nil, fmt.Errorf("%w: list folders request: %v", ErrQuery, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	var folders []models.Folder
	if err = decodeServeList(resp.Body(), &folders); err != nil {
		return nil, fmt.Errorf("%w: decode folders: %v", ErrQuery, err)
	}
	return folders, nil
}

// ListItems returns every item in the given folder.
func (s *ServeClient) ListItems(ctx context.Context, folderID string) ([]models.Item, error) {
	if err := validateID(folderID); err != nil {
		return nil, err
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("folderid", folderID).
		Get("/list/object/items")
	if err != nil {
		return nil, fmt.Errorf("%w: list items request: %v", ErrQuery, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	var items []models.Item
	if err = decodeServeList(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("%w: decode items: %v", ErrQuery, err)
	}
	return items, nil
}

// FetchAttachment downloads one attachment. The serve process streams the
// decrypted file content as the response body.
func (s *ServeClient) FetchAttachment(ctx context.Context, itemID, attachmentID string) ([]byte, error) {
	if err := validateID(itemID); err != nil {
		return nil, err
	}
	if err := validateAttachmentID(attachmentID); err != nil {
		return nil, err
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("itemid", itemID).
		Get("/object/attachment/" + attachmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: get attachment request: %v", ErrQuery, err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrAttachmentNotFound, attachmentID)
		}
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	return resp.Body(), nil
}

// Wire envelopes of the serve API. Every JSON response is wrapped in
// {"success": bool, "data": {...}}; list payloads nest one level deeper
// under {"object": "list", "data": [...]}.

type serveEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type serveTemplate struct {
	Object   string             `json:"object"`
	Template models.VaultStatus `json:"template"`
}

type serveList struct {
	Object string          `json:"object"`
	Data   json.RawMessage `json:"data"`
}

type serveMessage struct {
	Object  string `json:"object"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Raw     string `json:"raw"`
}

type unlockRequest struct {
	Password string `json:"password"`
}

// decodeServeData unwraps the outer envelope and decodes data into v.
func decodeServeData(body []byte, v any) error {
	var env serveEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return err
	}
	if !env.Success {
		if env.Message != "" {
			return errors.New(env.Message)
		}
		return errors.New("request was not successful")
	}
	return json.Unmarshal(env.Data, v)
}

// decodeServeList unwraps both the envelope and the inner list wrapper.
func decodeServeList(body []byte, v any) error {
	var list serveList
	if err := decodeServeData(body, &list); err != nil {
		return err
	}
	return json.Unmarshal(list.Data, v)
}
