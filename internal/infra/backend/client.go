// Package backend implements the gateway interfaces as thin typed HTTP
// clients, one per upstream service. All status and transport handling lives
// here: by the time an error leaves this package it is one of the uniform
// gateway failure kinds.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"agora/internal/domain/gateway"

	"github.com/pkg/errors"
)

// client is the shared HTTP plumbing for one backend service.
type client struct {
	name       string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func newClient(name, baseURL string, timeout time.Duration, logger *slog.Logger) *client {
	return &client{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// request describes one outbound backend call.
type request struct {
	method string
	path   string
	query  url.Values
	body   any
	cred   gateway.Credential
	header http.Header
}

// do issues the call and decodes a 2xx body into out (skipped when out is nil
// or the body is empty). Non-2xx responses and transport failures are mapped
// to the gateway taxonomy: 404 to ErrNotFound, other 4xx to RejectedError
// with the backend's message, everything else to UnavailableError.
func (c *client) do(ctx context.Context, req request, out any) error {
	var bodyReader io.Reader
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		bodyReader = bytes.NewReader(encoded)
	}

	endpoint := c.baseURL + req.path
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, bodyReader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if !req.cred.IsZero() {
		// The credential is forwarded verbatim, never inspected.
		httpReq.Header.Set("Authorization", string(req.cred))
	}
	for key, values := range req.header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("Backend call failed",
			"service", c.name, "method", req.method, "path", req.path, "error", err)

		return errors.WithStack(&gateway.UnavailableError{Service: c.name, Err: err})
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithStack(&gateway.UnavailableError{Service: c.name, Err: err})
	}

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		if out == nil || len(payload) == 0 {
			return nil
		}
		if err := json.Unmarshal(payload, out); err != nil {
			return errors.Wrapf(err, "decode %s response", c.name)
		}

		return nil

	case resp.StatusCode == http.StatusNotFound:
		return errors.WithStack(gateway.ErrNotFound)

	case resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError:
		return errors.WithStack(&gateway.RejectedError{Reason: rejectionReason(payload)})

	default:
		c.logger.Warn("Backend returned server error",
			"service", c.name, "method", req.method, "path", req.path, "status", resp.StatusCode)

		return errors.WithStack(&gateway.UnavailableError{Service: c.name, Status: resp.StatusCode})
	}
}

// rejectionReason extracts a human-readable message from a 4xx body, falling
// back to the raw body when it does not follow the conventional shape.
func rejectionReason(payload []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(payload, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}

	reason := strings.TrimSpace(string(payload))
	if reason == "" {
		return "request rejected"
	}

	return reason
}
