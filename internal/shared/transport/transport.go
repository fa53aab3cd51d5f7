// Package transport issues OAuth-signed HTTP calls against the GNOSS API and
// turns non-success responses into domain errors.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single remote call.
const DefaultTimeout = 200 * time.Second

const (
	MIMEApplicationJSON = "application/json"
	MIMETextPlain       = "text/plain"

	// ErrorDescriptionHeader is set by the remote service on some failures
	// that carry no body.
	ErrorDescriptionHeader = "ErrorDescription"
)

type Request struct {
	Method      string
	URL         string
	Body        []byte
	ContentType string
	Accept      string
}

// Client performs a signed call and returns the raw response body.
// Implementations must be safe for concurrent use.
type Client interface {
	Do(ctx context.Context, req Request) (string, error)
}

// PostJSON marshals payload and posts it.
func PostJSON(ctx context.Context, client Client, url string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("transport: failed to encode request body: %w", err)
	}

	return client.Do(ctx, Request{
		Method:      http.MethodPost,
		URL:         url,
		Body:        body,
		ContentType: MIMEApplicationJSON,
		Accept:      MIMEApplicationJSON,
	})
}

// PostJSONInto posts payload and decodes the response into out.
func PostJSONInto(ctx context.Context, client Client, url string, payload, out any) error {
	response, err := PostJSON(ctx, client, url, payload)
	if err != nil {
		return err
	}
	return decode(response, out)
}

func Get(ctx context.Context, client Client, url string) (string, error) {
	return client.Do(ctx, Request{
		Method: http.MethodGet,
		URL:    url,
		Accept: MIMEApplicationJSON,
	})
}

func GetJSON(ctx context.Context, client Client, url string, out any) error {
	response, err := Get(ctx, client, url)
	if err != nil {
		return err
	}
	return decode(response, out)
}

func decode(response string, out any) error {
	if err := json.Unmarshal([]byte(response), out); err != nil {
		return fmt.Errorf("transport: failed to decode response body: %w", err)
	}
	return nil
}
