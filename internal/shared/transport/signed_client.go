package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/affinity"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/oauth"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/ratelimit"
)

const throttleKey = "gnoss:outbound"

var _ Client = (*SignedClient)(nil)

// Options configures a SignedClient.
type Options struct {
	Signer     oauth.Signer
	Correlator *affinity.Correlator

	// HTTPClient defaults to a client with Timeout.
	HTTPClient *http.Client

	// Timeout defaults to DefaultTimeout. Ignored when HTTPClient is set.
	Timeout time.Duration

	// Limiter throttles outbound calls when set.
	Limiter ratelimit.Limiter

	Logger *slog.Logger
}

type SignedClient struct {
	signer     oauth.Signer
	correlator *affinity.Correlator
	httpClient *http.Client
	limiter    ratelimit.Limiter
	logger     *slog.Logger
}

func New(opts Options) (*SignedClient, error) {
	if opts.Signer == nil {
		return nil, errors.New("transport: signer is required")
	}

	client := &SignedClient{
		signer:     opts.Signer,
		correlator: opts.Correlator,
		httpClient: opts.HTTPClient,
		limiter:    opts.Limiter,
		logger:     opts.Logger,
	}

	if client.correlator == nil {
		client.correlator = affinity.NewCorrelator()
	}
	if client.httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client.httpClient = &http.Client{Timeout: timeout}
	}
	if client.logger == nil {
		client.logger = slog.Default()
	}

	return client, nil
}

func (c *SignedClient) Do(ctx context.Context, req Request) (string, error) {
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodGet
	}

	if err := c.throttle(ctx); err != nil {
		return "", err
	}

	signed, err := c.signer.Sign(ctx, method, req.URL)
	if err != nil {
		return "", err
	}

	var body io.Reader
	if carriesBody(method) && req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return "", vo.NewInvalidArgumentError("url", err.Error())
	}

	requestID := c.correlator.Token(ctx)
	httpReq.Header.Set("Authorization", signed.AuthorizationHeader())
	httpReq.Header.Set(affinity.Header, requestID)
	if carriesBody(method) {
		contentType := req.ContentType
		if contentType == "" {
			contentType = MIMEApplicationJSON
		}
		httpReq.Header.Set("Content-Type", contentType)
	}
	if req.Accept != "" {
		httpReq.Header.Set("Accept", req.Accept)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("gnoss request failed", "request_id", requestID, "method", method, "url", req.URL, "error", err)
		return "", fmt.Errorf("transport: %s %s: %w", method, req.URL, err)
	}
	defer resp.Body.Close()

	payload, readErr := io.ReadAll(resp.Body)

	attrs := []any{
		"request_id", requestID,
		"method", method,
		"url", req.URL,
		"status", resp.StatusCode,
		"latency_ms", time.Since(start).Milliseconds(),
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		remoteErr := remoteError(method, req.URL, resp, payload, readErr)
		c.logger.Error("gnoss request rejected", append(attrs, "error", remoteErr)...)
		return "", remoteErr
	}

	if readErr != nil {
		return "", fmt.Errorf("transport: failed to read response of %s %s: %w", method, req.URL, readErr)
	}

	c.logger.Debug("gnoss request", attrs...)
	return string(payload), nil
}

func (c *SignedClient) throttle(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}

	for {
		result, err := c.limiter.AllowKey(ctx, throttleKey)
		if err != nil {
			return fmt.Errorf("transport: throttle check failed: %w", err)
		}
		if result.Allowed {
			return nil
		}

		wait := result.RetryAfter
		if wait < 10*time.Millisecond {
			wait = 10 * time.Millisecond
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// remoteError prefers the server's own description of the failure. Without
// one, the status failure is returned as is.
func remoteError(method, url string, resp *http.Response, payload []byte, readErr error) error {
	if readErr == nil {
		if message := strings.TrimSpace(string(payload)); message != "" {
			return &vo.RemoteAPIError{StatusCode: resp.StatusCode, Method: method, URL: url, Message: string(payload)}
		}
	}

	if description := strings.TrimSpace(resp.Header.Get(ErrorDescriptionHeader)); description != "" {
		return &vo.RemoteAPIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			URL:        url,
			Message:    strings.ReplaceAll(description, "<br>", "\n"),
		}
	}

	return fmt.Errorf("transport: %s %s returned %d: %w", method, url, resp.StatusCode, vo.ErrUnexpectedStatus)
}

func carriesBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}
