package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	idempotencymocks "github.com/joshuarp/gnoss-api-wrapper/internal/mock/shared/idempotency"
	jwtmocks "github.com/joshuarp/gnoss-api-wrapper/internal/mock/shared/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/affinity"
	sharedidempotency "github.com/joshuarp/gnoss-api-wrapper/internal/shared/idempotency"
	sharedjwt "github.com/joshuarp/gnoss-api-wrapper/internal/shared/jwt"
	sharedratelimit "github.com/joshuarp/gnoss-api-wrapper/internal/shared/ratelimit"
)

func doRequest(app *fiber.App, method, path string, body []byte, headers map[string]string) (*http.Response, map[string]interface{}, []byte, error) {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if len(body) > 0 {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := app.Test(req)
	if err != nil {
		return nil, nil, nil, err
	}
	defer resp.Body.Close()
	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, nil, err
	}

	parsed := map[string]interface{}{}
	_ = json.Unmarshal(rawBody, &parsed)

	return resp, parsed, rawBody, nil
}

type HTTPJWTMiddlewareSuite struct {
	suite.Suite

	tokenManager *jwtmocks.TokenManager
	app          *fiber.App
}

func (s *HTTPJWTMiddlewareSuite) SetupTest() {
	s.tokenManager = jwtmocks.NewTokenManager(s.T())
	s.app = fiber.New()
	s.app.Use(NewHTTPJWTMiddleware(s.tokenManager, "demo"))
	s.app.Get("/secure", func(c fiber.Ctx) error {
		claims, _ := c.Locals(ClaimsLocal).(*sharedjwt.Claims)
		ctxClaims, _ := sharedjwt.ClaimsFromContext(c.Context())
		ctxOperator := sharedratelimit.GetOperator(c.Context())
		return c.JSON(fiber.Map{
			"operator_id":  OperatorIDFromContext(c),
			"subject":      claims.Subject,
			"ctx_subject":  ctxClaims.Subject,
			"ctx_operator": ctxOperator,
		})
	})
	s.app.Post("/api/v1/auth/login", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
}

func (s *HTTPJWTMiddlewareSuite) TestNewHTTPJWTMiddleware_TableDriven() {
	verifyErr := errors.New("invalid")

	tests := []struct {
		name      string
		method    string
		path      string
		headers   map[string]string
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name:   "bypass auth login route",
			method: http.MethodPost,
			path:   "/api/v1/auth/login",
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), true, payload["ok"])
			},
		},
		{
			name:    "missing authorization header",
			method:  http.MethodGet,
			path:    "/secure",
			headers: map[string]string{},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusUnauthorized, resp.StatusCode)
				assert.Equal(s.T(), "missing or invalid authorization header", payload["error"])
			},
		},
		{
			name:   "missing bearer token",
			method: http.MethodGet,
			path:   "/secure",
			headers: map[string]string{
				fiber.HeaderAuthorization: "Bearer   ",
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusUnauthorized, resp.StatusCode)
				assert.Equal(s.T(), "missing or invalid authorization header", payload["error"])
			},
		},
		{
			name:   "invalid token",
			method: http.MethodGet,
			path:   "/secure",
			headers: map[string]string{
				fiber.HeaderAuthorization: "Bearer token-123",
			},
			setupMock: func() {
				s.tokenManager.EXPECT().Verify(mock.Anything, "token-123").Return(nil, verifyErr)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusUnauthorized, resp.StatusCode)
				assert.Equal(s.T(), "invalid token", payload["error"])
			},
		},
		{
			name:   "token for another community",
			method: http.MethodGet,
			path:   "/secure",
			headers: map[string]string{
				fiber.HeaderAuthorization: "Bearer token-123",
			},
			setupMock: func() {
				s.tokenManager.EXPECT().Verify(mock.Anything, "token-123").Return(&sharedjwt.Claims{Subject: "operator-1", Community: "other"}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusForbidden, resp.StatusCode)
				assert.Equal(s.T(), "token is not valid for this community", payload["error"])
			},
		},
		{
			name:   "valid token",
			method: http.MethodGet,
			path:   "/secure",
			headers: map[string]string{
				fiber.HeaderAuthorization: "Bearer token-123",
			},
			setupMock: func() {
				s.tokenManager.EXPECT().Verify(mock.Anything, "token-123").Return(&sharedjwt.Claims{Subject: "operator-1", Community: "demo"}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), "operator-1", payload["operator_id"])
				assert.Equal(s.T(), "operator-1", payload["subject"])
				assert.Equal(s.T(), "operator-1", payload["ctx_subject"])
				assert.Equal(s.T(), "operator-1", payload["ctx_operator"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _, err := doRequest(s.app, tc.method, tc.path, nil, tc.headers)
			require.NoError(s.T(), err)
			tc.assertion(resp, payload)
		})
	}
}

func TestHTTPJWTMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(HTTPJWTMiddlewareSuite))
}

type HTTPIdempotencyMiddlewareSuite struct {
	suite.Suite

	store *idempotencymocks.Store
	app   *fiber.App
}

func (s *HTTPIdempotencyMiddlewareSuite) SetupTest() {
	s.store = idempotencymocks.NewStore(s.T())
	s.app = fiber.New()
}

func (s *HTTPIdempotencyMiddlewareSuite) TestNewHTTPIdempotencyMiddleware_TableDriven() {
	acquireErr := errors.New("acquire failed")
	completeErr := errors.New("complete failed")
	responseBody := []byte(`{"ok":true}`)

	tests := []struct {
		name       string
		storeNil   bool
		operatorID string
		headers    map[string]string
		body       []byte
		setupMock  func(store *idempotencymocks.Store)
		assertion  func(*http.Response, map[string]interface{}, []byte)
	}{
		{
			name:       "store not available",
			storeNil:   true,
			operatorID: "operator-1",
			headers:    map[string]string{IdempotencyKeyHeader: "idem-1"},
			body:       []byte(`{"name":"nightly"}`),
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusInternalServerError, resp.StatusCode)
				assert.Equal(s.T(), "idempotency store is not available", payload["error"])
			},
		},
		{
			name:       "missing authenticated operator",
			operatorID: "",
			headers:    map[string]string{IdempotencyKeyHeader: "idem-1"},
			body:       []byte(`{"name":"nightly"}`),
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusUnauthorized, resp.StatusCode)
				assert.Equal(s.T(), "missing authenticated operator", payload["error"])
			},
		},
		{
			name:       "missing idempotency key",
			operatorID: "operator-1",
			body:       []byte(`{"name":"nightly"}`),
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "missing idempotency key", payload["error"])
			},
		},
		{
			name:       "acquire failed",
			operatorID: "operator-1",
			headers:    map[string]string{IdempotencyKeyHeader: "idem-1"},
			body:       []byte(`{"name":"nightly"}`),
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, mock.Anything).Return(sharedidempotency.Decision{}, acquireErr)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusInternalServerError, resp.StatusCode)
				assert.Equal(s.T(), "failed to acquire idempotency key", payload["error"])
			},
		},
		{
			name:       "replay existing response",
			operatorID: "operator-1",
			headers:    map[string]string{IdempotencyKeyHeader: "idem-1"},
			body:       []byte(`{"name":"nightly"}`),
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, mock.Anything).Return(sharedidempotency.Decision{
					Type:        sharedidempotency.DecisionReplay,
					StatusCode:  fiber.StatusAccepted,
					Body:        []byte(`{"status":"replay"}`),
					ContentType: fiber.MIMEApplicationJSON,
				}, nil)
			},
			assertion: func(resp *http.Response, _ map[string]interface{}, raw []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusAccepted, resp.StatusCode)
				assert.Equal(s.T(), "true", resp.Header.Get(IdempotentReplayHeader))
				assert.JSONEq(s.T(), `{"status":"replay"}`, string(raw))
			},
		},
		{
			name:       "standard header accepted",
			operatorID: "operator-1",
			headers:    map[string]string{StandardIdempotencyKeyHeader: "idem-2"},
			body:       []byte(`{"name":"nightly"}`),
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, mock.MatchedBy(func(r sharedidempotency.Request) bool {
					return r.Key == "idem-2" && r.Scope == "massive-load:operator-1"
				})).Return(sharedidempotency.Decision{Type: sharedidempotency.DecisionAcquired}, nil)
				store.EXPECT().Complete(mock.Anything, mock.Anything, mock.Anything).Return(nil)
			},
			assertion: func(resp *http.Response, _ map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusCreated, resp.StatusCode)
				assert.Empty(s.T(), resp.Header.Get(IdempotentReplayHeader))
			},
		},
		{
			name:       "request still in progress",
			operatorID: "operator-1",
			headers:    map[string]string{IdempotencyKeyHeader: "idem-1"},
			body:       []byte(`{"name":"nightly"}`),
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, mock.Anything).Return(sharedidempotency.Decision{Type: sharedidempotency.DecisionInProgress}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusConflict, resp.StatusCode)
				assert.Equal(s.T(), "request is already in progress", payload["error"])
			},
		},
		{
			name:       "idempotency conflict",
			operatorID: "operator-1",
			headers:    map[string]string{IdempotencyKeyHeader: "idem-1"},
			body:       []byte(`{"name":"nightly"}`),
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, mock.Anything).Return(sharedidempotency.Decision{Type: sharedidempotency.DecisionConflict}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusConflict, resp.StatusCode)
				assert.Equal(s.T(), "idempotency key reused with different payload", payload["error"])
			},
		},
		{
			name:       "invalid decision type",
			operatorID: "operator-1",
			headers:    map[string]string{IdempotencyKeyHeader: "idem-1"},
			body:       []byte(`{"name":"nightly"}`),
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, mock.Anything).Return(sharedidempotency.Decision{Type: "unknown"}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusInternalServerError, resp.StatusCode)
				assert.Equal(s.T(), "invalid idempotency state", payload["error"])
			},
		},
		{
			name:       "complete failed",
			operatorID: "operator-1",
			headers:    map[string]string{IdempotencyKeyHeader: "idem-1"},
			body:       []byte(`{"name":"nightly"}`),
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, mock.Anything).Return(sharedidempotency.Decision{Type: sharedidempotency.DecisionAcquired}, nil)
				store.EXPECT().Complete(mock.Anything, mock.Anything, mock.Anything).Return(completeErr)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusInternalServerError, resp.StatusCode)
				assert.Equal(s.T(), "failed to persist idempotency response", payload["error"])
			},
		},
		{
			name:       "acquired and persisted",
			operatorID: "operator-1",
			headers:    map[string]string{IdempotencyKeyHeader: "idem-1"},
			body:       []byte(`{"name":"nightly"}`),
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, mock.Anything).Return(sharedidempotency.Decision{Type: sharedidempotency.DecisionAcquired}, nil)
				store.EXPECT().Complete(mock.Anything, mock.Anything, mock.Anything).Return(nil)
			},
			assertion: func(resp *http.Response, _ map[string]interface{}, raw []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusCreated, resp.StatusCode)
				assert.JSONEq(s.T(), string(responseBody), string(raw))
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()

			var middleware fiber.Handler
			if tc.storeNil {
				middleware = NewHTTPIdempotencyMiddleware(nil, "massive-load")
			} else {
				if tc.setupMock != nil {
					tc.setupMock(s.store)
				}
				middleware = NewHTTPIdempotencyMiddleware(s.store, "massive-load")
			}

			s.app.Use(func(c fiber.Ctx) error {
				if tc.operatorID != "" {
					c.Locals(OperatorIDLocal, tc.operatorID)
				}
				return c.Next()
			})
			s.app.Post("/massive-loads", middleware, func(c fiber.Ctx) error {
				return c.Status(fiber.StatusCreated).Send(responseBody)
			})

			resp, payload, raw, err := doRequest(s.app, http.MethodPost, "/massive-loads", tc.body, tc.headers)
			require.NoError(s.T(), err)
			tc.assertion(resp, payload, raw)
		})
	}
}

func (s *HTTPIdempotencyMiddlewareSuite) TestRequestHash_TableDriven() {
	tests := []struct {
		name       string
		method     string
		path       string
		operatorID string
		body       []byte
		other      []byte
		assertFn   func(string, string)
	}{
		{
			name:       "same payload produces same hash",
			method:     "post",
			path:       " /massive-loads ",
			operatorID: " operator-1 ",
			body:       []byte(`{"name":"nightly"}`),
			other:      []byte(`{"name":"nightly"}`),
			assertFn: func(left, right string) {
				assert.Equal(s.T(), left, right)
			},
		},
		{
			name:       "different payload produces different hash",
			method:     "POST",
			path:       "/massive-loads",
			operatorID: "operator-1",
			body:       []byte(`{"name":"nightly"}`),
			other:      []byte(`{"name":"weekly"}`),
			assertFn: func(left, right string) {
				assert.NotEqual(s.T(), left, right)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			first := requestHash(tc.method, tc.path, tc.operatorID, tc.body)
			second := requestHash(tc.method, tc.path, tc.operatorID, tc.other)
			tc.assertFn(first, second)
		})
	}
}

func TestHTTPIdempotencyMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(HTTPIdempotencyMiddlewareSuite))
}

type stubRateLimiter struct {
	result  sharedratelimit.Result
	err     error
	lastKey string
}

func (s *stubRateLimiter) Allow(_ context.Context) (sharedratelimit.Result, error) {
	return s.result, s.err
}

func (s *stubRateLimiter) AllowKey(_ context.Context, key string) (sharedratelimit.Result, error) {
	s.lastKey = key
	return s.result, s.err
}

func (s *stubRateLimiter) Reset(_ context.Context) error {
	return nil
}

func (s *stubRateLimiter) ResetKey(_ context.Context, _ string) error {
	return nil
}

func (s *stubRateLimiter) Close() error {
	return nil
}

func TestHTTPRateLimitMiddleware_TableDriven(t *testing.T) {
	tests := []struct {
		name          string
		limiter       *stubRateLimiter
		keyExtractor  func(c fiber.Ctx) string
		expectedCode  int
		expectedError string
		assertHeaders bool
		expectedKey   string
	}{
		{
			name:          "allows request and sets headers",
			limiter:       &stubRateLimiter{result: sharedratelimit.Result{Allowed: true, Limit: 20, Remaining: 19, ResetAt: time.Unix(200, 0)}},
			keyExtractor:  func(c fiber.Ctx) string { return "gateway:operator:test-operator" },
			expectedCode:  fiber.StatusOK,
			assertHeaders: true,
			expectedKey:   "gateway:operator:test-operator",
		},
		{
			name:          "rejects when limit exceeded",
			limiter:       &stubRateLimiter{result: sharedratelimit.Result{Allowed: false, Limit: 20, Remaining: 0, RetryAfter: 5 * time.Second, ResetAt: time.Unix(250, 0)}},
			keyExtractor:  func(c fiber.Ctx) string { return "gateway:operator:test-operator" },
			expectedCode:  fiber.StatusTooManyRequests,
			expectedError: "rate limit exceeded",
			expectedKey:   "gateway:operator:test-operator",
		},
		{
			name:          "returns internal error when limiter fails",
			limiter:       &stubRateLimiter{err: errors.New("boom")},
			keyExtractor:  func(c fiber.Ctx) string { return "gateway:operator:test-operator" },
			expectedCode:  fiber.StatusInternalServerError,
			expectedError: "internal server error",
			expectedKey:   "gateway:operator:test-operator",
		},
		{
			name:          "passes through when limiter is nil",
			limiter:       nil,
			keyExtractor:  func(c fiber.Ctx) string { return "gateway:operator:test-operator" },
			expectedCode:  fiber.StatusOK,
			expectedError: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(func(c fiber.Ctx) error {
				c.Locals(OperatorIDLocal, "test-operator")
				return c.Next()
			})

			var limiter sharedratelimit.Limiter
			if tc.limiter != nil {
				limiter = tc.limiter
			}

			app.Use(NewHTTPRateLimitMiddleware(RateLimitConfig{
				Limiter:      limiter,
				Scope:        "resources",
				KeyExtractor: tc.keyExtractor,
			}))

			app.Get("/limited", func(c fiber.Ctx) error {
				return c.JSON(fiber.Map{"ok": true})
			})

			resp, payload, _, err := doRequest(app, http.MethodGet, "/limited", nil, nil)
			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, tc.expectedCode, resp.StatusCode)

			if tc.expectedError != "" {
				assert.Equal(t, tc.expectedError, payload["error"])
			}
			if tc.expectedCode == fiber.StatusTooManyRequests {
				assert.Equal(t, "5", resp.Header.Get(fiber.HeaderRetryAfter))
				assert.Equal(t, "resources", payload["scope"])
			}

			if tc.assertHeaders {
				assert.Equal(t, "20", resp.Header.Get("X-RateLimit-Limit"))
				assert.Equal(t, "19", resp.Header.Get("X-RateLimit-Remaining"))
			}

			if tc.limiter != nil {
				assert.Equal(t, tc.expectedKey, tc.limiter.lastKey)
			}
		})
	}
}

func TestHTTPAffinityMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(NewHTTPRequestIDMiddleware())
	app.Use(NewHTTPAffinityMiddleware())
	app.Get("/token", func(c fiber.Ctx) error {
		token, _ := affinity.TokenFromContext(c.Context())
		return c.JSON(fiber.Map{"token": token})
	})

	resp, payload, _, err := doRequest(app, http.MethodGet, "/token", nil, map[string]string{RequestIDHeader: "req-42"})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "req-42", payload["token"])
	assert.Equal(t, "req-42", resp.Header.Get(RequestIDHeader))
}

func TestPerOperatorKeyExtractor(t *testing.T) {
	tests := []struct {
		name       string
		operatorID string
		expected   string
	}{
		{name: "authenticated operator", operatorID: "op-1", expected: "gateway:operator:op-1"},
		{name: "anonymous falls back to ip", operatorID: "", expected: "gateway:ip:0.0.0.0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/key", func(c fiber.Ctx) error {
				if tc.operatorID != "" {
					c.Locals(OperatorIDLocal, tc.operatorID)
				}
				return c.SendString(PerOperatorKeyExtractor("gateway")(c))
			})

			_, _, raw, err := doRequest(app, http.MethodGet, "/key", nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, string(raw))
		})
	}
}

func TestHTTPRateLimitMiddleware_PathPrefix(t *testing.T) {
	limiter := &stubRateLimiter{result: sharedratelimit.Result{Allowed: false, Limit: 1, RetryAfter: 200 * time.Millisecond}}

	app := fiber.New()
	app.Use(func(c fiber.Ctx) error {
		c.Locals(OperatorIDLocal, "op-7")
		return c.Next()
	})
	app.Use(NewHTTPRateLimitMiddleware(RateLimitConfig{
		Limiter:    limiter,
		Scope:      "massive-load",
		PathPrefix: "/api/v1/massive-loads",
	}))
	app.Get("/api/v1/thesaurus", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/api/v1/massive-loads/x", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	resp, _, _, err := doRequest(app, http.MethodGet, "/api/v1/thesaurus", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, limiter.lastKey)

	resp, _, _, err = doRequest(app, http.MethodGet, "/api/v1/massive-loads/x", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get(fiber.HeaderRetryAfter))
	assert.Equal(t, "massive-load:operator:op-7", limiter.lastKey)
}

func TestHTTPRequestResponseLogMiddleware_TableDriven(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		handler       fiber.Handler
		expectedLevel string
		expectLine    bool
	}{
		{
			name:          "success logs at info",
			path:          "/api/v1/thesaurus",
			handler:       func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
			expectedLevel: "INFO",
			expectLine:    true,
		},
		{
			name:          "client error logs at warn",
			path:          "/api/v1/thesaurus",
			handler:       func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) },
			expectedLevel: "WARN",
			expectLine:    true,
		},
		{
			name:          "handler error logs at error",
			path:          "/api/v1/thesaurus",
			handler:       func(c fiber.Ctx) error { return errors.New("gnoss unavailable") },
			expectedLevel: "ERROR",
			expectLine:    true,
		},
		{
			name:       "health check is not logged",
			path:       "/healthz",
			handler:    func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
			expectLine: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			app := fiber.New()
			app.Use(NewHTTPRequestResponseLogMiddleware(logger))
			app.Use(func(c fiber.Ctx) error {
				c.Locals(OperatorIDLocal, "op-1")
				c.SetContext(sharedjwt.WithClaims(c.Context(), &sharedjwt.Claims{Subject: "op-1", Community: "demo"}))
				return c.Next()
			})
			app.Get(tc.path, tc.handler)

			_, _, _, err := doRequest(app, http.MethodGet, tc.path, nil, nil)
			require.NoError(t, err)

			if !tc.expectLine {
				assert.Empty(t, buf.String())
				return
			}

			line := map[string]interface{}{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, "gateway_request", line["msg"])
			assert.Equal(t, tc.expectedLevel, line["level"])
			assert.Equal(t, tc.path, line["path"])
			assert.Equal(t, "op-1", line["operator_id"])
			assert.Equal(t, "demo", line["community"])
		})
	}
}
