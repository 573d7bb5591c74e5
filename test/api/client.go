/*
Copyright 2025 the test-api Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// errTransientStatus signals the retry loop that the last response carried a
// retryable status code. It never escapes to callers.
var errTransientStatus = errors.New("transient status code")

// retryableStatuses are retried with exponential backoff, everything else is
// handed straight back to the caller.
var retryableStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// Response is the raw outcome of a request. HTTP error statuses are carried
// here as values, asserting on them is the whole point of the suites.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}

// Map decodes the response body as a JSON object.
func (r *Response) Map() (map[string]any, error) {
	var data map[string]any
	if err := r.JSON(&data); err != nil {
		return nil, err
	}

	return data, nil
}

// List decodes the response body as a JSON array of objects.
func (r *Response) List() ([]map[string]any, error) {
	var items []map[string]any
	if err := r.JSON(&items); err != nil {
		return nil, err
	}

	return items, nil
}

type fileUpload struct {
	field    string
	filename string
	content  []byte
}

type requestOptions struct {
	query  url.Values
	header http.Header
	file   *fileUpload
}

// RequestOption customizes a single request.
type RequestOption func(*requestOptions)

// WithQuery adds a query parameter.
func WithQuery(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.query.Add(key, value)
	}
}

// WithHeader adds a request header.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.header.Add(key, value)
	}
}

// WithFile sends the request as a multipart upload instead of JSON.
func WithFile(field, filename string, content []byte) RequestOption {
	return func(o *requestOptions) {
		o.file = &fileUpload{field: field, filename: filename, content: content}
	}
}

// APIClient is a thin HTTP wrapper bound to the service base URL, with
// bearer-token authentication and retry on transient failures.
type APIClient struct {
	baseURL   string
	client    *http.Client
	authToken string
	config    *TestConfig
	endpoints *Endpoints
	log       *zap.Logger
}

func NewAPIClient(baseURL string) *APIClient {
	config := LoadTestConfig()
	if baseURL == "" {
		baseURL = config.BaseURL
	}

	return newAPIClientWithConfig(config, baseURL)
}

func NewAPIClientWithConfig(config *TestConfig) *APIClient {
	return newAPIClientWithConfig(config, config.BaseURL)
}

// common constructor logic.
func newAPIClientWithConfig(config *TestConfig, baseURL string) *APIClient {
	log := zap.NewNop()
	if config.DebugLogging {
		log = zap.Must(zap.NewDevelopment())
	}

	return &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		endpoints: NewEndpoints(),
		log:       log,
	}
}

// NewAuthenticatedClient builds a client that signs in with the configured
// test credentials at construction time. Sign-in failure is non-fatal: the
// client is returned unauthenticated and subsequent requests may see 401s.
func NewAuthenticatedClient(config *TestConfig) *APIClient {
	c := NewAPIClientWithConfig(config)

	ctx, cancel := context.WithTimeout(context.Background(), config.RequestTimeout)
	defer cancel()

	payload := NewSignInPayload().
		WithEmail(config.TestUserEmail).
		WithPassword(config.TestUserPassword).
		Build()

	resp, err := c.Post(ctx, c.endpoints.SignIn(), payload)
	if err != nil {
		c.log.Warn("automatic sign-in failed, continuing unauthenticated", zap.Error(err))
		return c
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("automatic sign-in rejected, continuing unauthenticated",
			zap.Int("status", resp.StatusCode))
		return c
	}

	var body struct {
		AccessToken string `json:"accessToken"`
	}

	if err := resp.JSON(&body); err != nil || body.AccessToken == "" {
		c.log.Warn("automatic sign-in returned no usable token, continuing unauthenticated",
			zap.Error(err))
		return c
	}

	c.SetAuthToken(body.AccessToken)

	return c
}

// SetLogger replaces the client logger. Nil restores the no-op logger.
func (c *APIClient) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}

	c.log = log
}

// SetAuthToken stores the bearer token attached to all subsequent requests.
func (c *APIClient) SetAuthToken(token string) {
	c.authToken = token
}

// ClearAuthToken removes the stored bearer token.
func (c *APIClient) ClearAuthToken() {
	c.authToken = ""
}

// AuthToken returns the currently stored bearer token, empty if none.
func (c *APIClient) AuthToken() string {
	return c.authToken
}

// Endpoints returns the URL registry bound to this client's service.
func (c *APIClient) Endpoints() *Endpoints {
	return c.endpoints
}

func (c *APIClient) Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, opts)
}

func (c *APIClient) Post(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body, opts)
}

func (c *APIClient) Put(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, body, opts)
}

func (c *APIClient) Patch(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodPatch, path, body, opts)
}

func (c *APIClient) Delete(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil, opts)
}

// do sends the request, retrying transport failures and transient statuses
// with exponential backoff up to MaxRetries. After exhaustion the last HTTP
// response is returned as a value; only transport failures become errors.
func (c *APIClient) do(ctx context.Context, method, path string, body any, opts []RequestOption) (*Response, error) {
	o := &requestOptions{
		query:  url.Values{},
		header: http.Header{},
	}

	for _, opt := range opts {
		opt(o)
	}

	var payload []byte

	if body != nil && o.file == nil {
		var err error

		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	fullURL := c.baseURL + path
	if len(o.query) > 0 {
		fullURL += "?" + o.query.Encode()
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.config.RetryBackoff
	bo.MaxElapsedTime = 0 // retry count is the only cap

	var lastResp *Response

	operation := func() error {
		resp, err := c.send(ctx, method, fullURL, path, payload, o)
		if err != nil {
			return err
		}

		lastResp = resp

		if retryableStatuses[resp.StatusCode] {
			return errTransientStatus
		}

		return nil
	}

	err := backoff.Retry(operation,
		backoff.WithContext(backoff.WithMaxRetries(bo, uint64(c.config.MaxRetries)), ctx))
	if err != nil {
		if errors.Is(err, errTransientStatus) && lastResp != nil {
			// Retries exhausted on a transient status: hand the last
			// response back for the test to assert on.
			return lastResp, nil
		}

		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	return lastResp, nil
}

// send performs one attempt. The request is rebuilt from the serialized
// payload each time so retries never reuse a consumed body.
func (c *APIClient) send(ctx context.Context, method, fullURL, path string, payload []byte, o *requestOptions) (*Response, error) {
	var (
		reqBody     io.Reader
		contentType string
	)

	switch {
	case o.file != nil:
		var buf bytes.Buffer

		w := multipart.NewWriter(&buf)

		part, err := w.CreateFormFile(o.file.field, o.file.filename)
		if err != nil {
			return nil, fmt.Errorf("creating multipart body: %w", err)
		}

		if _, err := part.Write(o.file.content); err != nil {
			return nil, fmt.Errorf("writing multipart body: %w", err)
		}

		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("finalizing multipart body: %w", err)
		}

		reqBody = &buf
		contentType = w.FormDataContentType()
	case payload != nil:
		reqBody = bytes.NewReader(payload)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// W3C trace context so a failed request can be found in service logs.
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=go-test")

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	for key, values := range o.header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.log.Error("http request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("duration", duration),
			zap.String("trace_id", extractTraceID(traceParent)),
			zap.Error(err))

		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("reading response body",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("trace_id", extractTraceID(traceParent)),
			zap.Error(err))

		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		c.log.Info("request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", duration),
			zap.String("trace_id", extractTraceID(traceParent)))
	}

	if c.config.LogResponses && len(respBody) > 0 {
		c.log.Info("response body",
			zap.String("method", method),
			zap.String("path", path),
			zap.ByteString("body", respBody))
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       respBody,
	}, nil
}

// generateTraceID creates a new W3C trace ID.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}
