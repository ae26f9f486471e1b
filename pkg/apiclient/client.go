package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/internal"
)

var log = internal.GetLogger()

const DefaultTimeout = 60 * time.Second

// Client is the typed HTTP adapter for the assistant backend. All calls
// attach the bearer token held by Credentials and convert non-2xx responses
// into *APIError. A 401 clears the stored token as a side effect of the
// failed call; no retry is attempted, resubmission is user-driven.
type Client struct {
	baseURL    string
	creds      *Credentials
	httpClient *http.Client
}

func NewClient(baseURL string, creds *Credentials, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		creds:      creds,
		httpClient: newHTTPClient(timeout),
	}
}

// newHTTPClient builds the transport on retryablehttp with retries disabled:
// every operation in the pipeline is a single shot.
func newHTTPClient(timeout time.Duration) *http.Client {
	retryableHTTPClient := retryablehttp.NewClient()
	retryableHTTPClient.RetryMax = 0
	retryableHTTPClient.HTTPClient.Timeout = timeout
	retryableHTTPClient.Logger = internal.NewLeveledLogrus(log)
	return retryableHTTPClient.StandardClient()
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Credentials() *Credentials {
	return c.creds
}

// do performs one JSON round trip and returns the raw response body.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	return c.send(req)
}

// authorize attaches the bearer token, if one is set. The token is read at
// call time; in-flight requests are unaffected by a later Clear.
func (c *Client) authorize(req *http.Request) {
	if c.creds == nil {
		return
	}
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) send(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if resp.StatusCode == http.StatusUnauthorized && c.creds != nil {
			c.creds.Clear()
		}
		return nil, newAPIError(resp.StatusCode, resp.Status, respBody)
	}

	return respBody, nil
}

// Get issues a GET request and decodes the JSON response into T.
func Get[T any](ctx context.Context, c *Client, path string) (T, error) {
	return decode[T](c.do(ctx, http.MethodGet, path, nil))
}

// Post issues a POST request with an optional JSON body.
func Post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return decode[T](c.do(ctx, http.MethodPost, path, body))
}

// Put issues a PUT request with an optional JSON body.
func Put[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return decode[T](c.do(ctx, http.MethodPut, path, body))
}

// Delete issues a DELETE request.
func Delete[T any](ctx context.Context, c *Client, path string) (T, error) {
	return decode[T](c.do(ctx, http.MethodDelete, path, nil))
}

// UploadFile sends content as a multipart form under the "file" field. The
// JSON content type header is omitted; the multipart writer sets its own.
func UploadFile[T any](ctx context.Context, c *Client, path, filename string, content io.Reader) (T, error) {
	var zero T

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return zero, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return zero, fmt.Errorf("writing multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return zero, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return zero, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	return decode[T](c.send(req))
}

func decode[T any](data []byte, err error) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	if len(data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decoding response body: %w", err)
	}
	return out, nil
}
