// Package backend is the shared caller for the HTTP backends the ad
// workflows depend on. It sends one authenticated request, decodes the
// response and reports non-2xx answers as *APIError. It never retries.
package backend

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"
)

// Auth decorates an outgoing request with credentials.
type Auth interface {
	Apply(req *http.Request)
}

type bearerAuth struct {
	token string
}

// BearerAuth sends "Authorization: Bearer <token>".
func BearerAuth(token string) Auth {
	return bearerAuth{token: token}
}

func (a bearerAuth) Apply(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+a.token)
}

type basicAuth struct {
	username string
	password string
}

// BasicAuth sends "Authorization: Basic base64(username:password)".
func BasicAuth(username, password string) Auth {
	return basicAuth{username: username, password: password}
}

func (a basicAuth) Apply(req *http.Request) {
	digest := base64.StdEncoding.EncodeToString([]byte(a.username + ":" + a.password))
	req.Header.Set("Authorization", "Basic "+digest)
}

// APIError is returned when a backend answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend error (status %d): %s", e.StatusCode, e.Body)
}

// IsAPIError reports whether err wraps an *APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

type Client struct {
	auth       Auth
	httpClient *http.Client
}

func NewClient(auth Auth, timeout time.Duration) *Client {
	return &Client{
		auth: auth,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// PostJSON marshals payload, posts it to url and decodes a 2xx body into out.
// out may be nil when the caller does not need the body.
func (c *Client) PostJSON(ctx context.Context, url string, payload any, out any) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// FormFile is one file part of a multipart request.
type FormFile struct {
	Field       string
	FileName    string
	ContentType string
	Data        []byte
}

// PostMultipart posts a multipart/form-data body made of the given fields
// and file, and decodes a 2xx body into out.
func (c *Client) PostMultipart(ctx context.Context, url string, fields map[string]string, file *FormFile, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write field %s: %w", name, err)
		}
	}

	if file != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.FileName))
		contentType := file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return fmt.Errorf("failed to write form file: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req, out)
}

// Download is a fetched body and the content type the server reported.
type Download struct {
	Data        []byte
	ContentType string
}

// Get fetches url and returns the raw body. The content type falls back to
// sniffing when the server does not send one.
func (c *Client) Get(ctx context.Context, url string) (*Download, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	body, header, err := c.send(req)
	if err != nil {
		return nil, err
	}

	contentType := header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}
	return &Download{Data: body, ContentType: contentType}, nil
}

func (c *Client) do(req *http.Request, out any) error {
	body, _, err := c.send(req)
	if err != nil {
		return err
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) send(req *http.Request) ([]byte, http.Header, error) {
	if c.auth != nil {
		c.auth.Apply(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Message:    errorMessage(body),
		}
	}
	return body, resp.Header, nil
}

// errorMessage extracts a human readable message from the common backend
// error envelopes: {"message"}, {"error":{"message"}} and {"error":"..."}.
func errorMessage(body []byte) string {
	var envelope struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	if len(envelope.Error) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(envelope.Error, &text); err == nil {
		return text
	}
	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(envelope.Error, &nested); err == nil {
		return nested.Message
	}
	return ""
}
