package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
	"time"

	nexuserrors "nexus/cli/internal/errors"
)

// requestTimeout bounds every backend call; the session layer adds no retries.
const requestTimeout = 5 * time.Second

// HTTP implements API over REST endpoints.
// Bearer attachment happens per dispatched request via the token source, so a
// token change between requests is always picked up.
type HTTP struct {
	// baseURL is the base URL for all HTTP requests (e.g., "https://api.nexus.app")
	baseURL string
	// endpoints contains the URL paths for the API endpoints
	endpoints Endpoints
	// tokens yields the current bearer token, empty when unauthenticated
	tokens TokenSource
	// client is the underlying HTTP client with configured timeout
	client *http.Client
}

// newHTTP creates a new HTTP client with the given base URL and endpoints.
func newHTTP(baseURL string, endpoints Endpoints, tokens TokenSource) *HTTP {
	if tokens == nil {
		tokens = func() string { return "" }
	}
	return &HTTP{
		baseURL:   strings.TrimRight(baseURL, "/"),
		endpoints: endpoints,
		tokens:    tokens,
		client:    &http.Client{Timeout: requestTimeout},
	}
}

// attachAuth sets the Authorization header from the current token, if any.
// It reads the token source at call time, never a captured value.
func (h *HTTP) attachAuth(req *http.Request) {
	if token := h.tokens(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// newRequest builds a request against a path with standard headers applied.
func (h *HTTP) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "nexus-cli/1.0")
	h.attachAuth(req)
	return req, nil
}

// do dispatches the request and maps failures to the typed taxonomy:
// transport failures become network_unreachable, 401/403 auth_rejected,
// 400/422 validation_failed. The caller owns the returned body.
func (h *HTTP) do(req *http.Request) (*http.Response, error) {
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, nexuserrors.Wrap(nexuserrors.NetworkUnreachable, "no response from backend", err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()
	excerpt := readExcerpt(resp.Body)
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, nexuserrors.New(nexuserrors.AuthRejected, fmt.Sprintf("backend returned %d", resp.StatusCode))
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return nil, nexuserrors.New(nexuserrors.Validation, excerpt)
	default:
		return nil, fmt.Errorf("%s %s failed: %d %s", req.Method, req.URL.Path, resp.StatusCode, excerpt)
	}
}

// doJSON dispatches the request and decodes a JSON response into out.
// Pass nil to discard the response body.
func (h *HTTP) doJSON(req *http.Request, out any) error {
	resp, err := h.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}

// postJSON marshals body and POSTs it to path.
func (h *HTTP) postJSON(ctx context.Context, path string, body any, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := h.newRequest(ctx, http.MethodPost, path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return h.doJSON(req, out)
}

// readExcerpt returns a short, trimmed slice of an error response body.
func readExcerpt(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 512))
	return strings.TrimSpace(string(b))
}

// multipartBody assembles a multipart payload with optional text fields and
// one optional file part named "file", matching the backend's interceptor.
func multipartBody(fields map[string]string, filename string, file io.Reader) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	if file != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="file"; filename="%s"`, filepath.Base(filename)))
		header.Set("Content-Type", imageContentType(filename))
		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, file); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// imageContentType guesses an image MIME type from the filename extension.
func imageContentType(filename string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		return ct
	}
	return "image/jpeg"
}
