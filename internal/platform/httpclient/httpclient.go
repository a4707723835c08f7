package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second

	maxBody = 1 << 20
)

var ErrNilClient = errors.New("httpclient: nil client")

// Client habla JSON contra un único servicio (BaseURL).
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// New valida baseURL y arma el client. timeout <= 0 usa DefaultTimeout.
// tr puede ser nil (http.DefaultTransport); en tests se pasa el del httptest.Server.
func New(baseURL string, timeout time.Duration, tr http.RoundTripper) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	u, err := url.ParseRequestURI(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url: unsupported scheme %q", u.Scheme)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout, Transport: tr},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// StatusOf devuelve el status de un *HTTPError envuelto, o 0.
func StatusOf(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}

// DoJSON manda in (si no es nil) como JSON y decodifica la respuesta en out (si no es nil).
// path es relativo a BaseURL y puede traer query.
func (c *Client) DoJSON(ctx context.Context, method, path string, in, out any) error {
	if c == nil || c.HTTP == nil {
		return ErrNilClient
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path), body)
	if err != nil {
		return fmt.Errorf("httpclient: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

func (c *Client) resolve(path string) string {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.BaseURL + path
}
