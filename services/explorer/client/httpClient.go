package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("client")

// httpClient performs single HTTP calls against the Data360 API with a bounded
// timeout. No retries happen at this layer; retry policy, if any, belongs to
// callers.
type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a new HTTP client adapter with the provided base URL
// and request timeout
func NewHTTPClient(baseURL string, timeout time.Duration) *httpClient {
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get issues one GET request and returns the response body on a 2xx status
func (hc *httpClient) Get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	endpoint := hc.baseURL + path
	if len(params) > 0 {
		endpoint = endpoint + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return hc.do(req)
}

// PostJSON issues one POST request with a JSON body and returns the response
// body on a 2xx status
func (hc *httpClient) PostJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hc.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return hc.do(req)
}

func (hc *httpClient) do(req *http.Request) ([]byte, error) {
	resp, err := hc.client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Debug("request rejected", "url", req.URL.String(), "status", resp.StatusCode)
		return nil, &HTTPStatusError{
			Status: resp.StatusCode,
			Body:   string(body),
		}
	}

	return body, nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (hc *httpClient) IsInterfaceNil() bool {
	return hc == nil
}
