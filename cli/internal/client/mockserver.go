package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// EnvelopePath is where SDKs POST envelopes for project 1.
const EnvelopePath = "/api/1/envelope/"

type MockServerClient struct {
	baseURL string
	client  *http.Client
}

func NewMockServerClient(baseURL string) *MockServerClient {
	return &MockServerClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SendEnvelope POSTs raw as an envelope. When gzipped is set the body is
// already compressed and is labelled accordingly.
func (c *MockServerClient) SendEnvelope(ctx context.Context, raw []byte, gzipped bool) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+EnvelopePath, bytes.NewReader(raw))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/x-sentry-envelope")
	if gzipped {
		req.Header.Set("Content-Encoding", "gzip")
	}

	return c.do(req, "send envelope")
}

// Stop asks the server to shut down.
func (c *MockServerClient) Stop(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/STOP", nil)
	if err != nil {
		return err
	}
	return c.do(req, "stop server")
}

func (c *MockServerClient) do(req *http.Request, action string) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s failed with status %d", action, resp.StatusCode)
	}

	return nil
}
