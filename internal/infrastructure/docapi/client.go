package docapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the document-processing API used for text extraction,
// PDF/DOCX conversion and download-time watermarking. The artifacts
// themselves live in object storage; only URLs cross this boundary.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

type Config struct {
	BaseURL   string        `mapstructure:"base_url" json:"base_url"`
	APIKey    string        `mapstructure:"api_key" json:"api_key"`
	Timeout   time.Duration `mapstructure:"timeout" json:"timeout"`
	MaxBodyMB int64         `mapstructure:"max_body_mb" json:"max_body_mb"`
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("docapi.NewClient: base_url is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Extract returns the plain text of the document at fileURL.
func (c *Client) Extract(ctx context.Context, fileURL string) (string, error) {
	var resp struct {
		Text string `json:"text"`
	}
	if err := c.post(ctx, "/v1/extract", map[string]string{"url": fileURL}, &resp); err != nil {
		return "", fmt.Errorf("docapi.Client.Extract: %w", err)
	}

	return resp.Text, nil
}

// Convert produces a copy of the document in the target format ("pdf" or "docx")
// and returns the URL of the converted artifact.
func (c *Client) Convert(ctx context.Context, fileURL, targetFormat string) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	req := map[string]string{"url": fileURL, "target": targetFormat}
	if err := c.post(ctx, "/v1/convert", req, &resp); err != nil {
		return "", fmt.Errorf("docapi.Client.Convert: %w", err)
	}

	return resp.URL, nil
}

// Watermark renders the document with the given stamp metadata and returns
// the bytes. The result is never persisted; it is produced per download.
func (c *Client) Watermark(ctx context.Context, fileURL string, metadata map[string]string, role string) ([]byte, error) {
	payload := map[string]any{"url": fileURL, "metadata": metadata, "role": role}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("docapi.Client.Watermark: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/watermark", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("docapi.Client.Watermark: %w", err)
	}
	c.setHeaders(httpReq)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("docapi.Client.Watermark: %w", err)
	}
	defer httpResp.Body.Close() //nolint:errcheck

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("docapi.Client.Watermark: unexpected status %d", httpResp.StatusCode)
	}

	out, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("docapi.Client.Watermark: %w", err)
	}

	return out, nil
}

func (c *Client) post(ctx context.Context, path string, req any, resp any) error {
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.setHeaders(httpReq)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close() //nolint:errcheck

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", httpResp.StatusCode)
	}

	return json.NewDecoder(httpResp.Body).Decode(resp)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
