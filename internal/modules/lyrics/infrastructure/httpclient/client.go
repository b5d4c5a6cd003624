package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
)

const maxBodyBytes = 1 << 20

var (
	ErrUnexpectedStatus = errors.New("lyrics provider returned unexpected status")
	ErrUnexpectedBody   = errors.New("lyrics provider returned unexpected body")
)

// Client calls the lyrics provider's GET /lyrics endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for baseURL. A nil httpClient uses http.DefaultClient;
// deadlines come from the caller's context.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

type lyricsBody struct {
	Lyrics string `json:"lyrics"`
}

// Fetch returns the lyrics the provider reports for track. The body may be
// an object with a lyrics field or a bare JSON string.
func (c *Client) Fetch(ctx context.Context, track string) (string, error) {
	endpoint := c.baseURL + "/lyrics"
	if track != "" {
		endpoint += "?" + url.Values{"track": {track}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build lyrics request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("lyrics request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read lyrics body: %w", err)
	}
	return decode(raw)
}

func decode(raw []byte) (string, error) {
	var obj lyricsBody
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Lyrics != "" {
		return obj.Lyrics, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	return "", ErrUnexpectedBody
}
