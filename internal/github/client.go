// Package github lists and fetches script templates from a GitHub
// repository through the contents API. Anonymous requests work for public
// repositories; a token raises the rate limit and unlocks private ones.
package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	defaultBaseURL = "https://api.github.com"
	apiVersion     = "2022-11-28"
)

// Template describes one template file in the repository.
type Template struct {
	Name        string
	Path        string
	Size        int64
	DownloadURL string
}

// ClientConfig holds the settings for a template repository client.
type ClientConfig struct {
	Repo    string // owner/name
	Dir     string // directory inside the repo that holds templates
	Ref     string // branch, tag, or commit; empty means the default branch
	Token   string // optional, sent as a Bearer token
	BaseURL string // overridden in tests
	Timeout time.Duration
}

// Client talks to the GitHub contents API.
type Client struct {
	config ClientConfig
	client *http.Client
}

// NewClient creates a Client for the given repository.
func NewClient(cfg ClientConfig) (*Client, error) {
	if !strings.Contains(cfg.Repo, "/") {
		return nil, fmt.Errorf("template repo %q must be owner/name", cfg.Repo)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}

	return &Client{
		config: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

// ListTemplates returns the template files in the configured directory, in
// the order the API lists them. Only files ending in .sh or .tmpl count.
func (c *Client) ListTemplates(ctx context.Context) ([]Template, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/contents/%s", c.config.BaseURL, c.config.Repo, c.config.Dir)
	if c.config.Ref != "" {
		endpoint += "?ref=" + url.QueryEscape(c.config.Ref)
	}

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("contents API returned invalid JSON")
	}

	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		// The contents API returns an object when the path is a single file.
		return nil, fmt.Errorf("%s in %s is not a directory", c.config.Dir, c.config.Repo)
	}

	var templates []Template
	root.ForEach(func(_, item gjson.Result) bool {
		if item.Get("type").String() != "file" {
			return true
		}
		name := item.Get("name").String()
		if !isTemplateName(name) {
			return true
		}
		templates = append(templates, Template{
			Name:        name,
			Path:        item.Get("path").String(),
			Size:        item.Get("size").Int(),
			DownloadURL: item.Get("download_url").String(),
		})
		return true
	})

	return templates, nil
}

// Fetch downloads the template's content.
func (c *Client) Fetch(ctx context.Context, tmpl Template) ([]byte, error) {
	if tmpl.DownloadURL == "" {
		return nil, fmt.Errorf("template %s has no download URL", tmpl.Name)
	}
	return c.get(ctx, tmpl.DownloadURL)
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp, body)
	}

	return body, nil
}

func apiError(resp *http.Response, body []byte) error {
	message := gjson.GetBytes(body, "message").String()
	if message == "" {
		message = fmt.Sprintf("status %d", resp.StatusCode)
	}
	if resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0" {
		return fmt.Errorf("GitHub API rate limit exceeded: %s (set GITHUB_TOKEN to raise the limit)", message)
	}
	return fmt.Errorf("GitHub API error: %s", message)
}

func isTemplateName(name string) bool {
	return strings.HasSuffix(name, ".sh") || strings.HasSuffix(name, ".tmpl")
}
