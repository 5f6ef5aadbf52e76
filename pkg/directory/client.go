// Package directory talks to the external people / organisation / tag search.
package directory

import (
	"Suivi/config"
	"Suivi/types"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

const maxBodySize = 4 << 20

var ErrNotConfigured = errors.New("directory base url not configured")

// Client issues lookups against the directory and normalizes the records it returns.
type Client struct {
	baseURL          string
	apiKey           string
	personPath       string
	organisationPath string
	tagPath          string
	queryParam       string
	resultsPath      string
	http             *http.Client
}

func NewClient(cfg *config.Config) *Client {
	d := cfg.Directory
	return &Client{
		baseURL:          strings.TrimRight(d.BaseURL, "/"),
		apiKey:           d.APIKey,
		personPath:       d.PersonPath,
		organisationPath: d.OrganisationPath,
		tagPath:          d.TagPath,
		queryParam:       d.QueryParam,
		resultsPath:      d.ResultsPath,
		// zero Timeout keeps the transport default
		http: &http.Client{Timeout: d.Timeout},
	}
}

// SearchPerson 按姓名搜索人员
func (c *Client) SearchPerson(ctx context.Context, rawName string) ([]types.DirectoryMatch, error) {
	return c.search(ctx, c.personPath, rawName)
}

// SearchOrganisationByExternalID 按外部ID搜索组织
func (c *Client) SearchOrganisationByExternalID(ctx context.Context, id string) ([]types.DirectoryMatch, error) {
	return c.search(ctx, c.organisationPath, id)
}

// SearchTag 搜索职能标签
func (c *Client) SearchTag(ctx context.Context, tag string) ([]types.DirectoryMatch, error) {
	return c.search(ctx, c.tagPath, tag)
}

func (c *Client) search(ctx context.Context, path, query string) ([]types.DirectoryMatch, error) {
	if c.baseURL == "" {
		return nil, ErrNotConfigured
	}
	endpoint := c.baseURL + path + "?" + url.Values{c.queryParam: {query}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build directory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read directory response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}
	return ParseMatches(body, c.resultsPath)
}

// ParseMatches reads the result array at resultsPath ("" or "@this" for a bare array).
// Records keep the order the directory returned them in.
func ParseMatches(body []byte, resultsPath string) ([]types.DirectoryMatch, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("directory response is not valid json")
	}
	var results gjson.Result
	if resultsPath == "" || resultsPath == "@this" {
		results = gjson.ParseBytes(body)
	} else {
		results = gjson.GetBytes(body, resultsPath)
	}
	if !results.Exists() || results.Type == gjson.Null {
		return []types.DirectoryMatch{}, nil
	}
	if !results.IsArray() {
		return nil, fmt.Errorf("directory results at %q is not an array", resultsPath)
	}

	items := results.Array()
	matches := make([]types.DirectoryMatch, 0, len(items))
	for _, item := range items {
		matches = append(matches, types.DirectoryMatch{
			ID:        firstOf(item, "id", "key"),
			FirstName: firstOf(item, "firstName", "first_name"),
			LastName:  firstOf(item, "lastName", "last_name"),
			Name:      firstOf(item, "name", "label"),
			Tag:       firstOf(item, "tag"),
		})
	}
	return matches, nil
}

func firstOf(item gjson.Result, keys ...string) string {
	for _, k := range keys {
		if v := item.Get(k); v.Exists() && v.Type != gjson.Null {
			if s := strings.TrimSpace(v.String()); s != "" {
				return s
			}
		}
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
