// Package ucclient implements a read-only client for the Unity Catalog
// workspace metadata API (/api/2.1/unity-catalog). It resolves credentials
// from explicit configuration, environment variables, or a named profile,
// and maps API failures onto the domain error taxonomy.
package ucclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"uchygiene/internal/domain"
)

const (
	apiPrefix       = "/api/2.1/unity-catalog"
	defaultTimeout  = 30 * time.Second
	defaultPageSize = 1000
)

// Config holds client construction options. Host and Token are resolved with
// precedence: explicit field > environment > named profile.
type Config struct {
	Host    string // workspace URL, e.g. https://myworkspace.cloud.databricks.com
	Token   string // personal access token
	Profile string // named profile in the user config file

	// HTTPClient overrides the default client (30s timeout). Used by tests.
	HTTPClient *http.Client

	// MaxPageSize sets the max_results query parameter on list calls.
	// Zero means the default of 1000.
	MaxPageSize int

	// RPS throttles outbound requests to the workspace API. Zero disables
	// the limiter.
	RPS float64
}

// Client talks to one workspace. It performs no caching and no retries;
// every call reflects current remote state.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client

	limiter  *rate.Limiter
	pageSize int
}

// Compile-time port check.
var _ domain.MetadataReader = (*Client)(nil)

// New resolves credentials and returns a Client. It fails with an
// AuthenticationError when no host/token pair resolves from the config,
// the DATABRICKS_HOST/DATABRICKS_TOKEN environment, or the profile file.
func New(cfg Config) (*Client, error) {
	host := cfg.Host
	token := cfg.Token

	if host == "" {
		host = os.Getenv("DATABRICKS_HOST")
	}
	if token == "" {
		token = os.Getenv("DATABRICKS_TOKEN")
	}

	if host == "" || token == "" {
		uc, err := LoadUserConfig()
		if err == nil {
			p := uc.ActiveProfile(cfg.Profile)
			if host == "" {
				host = p.Host
			}
			if token == "" {
				token = p.Token
			}
		} else if cfg.Profile != "" {
			return nil, domain.ErrAuthentication("profile %q requested but no config file could be read: %v", cfg.Profile, err)
		}
	}

	if host == "" {
		return nil, domain.ErrAuthentication("no workspace host resolved: set --host, DATABRICKS_HOST, or a profile")
	}
	if token == "" {
		return nil, domain.ErrAuthentication("no token resolved for %s: set --token, DATABRICKS_TOKEN, or a profile", host)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}

	pageSize := cfg.MaxPageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	c := &Client{
		BaseURL:    strings.TrimRight(host, "/"),
		Token:      token,
		HTTPClient: hc,
		pageSize:   pageSize,
	}
	if cfg.RPS > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RPS), 1)
	}
	return c, nil
}

// apiError is the workspace API error body.
type apiError struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

// Do issues a request against the metadata API. The path is relative to the
// unity-catalog API prefix. The caller owns the response body.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, domain.ErrTransport(err, "%s %s", method, path)
		}
	}

	u := c.BaseURL + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, domain.ErrTransport(err, "build %s %s", method, path)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, domain.ErrTransport(err, "%s %s", method, path)
	}
	return resp, nil
}

// getJSON performs a GET, checks the status code, and decodes the body.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	resp, err := c.Do(ctx, http.MethodGet, path, query)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.ErrTransport(err, "read GET %s", path)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, path, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return domain.ErrTransport(err, "parse GET %s", path)
	}
	return nil
}

// statusError maps a non-2xx response onto the domain error taxonomy.
func statusError(status int, path string, body []byte) error {
	msg := string(bytes.TrimSpace(body))
	var ae apiError
	if err := json.Unmarshal(body, &ae); err == nil && ae.Message != "" {
		msg = ae.Message
		if ae.ErrorCode != "" {
			msg = ae.ErrorCode + ": " + ae.Message
		}
	}

	switch status {
	case http.StatusNotFound:
		return domain.ErrNotFound("%s", msg)
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrAuthentication("%s", msg)
	default:
		return domain.ErrTransport(nil, "GET %s: HTTP %d: %s", path, status, msg)
	}
}

// Wire representations. The API reports timestamps as millisecond epochs.

type catalogJSON struct {
	Name      string `json:"name"`
	Comment   string `json:"comment"`
	Owner     string `json:"owner"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

type schemaJSON struct {
	Name        string `json:"name"`
	CatalogName string `json:"catalog_name"`
	Comment     string `json:"comment"`
	Owner       string `json:"owner"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

type columnJSON struct {
	Name     string `json:"name"`
	TypeName string `json:"type_name"`
	Position int    `json:"position"`
	Comment  string `json:"comment"`
}

type tableJSON struct {
	Name        string       `json:"name"`
	CatalogName string       `json:"catalog_name"`
	SchemaName  string       `json:"schema_name"`
	TableType   string       `json:"table_type"`
	Comment     string       `json:"comment"`
	Owner       string       `json:"owner"`
	Columns     []columnJSON `json:"columns"`
	CreatedAt   int64        `json:"created_at"`
	UpdatedAt   int64        `json:"updated_at"`
}

func millis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

func (j catalogJSON) toDomain() domain.CatalogInfo {
	return domain.CatalogInfo{
		Name:      j.Name,
		Comment:   j.Comment,
		Owner:     j.Owner,
		CreatedAt: millis(j.CreatedAt),
		UpdatedAt: millis(j.UpdatedAt),
	}
}

func (j schemaJSON) toDomain() domain.SchemaInfo {
	return domain.SchemaInfo{
		Name:        j.Name,
		CatalogName: j.CatalogName,
		Comment:     j.Comment,
		Owner:       j.Owner,
		CreatedAt:   millis(j.CreatedAt),
		UpdatedAt:   millis(j.UpdatedAt),
	}
}

func (j tableJSON) toDomain() domain.TableInfo {
	t := domain.TableInfo{
		Name:        j.Name,
		CatalogName: j.CatalogName,
		SchemaName:  j.SchemaName,
		TableType:   j.TableType,
		Comment:     j.Comment,
		Owner:       j.Owner,
		CreatedAt:   millis(j.CreatedAt),
		UpdatedAt:   millis(j.UpdatedAt),
	}
	for _, col := range j.Columns {
		t.Columns = append(t.Columns, domain.ColumnInfo{
			Name:     col.Name,
			TypeName: col.TypeName,
			Position: col.Position,
			Comment:  col.Comment,
		})
	}
	return t
}

// listPages walks a paginated list endpoint, calling decode on each page body.
// decode must return the next page token.
func (c *Client) listPages(ctx context.Context, path string, query url.Values, decode func(body []byte) (string, error)) error {
	pageToken := ""
	for {
		q := url.Values{}
		for k, vs := range query {
			q[k] = vs
		}
		q.Set("max_results", strconv.Itoa(c.pageSize))
		if pageToken != "" {
			q.Set("page_token", pageToken)
		}

		var raw json.RawMessage
		if err := c.getJSON(ctx, path, q, &raw); err != nil {
			return err
		}
		next, err := decode(raw)
		if err != nil {
			return domain.ErrTransport(err, "parse GET %s", path)
		}
		if next == "" {
			return nil
		}
		pageToken = next
	}
}

// ListCatalogs returns all catalogs visible to the caller.
func (c *Client) ListCatalogs(ctx context.Context) ([]domain.CatalogInfo, error) {
	var out []domain.CatalogInfo
	err := c.listPages(ctx, "/catalogs", nil, func(body []byte) (string, error) {
		var page struct {
			Catalogs      []catalogJSON `json:"catalogs"`
			NextPageToken string        `json:"next_page_token"`
		}
		if err := json.Unmarshal(body, &page); err != nil {
			return "", err
		}
		for _, cj := range page.Catalogs {
			out = append(out, cj.toDomain())
		}
		return page.NextPageToken, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListSchemas returns the schemas of a catalog.
func (c *Client) ListSchemas(ctx context.Context, catalogName string) ([]domain.SchemaInfo, error) {
	q := url.Values{}
	q.Set("catalog_name", catalogName)

	var out []domain.SchemaInfo
	err := c.listPages(ctx, "/schemas", q, func(body []byte) (string, error) {
		var page struct {
			Schemas       []schemaJSON `json:"schemas"`
			NextPageToken string       `json:"next_page_token"`
		}
		if err := json.Unmarshal(body, &page); err != nil {
			return "", err
		}
		for _, sj := range page.Schemas {
			out = append(out, sj.toDomain())
		}
		return page.NextPageToken, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListTables returns the tables of a schema, including column metadata.
func (c *Client) ListTables(ctx context.Context, catalogName, schemaName string) ([]domain.TableInfo, error) {
	q := url.Values{}
	q.Set("catalog_name", catalogName)
	q.Set("schema_name", schemaName)

	var out []domain.TableInfo
	err := c.listPages(ctx, "/tables", q, func(body []byte) (string, error) {
		var page struct {
			Tables        []tableJSON `json:"tables"`
			NextPageToken string      `json:"next_page_token"`
		}
		if err := json.Unmarshal(body, &page); err != nil {
			return "", err
		}
		for _, tj := range page.Tables {
			out = append(out, tj.toDomain())
		}
		return page.NextPageToken, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetTable returns full detail for a three-part table name.
func (c *Client) GetTable(ctx context.Context, fullName string) (*domain.TableInfo, error) {
	if strings.Count(fullName, ".") != 2 {
		return nil, domain.ErrValidation("invalid table name %q: expected catalog.schema.table", fullName)
	}
	var tj tableJSON
	if err := c.getJSON(ctx, "/tables/"+url.PathEscape(fullName), nil, &tj); err != nil {
		return nil, err
	}
	t := tj.toDomain()
	return &t, nil
}

// ValidateHost checks that a workspace host URL is well formed.
func ValidateHost(host string) error {
	host = strings.TrimSpace(host)
	if host == "" {
		return fmt.Errorf("invalid host %q: host URL cannot be empty", host)
	}
	u, err := url.Parse(host)
	if err != nil {
		return fmt.Errorf("invalid host %q: %w", host, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid host %q: scheme must be http or https", host)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid host %q: missing host", host)
	}
	if u.Path != "" && u.Path != "/" {
		return fmt.Errorf("invalid host %q: host must not include a path", host)
	}
	return nil
}
