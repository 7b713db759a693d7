package recordstore

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

	"github.com/samandr77/microservices/backoffice/internal/entity"
	"github.com/samandr77/microservices/backoffice/pkg/transport"
)

type operation string

const (
	opFind   operation = "Find"
	opAdd    operation = "Add"
	opEdit   operation = "Edit"
	opDelete operation = "Delete"
)

type Config struct {
	BaseURL   string
	AppID     string
	AccessKey string
	Locale    string
	Timezone  string
	Timeout   time.Duration
}

type Client struct {
	client *http.Client
	cfg    Config
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Second * 15
	}

	return &Client{
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
		cfg: cfg,
	}
}

// All selects every row of a table.
func All() string {
	return ""
}

// Where builds a selector matching rows whose field equals value.
func Where(name entity.Name, field, value string) string {
	value = strings.ReplaceAll(value, `"`, `\"`)
	return fmt.Sprintf(`Filter(%s, [%s] = "%s")`, name, field, value)
}

type actionRequest struct {
	Action     operation       `json:"Action"`
	Properties properties      `json:"Properties"`
	Rows       []entity.Record `json:"Rows"`
}

type properties struct {
	Locale   string `json:"Locale,omitempty"`
	Timezone string `json:"Timezone,omitempty"`
	Selector string `json:"Selector,omitempty"`
}

type rowsEnvelope struct {
	Rows []entity.Record `json:"Rows"`
}

// Find returns the rows matched by selector. The selector is passed through
// to the store as is.
func (c *Client) Find(ctx context.Context, name entity.Name, selector string) ([]entity.Record, error) {
	body, err := c.do(ctx, name, actionRequest{
		Action: opFind,
		Properties: properties{
			Locale:   c.cfg.Locale,
			Timezone: c.cfg.Timezone,
			Selector: selector,
		},
		Rows: []entity.Record{},
	})
	if err != nil {
		return nil, err
	}

	return decodeRows(body)
}

func (c *Client) Add(ctx context.Context, name entity.Name, rows ...entity.Record) error {
	return c.mutate(ctx, name, opAdd, rows)
}

func (c *Client) Edit(ctx context.Context, name entity.Name, rows ...entity.Record) error {
	return c.mutate(ctx, name, opEdit, rows)
}

// Delete removes rows by key; every key record carries only the key column.
func (c *Client) Delete(ctx context.Context, name entity.Name, keys ...entity.Record) error {
	return c.mutate(ctx, name, opDelete, keys)
}

func (c *Client) mutate(ctx context.Context, name entity.Name, op operation, rows []entity.Record) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: no rows for %s", entity.ErrInvalidArgument, op)
	}

	_, err := c.do(ctx, name, actionRequest{
		Action: op,
		Properties: properties{
			Locale:   c.cfg.Locale,
			Timezone: c.cfg.Timezone,
		},
		Rows: rows,
	})

	return err
}

func (c *Client) do(ctx context.Context, name entity.Name, payload actionRequest) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request in JSON: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.actionURL(name), bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if c.cfg.AccessKey != "" {
		req.Header.Set("ApplicationAccessKey", c.cfg.AccessKey)
	}

	if token, err := entity.TokenFromContext(ctx); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: send request: %w", entity.ErrRemote, payload.Action, name, err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: read response: %w", entity.ErrRemote, payload.Action, name, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s %s: unexpected code %d", entity.ErrRemote, payload.Action, name, resp.StatusCode)
	}

	return body, nil
}

func (c *Client) actionURL(name entity.Name) string {
	base := strings.TrimRight(c.cfg.BaseURL, "/")
	if c.cfg.AppID != "" {
		base += "/apps/" + url.PathEscape(c.cfg.AppID)
	}

	return fmt.Sprintf("%s/tables/%s/Action", base, url.PathEscape(string(name)))
}

// decodeRows accepts a bare array, a {"Rows": [...]} envelope or an empty body.
func decodeRows(body []byte) ([]entity.Record, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return []entity.Record{}, nil
	}

	if body[0] == '{' {
		var env rowsEnvelope

		err := json.Unmarshal(body, &env)
		if err != nil {
			return nil, fmt.Errorf("%w: decode response: %w", entity.ErrRemote, err)
		}

		if env.Rows == nil {
			return []entity.Record{}, nil
		}

		return env.Rows, nil
	}

	var rows []entity.Record

	err := json.Unmarshal(body, &rows)
	if err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", entity.ErrRemote, err)
	}

	if rows == nil {
		rows = []entity.Record{}
	}

	return rows, nil
}
