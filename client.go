package v2ex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-resty/resty/v2"
)

// Result is a decoded JSON response body.
type Result = map[string]any

// Client is a V2EX API v2 client. It is safe for concurrent use; its
// configuration does not change after [New] returns.
type Client struct {
	token   string
	options *Options

	initOnce sync.Once
	initErr  error
	client   *resty.Client
}

// New creates a client authenticating with the given personal access token.
// Neither the token nor the options are checked here; problems are reported
// by the first request.
func New(token string, opts ...Option) *Client {
	options := newClientOptions()

	for _, o := range opts {
		o(options)
	}

	return &Client{
		token:   token,
		options: options,
	}
}

// BaseURL returns the gateway the client sends requests to.
func (c *Client) BaseURL() string {
	return c.options.baseURL
}

func (c *Client) restClient() (*resty.Client, error) {
	c.initOnce.Do(func() {
		if err := c.options.Validate(); err != nil {
			c.initErr = fmt.Errorf("invalid options: %w", err)
			return
		}

		var client *resty.Client
		if c.options.httpClient != nil {
			client = resty.NewWithClient(c.options.httpClient)
		} else {
			client = resty.New()
		}

		c.client = client.SetLogger(c.options.requestLogger)
	})

	return c.client, c.initErr
}

// request sends one request to baseURL+path and returns the raw response.
// For GET the params must be nil or [Params] and are sent as the query
// string. For POST they are sent verbatim as the body, so callers pass an
// already serialized string. DELETE sends no parameters.
//
// The status code is not inspected.
func (c *Client) request(ctx context.Context, method, path string, params any) (*resty.Response, error) {
	if c == nil {
		return nil, errors.New("v2ex client is nil")
	}

	client, err := c.restClient()
	if err != nil {
		return nil, err
	}

	req := client.R().
		SetContext(ctx).
		SetHeaders(c.options.requestHeaders).
		SetHeader("Authorization", "Bearer "+c.token)

	switch method {
	case http.MethodGet:
		if err := setQuery(req, params); err != nil {
			return nil, err
		}
	case http.MethodPost:
		if params != nil {
			req.SetBody(params)
		}
	case http.MethodDelete:
	default:
		return nil, fmt.Errorf("unsupported method %s", method)
	}

	url := c.options.baseURL + path

	resp, err := req.Execute(method, url)
	if err != nil {
		c.options.requestLogger.Errorf("%s %s failed: %v", method, url, err)
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}

	c.options.requestLogger.Debugf("%s %s -> %d", method, url, resp.StatusCode())

	return resp, nil
}

func setQuery(req *resty.Request, params any) error {
	switch p := params.(type) {
	case nil:
		return nil
	case Params:
		values, err := p.Values()
		if err != nil {
			return err
		}

		req.SetQueryParamsFromValues(values)

		return nil
	default:
		return fmt.Errorf("GET params must be Params, got %T", params)
	}
}

// decodeJSON decodes a response body. With debug enabled the raw text is
// written to the debug output first.
func (c *Client) decodeJSON(body []byte) (Result, error) {
	if c.options.debug {
		_, _ = fmt.Fprintln(c.options.debugOutput, string(body))
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params Params) (Result, error) {
	var p any
	if params != nil {
		p = params
	}

	resp, err := c.request(ctx, http.MethodGet, path, p)
	if err != nil {
		return nil, err
	}

	return c.decodeJSON(resp.Body())
}

func (c *Client) postJSON(ctx context.Context, path, body string) (Result, error) {
	resp, err := c.request(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}

	return c.decodeJSON(resp.Body())
}
