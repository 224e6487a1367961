package v2ex

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// DefaultBaseURL is the public V2EX API v2 gateway.
const DefaultBaseURL = "https://www.v2ex.com/api/v2/"

type Option func(*Options)

type Options struct {
	baseURL        string
	debug          bool
	debugOutput    io.Writer
	requestLogger  RequestLogger
	requestHeaders map[string]string
	httpClient     *http.Client
}

func newClientOptions() *Options {
	return &Options{
		baseURL:       DefaultBaseURL,
		debugOutput:   os.Stderr,
		requestLogger: &NoopLogger{},
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

// WithBaseURL overrides the API gateway. A trailing slash is appended when
// missing so that endpoint paths can be concatenated onto it.
func WithBaseURL(baseURL string) Option {
	return func(o *Options) {
		baseURL = strings.TrimSpace(baseURL)

		if baseURL == "" {
			return
		}

		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}

		o.baseURL = baseURL
	}
}

// WithDebug makes the client write every raw GET/POST response body to the
// debug output before it is decoded.
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.debug = debug
	}
}

// WithDebugOutput sets where raw response bodies go when debug is enabled.
// The default is os.Stderr.
func WithDebugOutput(w io.Writer) Option {
	return func(o *Options) {
		if w != nil {
			o.debugOutput = w
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || isProtectedHeader(header) {
			return
		}

		o.requestHeaders[header] = value
	}
}

func WithUserAgent(userAgent string) Option {
	return func(o *Options) {
		userAgent = strings.TrimSpace(userAgent)

		if userAgent != "" {
			o.requestHeaders["User-Agent"] = userAgent
		}
	}
}

// WithHTTPClient supplies the underlying *http.Client, e.g. to set a timeout
// or a proxy. The client is wrapped by resty and must not be nil.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *Options) {
		if httpClient != nil {
			o.httpClient = httpClient
		}
	}
}

// Validate checks the options. It is called once, before the first request.
func (o *Options) Validate() error {
	if o.baseURL == "" {
		return errors.New("baseURL must be set")
	}

	u, err := url.Parse(o.baseURL)
	if err != nil {
		return fmt.Errorf("baseURL is invalid: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("baseURL scheme must be http or https, got %q", u.Scheme)
	}

	if u.Host == "" {
		return errors.New("baseURL must include a host")
	}

	if o.debugOutput == nil {
		return errors.New("debugOutput must not be nil")
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	return nil
}

func isProtectedHeader(header string) bool {
	for _, h := range []string{"Content-Type", "Accept", "Authorization"} {
		if strings.EqualFold(header, h) {
			return true
		}
	}

	return false
}
