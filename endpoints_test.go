package v2ex

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestEndpoints_Requests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		call       func(*Client) (Result, error)
		wantMethod string
		wantPath   string
		wantQuery  string
	}{
		{
			name:       "notifications",
			call:       func(c *Client) (Result, error) { return c.Notifications(context.Background(), 3) },
			wantMethod: http.MethodGet,
			wantPath:   "/api/v2/notifications",
			wantQuery:  "p=3",
		},
		{
			name:       "notifications default page",
			call:       func(c *Client) (Result, error) { return c.Notifications(context.Background(), 0) },
			wantMethod: http.MethodGet,
			wantPath:   "/api/v2/notifications",
			wantQuery:  "p=1",
		},
		{
			name:       "member",
			call:       func(c *Client) (Result, error) { return c.Member(context.Background()) },
			wantMethod: http.MethodGet,
			wantPath:   "/api/v2/member",
		},
		{
			name:       "token",
			call:       func(c *Client) (Result, error) { return c.Token(context.Background()) },
			wantMethod: http.MethodGet,
			wantPath:   "/api/v2/token",
		},
		{
			name:       "tokens",
			call:       func(c *Client) (Result, error) { return c.CreateToken(context.Background(), "", 0) },
			wantMethod: http.MethodPost,
			wantPath:   "/api/v2/tokens",
		},
		{
			name:       "nodes",
			call:       func(c *Client) (Result, error) { return c.Node(context.Background(), "go") },
			wantMethod: http.MethodGet,
			wantPath:   "/api/v2/nodes/go",
		},
		{
			name:       "nodes default name",
			call:       func(c *Client) (Result, error) { return c.Node(context.Background(), "") },
			wantMethod: http.MethodGet,
			wantPath:   "/api/v2/nodes/python",
		},
		{
			name:       "nodes topics",
			call:       func(c *Client) (Result, error) { return c.NodeTopics(context.Background(), "python", 2) },
			wantMethod: http.MethodGet,
			wantPath:   "/api/v2/nodes/python/topics",
			wantQuery:  "p=2",
		},
		{
			name:       "topics",
			call:       func(c *Client) (Result, error) { return c.Topic(context.Background(), "863314") },
			wantMethod: http.MethodGet,
			wantPath:   "/api/v2/topics/863314",
		},
		{
			name:       "topics default id",
			call:       func(c *Client) (Result, error) { return c.Topic(context.Background(), "") },
			wantMethod: http.MethodGet,
			wantPath:   "/api/v2/topics/1",
		},
		{
			name:       "topics replies",
			call:       func(c *Client) (Result, error) { return c.TopicReplies(context.Background(), "1", 1) },
			wantMethod: http.MethodGet,
			wantPath:   "/api/v2/topics/1/replies",
			wantQuery:  "p=1",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server, captured := newRecordingServer(t, http.StatusOK, `{"success": true, "result": []}`)
			client := New("my-token", WithBaseURL(server.URL+"/api/v2"))

			result, err := tt.call(client)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result["success"] != true {
				t.Errorf("expected success=true, got %v", result["success"])
			}

			got := captured.snapshot()

			if got.method != tt.wantMethod {
				t.Errorf("expected method=%s, got %s", tt.wantMethod, got.method)
			}

			if got.path != tt.wantPath {
				t.Errorf("expected path=%s, got %s", tt.wantPath, got.path)
			}

			if got.rawQuery != tt.wantQuery {
				t.Errorf("expected query=%q, got %q", tt.wantQuery, got.rawQuery)
			}

			if got.auth != "Bearer my-token" {
				t.Errorf("expected 'Bearer my-token', got %s", got.auth)
			}
		})
	}
}

func TestCreateToken_Body(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		scope          string
		expiration     int
		wantScope      string
		wantExpiration float64
	}{
		{"explicit", ScopeEverything, Expiration30Days, "everything", 2592000},
		{"defaults", "", 0, "everything", 2592000},
		{"regular 180 days", ScopeRegular, Expiration180Days, "regular", 15552000},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server, captured := newRecordingServer(t, http.StatusOK,
				`{"success": true, "result": {"token": "your new token"}}`)
			client := New("my-token", WithBaseURL(server.URL))

			result, err := client.CreateToken(context.Background(), tt.scope, tt.expiration)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := captured.snapshot()

			var body map[string]any
			if err := json.Unmarshal(got.body, &body); err != nil {
				t.Fatalf("failed to parse request body %q: %v", got.body, err)
			}

			if len(body) != 2 {
				t.Errorf("expected exactly scope and expiration, got %v", body)
			}

			if body["scope"] != tt.wantScope {
				t.Errorf("expected scope=%s, got %v", tt.wantScope, body["scope"])
			}

			if body["expiration"] != tt.wantExpiration {
				t.Errorf("expected expiration=%v, got %v", tt.wantExpiration, body["expiration"])
			}

			if got.contentType != "application/json" {
				t.Errorf("expected Content-Type=application/json, got %s", got.contentType)
			}

			nested, ok := result["result"].(map[string]any)
			if !ok || nested["token"] != "your new token" {
				t.Errorf("unexpected result: %v", result)
			}
		})
	}
}

func TestCreateToken_BodyIsExactJSON(t *testing.T) {
	t.Parallel()

	server, captured := newRecordingServer(t, http.StatusOK, `{"success": true}`)
	client := New("my-token", WithBaseURL(server.URL))

	if _, err := client.CreateToken(context.Background(), "everything", 2592000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"scope":"everything","expiration":2592000}`
	if got := string(captured.snapshot().body); got != want {
		t.Errorf("expected body %s, got %s", want, got)
	}
}

func TestDeleteNotification(t *testing.T) {
	t.Parallel()

	server, captured := newRecordingServer(t, http.StatusForbidden, `not json at all`)

	var out bytes.Buffer

	client := New("my-token", WithBaseURL(server.URL), WithDebug(true), WithDebugOutput(&out))

	resp, err := client.DeleteNotification(context.Background(), 17452804)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.StatusCode() != http.StatusForbidden {
		t.Errorf("expected status=403, got %d", resp.StatusCode())
	}

	if resp.String() != "not json at all" {
		t.Errorf("expected raw body, got %q", resp.String())
	}

	got := captured.snapshot()

	if got.method != http.MethodDelete {
		t.Errorf("expected method=DELETE, got %s", got.method)
	}

	if got.path != "/notifications/17452804" {
		t.Errorf("expected path=/notifications/17452804, got %s", got.path)
	}

	if got.rawQuery != "" {
		t.Errorf("expected no query, got %q", got.rawQuery)
	}

	if len(got.body) != 0 {
		t.Errorf("expected no body, got %q", got.body)
	}

	if out.Len() != 0 {
		t.Errorf("expected no debug output for undecoded response, got %q", out.String())
	}
}

func TestEndpoints_DebugEmission(t *testing.T) {
	t.Parallel()

	const response = `{"success": true, "message": "Node details found"}`

	calls := map[string]func(*Client) (Result, error){
		"notifications":  func(c *Client) (Result, error) { return c.Notifications(context.Background(), 1) },
		"member":         func(c *Client) (Result, error) { return c.Member(context.Background()) },
		"token":          func(c *Client) (Result, error) { return c.Token(context.Background()) },
		"tokens":         func(c *Client) (Result, error) { return c.CreateToken(context.Background(), "", 0) },
		"nodes":          func(c *Client) (Result, error) { return c.Node(context.Background(), "python") },
		"nodes topics":   func(c *Client) (Result, error) { return c.NodeTopics(context.Background(), "python", 1) },
		"topics":         func(c *Client) (Result, error) { return c.Topic(context.Background(), "1") },
		"topics replies": func(c *Client) (Result, error) { return c.TopicReplies(context.Background(), "1", 1) },
	}

	for name, call := range calls {
		name, call := name, call
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server, _ := newRecordingServer(t, http.StatusOK, response)

			var enabled, disabled bytes.Buffer

			if _, err := call(New("my-token", WithBaseURL(server.URL), WithDebug(true), WithDebugOutput(&enabled))); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if _, err := call(New("my-token", WithBaseURL(server.URL), WithDebugOutput(&disabled))); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if enabled.String() != response+"\n" {
				t.Errorf("expected raw response on debug output, got %q", enabled.String())
			}

			if disabled.Len() != 0 {
				t.Errorf("expected no debug output, got %q", disabled.String())
			}
		})
	}
}

func TestEndpoints_MalformedResponse(t *testing.T) {
	t.Parallel()

	server, _ := newRecordingServer(t, http.StatusBadGateway, "<html>502 Bad Gateway</html>")
	client := New("my-token", WithBaseURL(server.URL))

	result, err := client.Topic(context.Background(), "1")

	if err == nil {
		t.Fatalf("expected decode error, got %v", result)
	}

	if !strings.Contains(err.Error(), "failed to decode response") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNodeName_Escaped(t *testing.T) {
	t.Parallel()

	if got := nodeName("a/b"); got != "a%2Fb" {
		t.Errorf("expected a%%2Fb, got %s", got)
	}

	if got := topicID(""); got != "1" {
		t.Errorf("expected 1, got %s", got)
	}
}

func TestPageParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    int
		expected int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{42, 42},
	}

	for _, tt := range tests {
		if got := pageParams(tt.input)["p"]; got != tt.expected {
			t.Errorf("pageParams(%d): expected p=%d, got %v", tt.input, tt.expected, got)
		}
	}
}
