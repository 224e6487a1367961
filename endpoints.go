package v2ex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// Token scopes. A regular token cannot be used to create further tokens.
const (
	ScopeEverything = "everything"
	ScopeRegular    = "regular"
)

// Token lifetimes accepted by the API, in seconds.
const (
	Expiration30Days  = 2592000
	Expiration60Days  = 5184000
	Expiration90Days  = 7776000
	Expiration180Days = 15552000
)

const (
	defaultNodeName = "python"
	defaultTopicID  = "1"
)

// Notifications returns the latest notifications. A page below 1 means the
// first page.
func (c *Client) Notifications(ctx context.Context, page int) (Result, error) {
	return c.getJSON(ctx, "notifications", pageParams(page))
}

// DeleteNotification deletes a notification and returns the raw response
// without decoding it. The live API has been observed to accept the request
// without deleting anything, so callers should inspect the response
// themselves.
func (c *Client) DeleteNotification(ctx context.Context, id int) (*resty.Response, error) {
	return c.request(ctx, http.MethodDelete, "notifications/"+strconv.Itoa(id), nil)
}

// Member returns the profile of the token owner.
func (c *Client) Member(ctx context.Context) (Result, error) {
	return c.getJSON(ctx, "member", nil)
}

// Token returns details of the token the client authenticates with.
func (c *Client) Token(ctx context.Context) (Result, error) {
	return c.getJSON(ctx, "token", nil)
}

// CreateToken creates a new personal access token. An empty scope means
// [ScopeEverything] and a zero expiration means [Expiration30Days]. The API
// allows at most 10 tokens per account.
func (c *Client) CreateToken(ctx context.Context, scope string, expiration int) (Result, error) {
	if scope == "" {
		scope = ScopeEverything
	}

	if expiration == 0 {
		expiration = Expiration30Days
	}

	body, err := json.Marshal(struct {
		Scope      string `json:"scope"`
		Expiration int    `json:"expiration"`
	}{scope, expiration})
	if err != nil {
		return nil, fmt.Errorf("failed to encode token request: %w", err)
	}

	return c.postJSON(ctx, "tokens", string(body))
}

// Node returns a node by name. An empty name means "python".
func (c *Client) Node(ctx context.Context, name string) (Result, error) {
	return c.getJSON(ctx, "nodes/"+nodeName(name), nil)
}

// NodeTopics returns one page of topics in a node.
func (c *Client) NodeTopics(ctx context.Context, name string, page int) (Result, error) {
	return c.getJSON(ctx, "nodes/"+nodeName(name)+"/topics", pageParams(page))
}

// Topic returns a topic by ID. An empty ID means "1".
func (c *Client) Topic(ctx context.Context, id string) (Result, error) {
	return c.getJSON(ctx, "topics/"+topicID(id), nil)
}

// TopicReplies returns one page of replies to a topic.
func (c *Client) TopicReplies(ctx context.Context, id string, page int) (Result, error) {
	return c.getJSON(ctx, "topics/"+topicID(id)+"/replies", pageParams(page))
}

func pageParams(page int) Params {
	if page < 1 {
		page = 1
	}

	return Params{"p": page}
}

func nodeName(name string) string {
	if name == "" {
		name = defaultNodeName
	}

	return url.PathEscape(name)
}

func topicID(id string) string {
	if id == "" {
		id = defaultTopicID
	}

	return url.PathEscape(id)
}
