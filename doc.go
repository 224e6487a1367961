// Package v2ex provides an HTTP client for the V2EX API v2.
//
// The client wraps [github.com/go-resty/resty/v2], authenticates every
// request with a personal access token and returns response bodies decoded
// into generic JSON maps.
//
// # Basic Usage
//
//	c := v2ex.New("xxxxxxxx-xxxxxxxx-xxxxxxx-xxxxxxxx")
//
//	topics, err := c.NodeTopics(ctx, "python", 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(topics["result"])
//
// Tokens are created at https://www.v2ex.com/settings/tokens.
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained; the
// options are validated when the first request is sent, and a validation
// failure is returned by every request.
//
// # Responses
//
// The HTTP status code is not inspected. A vendor error payload such as
// {"success": false, "message": "..."} is decoded and returned like any other
// body, so callers check the "success" field themselves. Errors are returned
// only for transport failures and bodies that are not a JSON object.
//
// [Client.DeleteNotification] is the exception: it returns the raw
// [resty.Response] undecoded.
//
// # Debugging
//
// With [WithDebug] enabled every raw GET/POST response body is written to
// the debug output (os.Stderr unless [WithDebugOutput] is used) before it
// is decoded.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library. The default [NoopLogger] discards
// all log output.
package v2ex
