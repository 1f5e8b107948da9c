package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the request trace id between vaultctl, the daemon
// and the fill agent.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient embeds *resty.Client so callers keep its full request API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a JSON client bound to baseURL. A trace id stored in
// a request's context under [TraceIDCtxKey] is forwarded in the
// [TraceIDHeader] header.
//
//	client := utils.NewHTTPClient("http://127.0.0.1:7788", 90*time.Second)
//	resp, err := client.R().SetContext(ctx).SetResult(&out).Get("/api/vault/status")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if traceID, ok := GetTraceIDFromContext(r.Context()); ok {
			r.SetHeader(TraceIDHeader, traceID)
		}
		return nil
	})

	return &HTTPClient{Client: client}
}
