package httpclient

import (
	"github.com/imroc/req/v3"

	"github.com/tbckr/cnam/internal/ratelimit"
)

// AttachRateLimit gates every outbound request on the client through limiter.
// The wait honours the request context. No retry policy is configured: a
// throttled or failed request is reported to the caller as-is.
func AttachRateLimit(client *req.Client, limiter *ratelimit.Limiter) {
	client.OnBeforeRequest(func(_ *req.Client, r *req.Request) error {
		return limiter.Wait(r.Context())
	})
}
