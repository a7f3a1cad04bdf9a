package httpclient

import (
	"context"
	"fmt"

	"github.com/imroc/req/v3"

	"github.com/tbckr/cnam/internal/apperr"
	"github.com/tbckr/cnam/internal/cnam"
)

// Transport adapts a *req.Client to cnam.Transport.
type Transport struct {
	client *req.Client
}

var _ cnam.Transport = (*Transport)(nil)

// NewTransport wraps client. The client is shared, not owned.
func NewTransport(client *req.Client) *Transport {
	return &Transport{client: client}
}

// Get performs one GET request and returns the body as a string.
//
// Connection, TLS and context errors are returned wrapping both
// apperr.ErrRequestFailed and the original error. A non-2xx status is
// reported as apperr.ErrRequestFailed with the status and a body snippet.
func (t *Transport) Get(ctx context.Context, url string) (string, error) {
	resp, err := t.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperr.ErrRequestFailed, err)
	}
	if resp.Response == nil {
		return "", fmt.Errorf("%w: no response", apperr.ErrRequestFailed)
	}
	if !resp.IsSuccessState() {
		return "", fmt.Errorf("%w: HTTP %d: %q", apperr.ErrRequestFailed, resp.StatusCode, snippet(resp.String(), 200))
	}
	return resp.String(), nil
}
