package cnam

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tbckr/cnam/internal/apperr"
)

// BaseURL is the OpenCNAM phone endpoint. The trailing slash is required:
// the normalized number is appended directly.
const BaseURL = "https://api.opencnam.com/v2/phone/"

// Query parameter names, in the order they are appended to the URL.
const (
	ParamFormat     = "format"
	ParamAuthToken  = "auth_token"
	ParamAccountSID = "account_sid"
)

// Transport performs a single HTTP GET and returns the response body.
// TLS trust, proxying, timeouts and status-code policy all belong to the
// implementation; *httpclient.Transport is the production one.
type Transport interface {
	Get(ctx context.Context, url string) (string, error)
}

// Request is a reusable OpenCNAM lookup.
//
// A Request is not safe for concurrent mutation while Execute runs. Callers
// doing concurrent lookups use one Request per goroutine over a shared Transport.
type Request struct {
	transport Transport
	logger    *slog.Logger

	phoneNumber string
	format      Format
	accountSID  string
	authToken   string
}

// NewRequest creates a Request bound to transport. The format defaults to text.
// A nil logger discards debug output.
func NewRequest(transport Transport, logger *slog.Logger) *Request {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Request{transport: transport, logger: logger, format: DefaultFormat}
}

// SetPhoneNumber normalizes raw (see NormalizePhoneNumber) and stores the result.
// On error the previously stored number is kept.
func (r *Request) SetPhoneNumber(raw string) error {
	number, err := NormalizePhoneNumber(raw)
	if err != nil {
		return err
	}
	r.phoneNumber = number
	return nil
}

// SetFormat sets the response format. Values other than FormatText, FormatJSON
// and FormatXML are rejected and the stored format is kept.
func (r *Request) SetFormat(f Format) error {
	if !f.Valid() {
		return fmt.Errorf("%w: unknown format %q: must be one of text, json, xml", apperr.ErrInvalidInput, string(f))
	}
	r.format = f
	return nil
}

// SetAccountSID sets the account identifier for paid-tier access.
// An empty value omits the account_sid parameter.
func (r *Request) SetAccountSID(sid string) { r.accountSID = sid }

// SetAuthToken sets the API auth token for paid-tier access.
// An empty value omits the auth_token parameter.
func (r *Request) SetAuthToken(token string) { r.authToken = token }

// PhoneNumber returns the stored 10-digit number, or "" if none was set.
func (r *Request) PhoneNumber() string { return r.phoneNumber }

// Format returns the stored response format.
func (r *Request) Format() Format { return r.format }

// AccountSID returns the stored account identifier.
func (r *Request) AccountSID() string { return r.accountSID }

// AuthToken returns the stored auth token.
func (r *Request) AuthToken() string { return r.authToken }

// URL builds the request URL from the current state:
//
//	<BaseURL><number>?format=<format>[&auth_token=<token>][&account_sid=<sid>]
//
// Credential values are appended verbatim, without URL encoding.
func (r *Request) URL() string {
	var b strings.Builder
	b.WriteString(BaseURL)
	b.WriteString(r.phoneNumber)
	b.WriteString("?" + ParamFormat + "=")
	b.WriteString(string(r.format))
	if r.authToken != "" {
		b.WriteString("&" + ParamAuthToken + "=")
		b.WriteString(r.authToken)
	}
	if r.accountSID != "" {
		b.WriteString("&" + ParamAccountSID + "=")
		b.WriteString(r.accountSID)
	}
	return b.String()
}

// Execute performs exactly one GET through the bound Transport and returns the
// response body unmodified. Transport errors are returned as-is; there are no
// retries and no caching. Execute fails without a network call when no phone
// number has been set.
func (r *Request) Execute(ctx context.Context) (string, error) {
	if r.phoneNumber == "" {
		return "", fmt.Errorf("%w: phone number not set", apperr.ErrInvalidInput)
	}
	u := r.URL()
	r.logger.Debug("cnam request", "method", "GET", "url", RedactURL(u))
	body, err := r.transport.Get(ctx, u)
	if err != nil {
		return "", err
	}
	return body, nil
}
