// Package httpclient builds the shared *req.Client used for OpenCNAM lookups
// and adapts it to cnam.Transport.
package httpclient

import (
	"crypto/x509"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"slices"
	"time"

	"github.com/imroc/req/v3"

	"github.com/tbckr/cnam/internal/cnam"
	"github.com/tbckr/cnam/internal/version"
)

// DefaultUserAgent is the User-Agent sent when no explicit value is configured.
// var (not const) because version.Version is a link-time variable.
var DefaultUserAgent = "cnam/" + version.Version + " (+https://github.com/tbckr/cnam)"

// browserProfile is a TLS client hello preset selectable by name.
type browserProfile struct {
	apply func(*req.Client) *req.Client
	// impersonate is true when apply also sets the browser's User-Agent,
	// HTTP/2 settings and header order.
	impersonate bool
}

var browserProfiles = map[string]browserProfile{
	"chrome":     {apply: (*req.Client).ImpersonateChrome, impersonate: true},
	"firefox":    {apply: (*req.Client).ImpersonateFirefox, impersonate: true},
	"safari":     {apply: (*req.Client).ImpersonateSafari, impersonate: true},
	"edge":       {apply: (*req.Client).SetTLSFingerprintEdge},
	"ios":        {apply: (*req.Client).SetTLSFingerprintIOS},
	"android":    {apply: (*req.Client).SetTLSFingerprintAndroid},
	"randomized": {apply: (*req.Client).SetTLSFingerprintRandomized},
}

// PresetNames returns the browser preset names accepted by --user-agent and
// --tls-fingerprint, sorted. "randomized" is a fingerprint only and is excluded.
func PresetNames() []string {
	names := make([]string, 0, len(browserProfiles))
	for name := range browserProfiles {
		if name != "randomized" {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// profileName picks the TLS profile: an explicit fingerprint wins, otherwise a
// --user-agent that names a preset selects it. "" means Go's own TLS stack.
func profileName(userAgent, tlsFingerprint string) string {
	if tlsFingerprint != "" {
		return tlsFingerprint
	}
	if _, ok := browserProfiles[userAgent]; ok {
		return userAgent
	}
	return ""
}

// Options configures New.
type Options struct {
	// Proxy is an http://, https:// or socks5:// URL. Empty honours the
	// HTTP_PROXY / HTTPS_PROXY / NO_PROXY environment variables.
	Proxy string
	// UserAgent is a custom User-Agent or a browser preset name. Empty uses DefaultUserAgent.
	UserAgent string
	// TLSFingerprint selects a uTLS client hello profile. Empty uses Go's TLS.
	TLSFingerprint string
	// CAFile is a PEM bundle. When set, the client trusts only the certificates
	// in it instead of the system pool.
	CAFile string
	// Timeout bounds each request. Zero means no client-side timeout.
	Timeout time.Duration
	// Logger receives the debug hook output when Debug is true.
	Logger *slog.Logger
	Debug  bool
}

// New builds a *req.Client from opts. The client performs no retries.
// Returns an error if the proxy URL is invalid, the TLS fingerprint is unknown,
// or CAFile cannot be read or holds no certificates.
func New(opts Options) (*req.Client, error) {
	client := req.NewClient()

	impersonating := false
	if name := profileName(opts.UserAgent, opts.TLSFingerprint); name != "" {
		profile, ok := browserProfiles[name]
		if !ok {
			return nil, fmt.Errorf("unknown TLS fingerprint %q", name)
		}
		profile.apply(client)
		impersonating = profile.impersonate
	}

	if _, preset := browserProfiles[opts.UserAgent]; opts.UserAgent != "" && !preset {
		client.SetUserAgent(opts.UserAgent)
	} else if !impersonating {
		client.SetUserAgent(DefaultUserAgent)
	}

	if opts.CAFile != "" {
		pem, err := loadCAFile(opts.CAFile)
		if err != nil {
			return nil, err
		}
		// RootCAs starts nil, so the pool built here replaces the system roots.
		client.SetRootCertFromString(pem)
	}

	if opts.Proxy == "" {
		client.SetProxy(http.ProxyFromEnvironment)
	} else {
		if err := validateProxy(opts.Proxy); err != nil {
			return nil, fmt.Errorf("invalid proxy URL %q: %w", opts.Proxy, err)
		}
		client.SetProxyURL(opts.Proxy)
	}

	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	if opts.Debug && opts.Logger != nil {
		attachDebugHook(client, opts.Logger)
	}

	return client, nil
}

// loadCAFile reads a PEM bundle and checks that it holds at least one certificate.
func loadCAFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading CA file: %w", err)
	}
	if !x509.NewCertPool().AppendCertsFromPEM(data) {
		return "", fmt.Errorf("CA file %q contains no PEM certificates", path)
	}
	return string(data), nil
}

// attachDebugHook registers an OnAfterResponse hook that logs the HTTP method,
// URL (credentials redacted), and status code at DEBUG level, and logs a body
// snippet on non-2xx responses.
func attachDebugHook(client *req.Client, logger *slog.Logger) {
	client.OnAfterResponse(func(_ *req.Client, resp *req.Response) error {
		if resp.Request == nil || resp.Request.RawRequest == nil {
			return nil
		}
		logger.Debug("http response",
			"method", resp.Request.RawRequest.Method,
			"url", cnam.RedactURL(resp.Request.RawRequest.URL.String()),
			"status", resp.StatusCode,
		)
		if resp.Response != nil && !resp.IsSuccessState() {
			logger.Debug("http error body",
				"status", resp.StatusCode,
				"body", snippet(resp.String(), 512),
			)
		}
		return nil
	})
}

// validateProxy checks that proxy parses as a URL with a host and a scheme
// req can dial through.
func validateProxy(proxy string) error {
	u, err := url.Parse(proxy)
	if err != nil {
		return err
	}
	switch u.Scheme {
	case "http", "https", "socks5":
	default:
		return fmt.Errorf("proxy scheme must be http://, https://, or socks5://")
	}
	if u.Host == "" {
		return fmt.Errorf("proxy URL has no host")
	}
	return nil
}

func snippet(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
