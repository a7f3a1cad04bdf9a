// Package config resolves cnam settings from flags, environment variables
// (prefix CNAM_) and the YAML config file, in that order of precedence.
package config

import "time"

// Config is the fully-resolved runtime configuration.
type Config struct {
	// ConfigFile is the path of the YAML file that was read.
	ConfigFile string

	Verbose bool
	// Output is how results are rendered: table, json, plain.
	Output string
	// Format is the response format requested from the API: text, json, xml.
	Format string

	// AccountSID and AuthToken are the paid-tier credentials. Empty means unset.
	AccountSID string
	AuthToken  string

	Proxy          string
	UserAgent      string
	TLSFingerprint string
	// CAFile is a PEM bundle that replaces the system trust store when set.
	CAFile  string
	Timeout time.Duration

	// Concurrency is the number of parallel lookups for bulk input.
	Concurrency int
	// RPS caps outbound requests per second across all workers; 0 is unlimited.
	RPS float64
}

// Defaults used when neither flag, environment nor config file set a value.
const (
	DefaultOutput      = "table"
	DefaultFormat      = "text"
	DefaultTimeout     = 10 * time.Second
	DefaultConcurrency = 4
	DefaultRPS         = 0.0
)
