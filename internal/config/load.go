package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tbckr/cnam/internal/appdir"
)

// EnvPrefix is prepended to upper-cased keys to form environment variable names
// (CNAM_AUTH_TOKEN, CNAM_FORMAT, ...).
const EnvPrefix = "CNAM"

// DefaultConfigPath returns <UserConfigDir>/cnam/config.yaml.
func DefaultConfigPath() (string, error) {
	dir, err := appdir.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// RegisterFlags adds the persistent config flags to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file (default: <user config dir>/cnam/config.yaml)")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.StringP("output", "o", DefaultOutput, "output format: table, json, plain")
	flags.StringP("format", "f", DefaultFormat, "response format requested from OpenCNAM: text, json, xml")
	flags.String("account-sid", "", "OpenCNAM account SID (paid tier)")
	flags.String("auth-token", "", "OpenCNAM auth token (paid tier)")
	flags.String("proxy", "", "proxy URL (http://, https://, socks5://)")
	flags.String("user-agent", "", "custom User-Agent or browser preset (chrome, firefox, safari, ...)")
	flags.String("tls-fingerprint", "", "TLS client hello profile (chrome, firefox, safari, edge, ios, android, randomized)")
	flags.String("ca-file", "", "PEM bundle to trust instead of the system CA store")
	flags.Duration("timeout", DefaultTimeout, "per-request timeout (0 disables)")
	flags.IntP("concurrency", "c", DefaultConcurrency, "number of parallel lookups for bulk input")
	flags.Float64("rps", DefaultRPS, "maximum requests per second across all lookups (0 = unlimited)")
}

// Load resolves the configuration. The config file is created (empty, 0600)
// if it does not exist yet.
func Load(flags *pflag.FlagSet) (*Config, error) {
	cfgFile, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	if cfgFile == "" {
		if cfgFile, err = DefaultConfigPath(); err != nil {
			return nil, err
		}
	}
	if err := appdir.EnsureFile(cfgFile); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(cfgFile)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, k := range keyDefs {
		if err := v.BindPFlag(k.name, flags.Lookup(flagName(k.name))); err != nil {
			return nil, fmt.Errorf("binding flag for %q: %w", k.name, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return &Config{
		ConfigFile:     cfgFile,
		Verbose:        v.GetBool("verbose"),
		Output:         v.GetString("output"),
		Format:         v.GetString("format"),
		AccountSID:     v.GetString("account_sid"),
		AuthToken:      v.GetString("auth_token"),
		Proxy:          v.GetString("proxy"),
		UserAgent:      v.GetString("user_agent"),
		TLSFingerprint: v.GetString("tls_fingerprint"),
		CAFile:         v.GetString("ca_file"),
		Timeout:        v.GetDuration("timeout"),
		Concurrency:    v.GetInt("concurrency"),
		RPS:            v.GetFloat64("rps"),
	}, nil
}
