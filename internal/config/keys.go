package config

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/tbckr/cnam/internal/cnam"
	"github.com/tbckr/cnam/internal/httpclient"
	"github.com/tbckr/cnam/internal/output"
)

// ErrUnknownKey is returned for config keys cnam does not know.
var ErrUnknownKey = errors.New("unknown config key")

type keyKind int

const (
	kindString keyKind = iota
	kindBool
	kindInt
	kindFloat
	kindDuration
	kindEnum
)

// keyDef describes one config key. The flag name is the key with '_' → '-'.
type keyDef struct {
	name    string
	kind    keyKind
	allowed func() []string
}

func tlsFingerprints() []string {
	return append(httpclient.PresetNames(), "randomized")
}

var keyDefs = []keyDef{
	{name: "verbose", kind: kindBool},
	{name: "output", kind: kindEnum, allowed: output.Formats},
	{name: "format", kind: kindEnum, allowed: cnam.Formats},
	{name: "account_sid", kind: kindString},
	{name: "auth_token", kind: kindString},
	{name: "proxy", kind: kindString},
	{name: "user_agent", kind: kindString},
	{name: "tls_fingerprint", kind: kindEnum, allowed: tlsFingerprints},
	{name: "ca_file", kind: kindString},
	{name: "timeout", kind: kindDuration},
	{name: "concurrency", kind: kindInt},
	{name: "rps", kind: kindFloat},
}

func lookupKey(key string) (keyDef, bool) {
	key = NormalizeKey(key)
	for _, k := range keyDefs {
		if k.name == key {
			return k, true
		}
	}
	return keyDef{}, false
}

// NormalizeKey converts hyphenated flag names to config keys ("auth-token" → "auth_token").
func NormalizeKey(key string) string {
	return strings.ReplaceAll(key, "-", "_")
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// ValidKeys returns every config key in declaration order.
func ValidKeys() []string {
	keys := make([]string, len(keyDefs))
	for i, k := range keyDefs {
		keys[i] = k.name
	}
	return keys
}

// ValidateKey returns ErrUnknownKey if key (or its hyphenated form) is not a config key.
func ValidateKey(key string) error {
	if _, ok := lookupKey(key); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return nil
}

// KeyCompletions returns value candidates for key, or nil for free-form keys.
func KeyCompletions(key string) []string {
	k, ok := lookupKey(key)
	if !ok {
		return nil
	}
	switch k.kind {
	case kindBool:
		return []string{"true", "false"}
	case kindEnum:
		return k.allowed()
	}
	return nil
}

// ParseValue converts value to the type stored in the config file for key.
// Booleans, numbers and durations are validated; enums must be one of their
// allowed values.
func ParseValue(key, value string) (any, error) {
	k, ok := lookupKey(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	switch k.kind {
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a boolean", k.name, value)
		}
		return b, nil
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%s: %q must be a positive integer", k.name, value)
		}
		return n, nil
	case kindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return nil, fmt.Errorf("%s: %q must be a non-negative number", k.name, value)
		}
		return f, nil
	case kindDuration:
		d, err := time.ParseDuration(value)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("%s: %q must be a non-negative duration such as 10s", k.name, value)
		}
		return d.String(), nil
	case kindEnum:
		allowed := k.allowed()
		if !slices.Contains(allowed, value) {
			return nil, fmt.Errorf("%s: %q must be one of %s", k.name, value, strings.Join(allowed, ", "))
		}
		return value, nil
	default:
		return value, nil
	}
}
