package cnam

import "strings"

const redacted = "REDACTED"

// RedactURL replaces the values of the auth_token and account_sid query
// parameters with a placeholder so request URLs can be logged. Parameter order
// and all other values are preserved.
func RedactURL(u string) string {
	base, query, ok := strings.Cut(u, "?")
	if !ok {
		return u
	}
	params := strings.Split(query, "&")
	for i, p := range params {
		key, _, hasValue := strings.Cut(p, "=")
		if hasValue && (key == ParamAuthToken || key == ParamAccountSID) {
			params[i] = key + "=" + redacted
		}
	}
	return base + "?" + strings.Join(params, "&")
}
