package cnam_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbckr/cnam/internal/apperr"
	"github.com/tbckr/cnam/internal/cnam"
	"github.com/tbckr/cnam/internal/testutil"
)

const (
	number = "3392033301"
	name   = "MASSACHUSETTS"
)

func newRequest(t *testing.T, transport cnam.Transport) *cnam.Request {
	t.Helper()
	r := cnam.NewRequest(transport, testutil.NopLogger())
	require.NoError(t, r.SetPhoneNumber(number))
	return r
}

func TestNewRequest_Defaults(t *testing.T) {
	r := cnam.NewRequest(&testutil.StubTransport{}, nil)
	assert.Equal(t, cnam.FormatText, r.Format())
	assert.Empty(t, r.PhoneNumber())
	assert.Empty(t, r.AccountSID())
	assert.Empty(t, r.AuthToken())
}

// ---------- SetPhoneNumber ----------

func TestSetPhoneNumber_Normalizes(t *testing.T) {
	r := cnam.NewRequest(&testutil.StubTransport{}, nil)

	for _, raw := range []string{number, "1" + number, "--1--*(*&basdjasjcjasca" + number} {
		require.NoError(t, r.SetPhoneNumber(raw))
		assert.Equal(t, number, r.PhoneNumber(), "raw=%q", raw)
	}
}

func TestSetPhoneNumber_TooShortKeepsPrevious(t *testing.T) {
	r := newRequest(t, &testutil.StubTransport{})

	err := r.SetPhoneNumber("411")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Equal(t, number, r.PhoneNumber())
}

// ---------- SetFormat ----------

func TestSetFormat_Valid(t *testing.T) {
	r := newRequest(t, &testutil.StubTransport{})
	for _, f := range []cnam.Format{cnam.FormatJSON, cnam.FormatXML, cnam.FormatText} {
		require.NoError(t, r.SetFormat(f))
		assert.Equal(t, f, r.Format())
	}
}

func TestSetFormat_InvalidKeepsPrevious(t *testing.T) {
	r := newRequest(t, &testutil.StubTransport{})
	require.NoError(t, r.SetFormat(cnam.FormatJSON))

	for _, bad := range []cnam.Format{"", "TEXT", "yaml", "json "} {
		err := r.SetFormat(bad)
		require.Error(t, err, "format %q should be rejected", bad)
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
		assert.Equal(t, cnam.FormatJSON, r.Format())
	}
}

// ---------- URL ----------

func TestURL(t *testing.T) {
	tests := []struct {
		name   string
		format cnam.Format
		token  string
		sid    string
		want   string
	}{
		{
			name: "default format, no credentials",
			want: "https://api.opencnam.com/v2/phone/3392033301?format=text",
		},
		{
			name:   "json",
			format: cnam.FormatJSON,
			want:   "https://api.opencnam.com/v2/phone/3392033301?format=json",
		},
		{
			name:  "auth token only",
			token: "tok123",
			want:  "https://api.opencnam.com/v2/phone/3392033301?format=text&auth_token=tok123",
		},
		{
			name: "account sid only",
			sid:  "AC42",
			want: "https://api.opencnam.com/v2/phone/3392033301?format=text&account_sid=AC42",
		},
		{
			name:   "both credentials in fixed order",
			format: cnam.FormatXML,
			token:  "tok123",
			sid:    "AC42",
			want:   "https://api.opencnam.com/v2/phone/3392033301?format=xml&auth_token=tok123&account_sid=AC42",
		},
		{
			name:  "values passed through unencoded",
			token: "a b+c",
			want:  "https://api.opencnam.com/v2/phone/3392033301?format=text&auth_token=a b+c",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newRequest(t, &testutil.StubTransport{})
			if tc.format != "" {
				require.NoError(t, r.SetFormat(tc.format))
			}
			r.SetAuthToken(tc.token)
			r.SetAccountSID(tc.sid)

			got := r.URL()
			assert.Equal(t, tc.want, got)
			assert.True(t, strings.HasPrefix(got, cnam.BaseURL+number+"?format="))
		})
	}
}

func TestURL_RecomputedAfterReconfigure(t *testing.T) {
	r := newRequest(t, &testutil.StubTransport{})
	r.SetAuthToken("tok")
	r.SetAccountSID("sid")
	require.Contains(t, r.URL(), "auth_token=tok")

	r.SetAuthToken("")
	r.SetAccountSID("")
	require.NoError(t, r.SetPhoneNumber("6175551234"))
	assert.Equal(t, "https://api.opencnam.com/v2/phone/6175551234?format=text", r.URL())
}

// ---------- Execute ----------

func TestExecute_Text(t *testing.T) {
	transport := &testutil.StubTransport{Body: name + "\n"}
	r := newRequest(t, transport)

	body, err := r.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, name+"\n", body, "body must be returned unmodified")
	assert.Equal(t, name, strings.TrimSpace(body))
	assert.Equal(t, []string{"https://api.opencnam.com/v2/phone/3392033301?format=text"}, transport.URLs())
}

func TestExecute_LeadingCountryCode(t *testing.T) {
	transport := &testutil.StubTransport{Body: name}
	r := cnam.NewRequest(transport, testutil.NopLogger())
	require.NoError(t, r.SetPhoneNumber("1"+number))

	body, err := r.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, name, body)
	assert.Equal(t, []string{cnam.BaseURL + number + "?format=text"}, transport.URLs())
}

func TestExecute_OneCallPerInvocation(t *testing.T) {
	transport := &testutil.StubTransport{Body: name}
	r := newRequest(t, transport)

	for range 3 {
		_, err := r.Execute(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 3, transport.Calls())

	urls := transport.URLs()
	assert.Equal(t, urls[0], urls[1])
	assert.Equal(t, urls[1], urls[2])
}

func TestExecute_TransportErrorUnmodified(t *testing.T) {
	connErr := errors.New("connection refused")
	transport := &testutil.StubTransport{Err: connErr}
	r := newRequest(t, transport)

	body, err := r.Execute(context.Background())
	require.Error(t, err)
	assert.Same(t, connErr, err)
	assert.Empty(t, body)
	assert.Equal(t, 1, transport.Calls(), "failed call must not be retried")
}

func TestExecute_NoPhoneNumber(t *testing.T) {
	transport := &testutil.StubTransport{Body: name}
	r := cnam.NewRequest(transport, nil)

	_, err := r.Execute(context.Background())
	require.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Zero(t, transport.Calls())
}

func TestExecute_PassesContext(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "marker")

	var seen any
	transport := &testutil.StubTransport{GetFn: func(ctx context.Context, _ string) (string, error) {
		seen = ctx.Value(ctxKey{})
		return name, nil
	}}
	_, err := newRequest(t, transport).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, "marker", seen)
}

func TestExecute_DebugLogRedactsCredentials(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := cnam.NewRequest(&testutil.StubTransport{Body: name}, logger)
	require.NoError(t, r.SetPhoneNumber(number))
	r.SetAuthToken("s3cret")
	r.SetAccountSID("AC42")

	_, err := r.Execute(context.Background())
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "cnam request")
	assert.Contains(t, out, "auth_token=REDACTED")
	assert.NotContains(t, out, "s3cret")
	assert.NotContains(t, out, "AC42")
}

// ---------- RedactURL ----------

func TestRedactURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{
			"https://api.opencnam.com/v2/phone/3392033301?format=text",
			"https://api.opencnam.com/v2/phone/3392033301?format=text",
		},
		{
			"https://api.opencnam.com/v2/phone/3392033301?format=json&auth_token=t&account_sid=s",
			"https://api.opencnam.com/v2/phone/3392033301?format=json&auth_token=REDACTED&account_sid=REDACTED",
		},
		{"https://example.com/no-query", "https://example.com/no-query"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, cnam.RedactURL(tc.in))
	}
}
