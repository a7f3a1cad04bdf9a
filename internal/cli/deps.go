package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/imroc/req/v3"
	"github.com/spf13/cobra"

	"github.com/tbckr/cnam/internal/apperr"
	"github.com/tbckr/cnam/internal/cnam"
	"github.com/tbckr/cnam/internal/config"
	"github.com/tbckr/cnam/internal/httpclient"
	"github.com/tbckr/cnam/internal/output"
	"github.com/tbckr/cnam/internal/ratelimit"
)

// deps holds fully-resolved runtime dependencies for a subcommand.
type deps struct {
	logger *slog.Logger
	cfg    *config.Config
	format cnam.Format
	output output.Format

	clientHook func(*req.Client)
}

// load resolves config, logger, API format and output format.
func (d *deps) load(cmd *cobra.Command, stderr io.Writer) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.Concurrency < 1 {
		return fmt.Errorf("%w: --concurrency must be at least 1, got %d", apperr.ErrInvalidInput, cfg.Concurrency)
	}
	if cfg.RPS < 0 {
		return fmt.Errorf("%w: --rps must not be negative, got %g", apperr.ErrInvalidInput, cfg.RPS)
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("%w: --timeout must not be negative, got %s", apperr.ErrInvalidInput, cfg.Timeout)
	}

	outFormat, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return fmt.Errorf("%w: %w", apperr.ErrInvalidInput, err)
	}
	apiFormat, err := cnam.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	d.cfg = cfg
	d.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	d.format = apiFormat
	d.output = outFormat
	return nil
}

// newTransport creates the HTTP client shared by every lookup of one command
// run, gated by the configured rate limit.
func (d *deps) newTransport() (*httpclient.Transport, error) {
	client, err := httpclient.New(httpclient.Options{
		Proxy:          d.cfg.Proxy,
		UserAgent:      d.cfg.UserAgent,
		TLSFingerprint: d.cfg.TLSFingerprint,
		CAFile:         d.cfg.CAFile,
		Timeout:        d.cfg.Timeout,
		Logger:         d.logger,
		Debug:          d.cfg.Verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("creating HTTP client: %w", err)
	}
	httpclient.AttachRateLimit(client, ratelimit.New(d.cfg.RPS, d.cfg.Concurrency))
	if d.clientHook != nil {
		d.clientHook(client)
	}
	return httpclient.NewTransport(client), nil
}

// newRequest returns a request carrying the configured format and credentials.
func (d *deps) newRequest(transport cnam.Transport) (*cnam.Request, error) {
	r := cnam.NewRequest(transport, d.logger)
	if err := r.SetFormat(d.format); err != nil {
		return nil, err
	}
	r.SetAccountSID(d.cfg.AccountSID)
	r.SetAuthToken(d.cfg.AuthToken)
	return r, nil
}

// writeResult formats and writes a result to stdout.
func writeResult(stdout io.Writer, d *deps, result any) error {
	if err := output.Write(stdout, d.output, result); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
