package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tbckr/cnam/internal/cnam"
	"github.com/tbckr/cnam/internal/cnam/response"
	"github.com/tbckr/cnam/internal/worker"
)

func newLookupCmd(d *deps) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:     "lookup [number...]",
		Aliases: []string{"l"},
		Short:   "Look up the caller name for one or more phone numbers",
		GroupID: "lookup",
		Long: `Look up the caller ID name (CNAM) for North American phone numbers.

Each number is normalized to its rightmost ten digits. The response is requested
in --format (text, json or xml), decoded, and rendered with --output.
Use --raw to print the response body exactly as the API returned it.

Multiple numbers can be supplied as arguments or piped via stdin (one per line,
blank lines and lines starting with # are ignored). Lookups run concurrently
(see --concurrency) and are throttled by --rps.`,
		Example: `  # Single lookup
  cnam lookup 3392033301

  # Punctuation and country code are ignored
  cnam lookup "+1 (339) 203-3301"

  # Paid tier, XML response body as returned by the API
  cnam lookup --account-sid AC... --auth-token ... --format xml --raw 3392033301

  # Bulk input from stdin, JSON output
  cat numbers.txt | cnam lookup --output json`,
		Args: cobra.ArbitraryArgs,
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := resolveInputs(cmd, args)
			if err != nil {
				return err
			}
			transport, err := d.newTransport()
			if err != nil {
				return err
			}
			return runLookups(cmd.Context(), cmd.OutOrStdout(), d, transport, inputs, raw)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the response body unmodified instead of decoding it")
	return cmd
}

// runLookups executes one request per input and writes the successful results.
// For bulk input every failure is logged and the returned error reports how
// many failed; a single failed lookup returns its error.
func runLookups(ctx context.Context, w io.Writer, d *deps, transport cnam.Transport, inputs []string, raw bool) error {
	results := worker.Run(ctx, inputs, d.cfg.Concurrency, func(ctx context.Context, input string) (*response.Result, error) {
		return lookupOne(ctx, d, transport, input, raw)
	})

	var (
		found   []*response.Result
		lastErr error
	)
	for _, r := range results {
		if r.Err != nil {
			if len(inputs) > 1 {
				d.logger.Error("lookup failed", "input", r.Input, "error", r.Err)
			}
			lastErr = r.Err
			continue
		}
		found = append(found, r.Output)
	}

	if err := writeLookups(w, d, found, raw, len(inputs) == 1); err != nil {
		return err
	}

	switch failed := len(inputs) - len(found); {
	case failed == 0:
		return nil
	case len(inputs) == 1:
		return fmt.Errorf("lookup %s: %w", inputs[0], lastErr)
	default:
		return fmt.Errorf("%d of %d lookups failed", failed, len(inputs))
	}
}

func lookupOne(ctx context.Context, d *deps, transport cnam.Transport, input string, raw bool) (*response.Result, error) {
	req, err := d.newRequest(transport)
	if err != nil {
		return nil, err
	}
	if err := req.SetPhoneNumber(input); err != nil {
		return nil, err
	}
	body, err := req.Execute(ctx)
	if err != nil {
		return nil, err
	}
	if raw {
		return &response.Result{Number: req.PhoneNumber(), Format: req.Format(), Raw: body}, nil
	}
	result, err := response.Parse(req.Format(), req.PhoneNumber(), body)
	if err != nil {
		return nil, err
	}
	if result.IsEmpty() {
		d.logger.Info("no caller name on record", "number", req.PhoneNumber())
	}
	return result, nil
}

func writeLookups(w io.Writer, d *deps, found []*response.Result, raw, single bool) error {
	if raw {
		for _, r := range found {
			body := r.Raw
			if !strings.HasSuffix(body, "\n") {
				body += "\n"
			}
			if _, err := io.WriteString(w, body); err != nil {
				return err
			}
		}
		return nil
	}
	if len(found) == 0 {
		return nil
	}
	if single {
		return writeResult(w, d, found[0])
	}
	return writeResult(w, d, &response.MultiResult{Results: found})
}
