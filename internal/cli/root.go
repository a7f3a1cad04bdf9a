// Package cli provides the Cobra command tree and output wiring for cnam.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/imroc/req/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tbckr/cnam/internal/config"
	"github.com/tbckr/cnam/internal/version"
	"github.com/tbckr/cnam/internal/worker"
)

type rootOption func(*deps)

// withClientHook runs fn on every HTTP client before it is wrapped in a transport.
func withClientHook(fn func(*req.Client)) rootOption {
	return func(d *deps) { d.clientHook = fn }
}

// newRootCmd builds the top-level Cobra command for cnam.
// Callers must set stdout/stderr via cmd.SetOut / cmd.SetErr before Execute.
func newRootCmd(opts ...rootOption) *cobra.Command {
	// d is populated by PersistentPreRunE before any subcommand's RunE runs.
	// Cobra only executes the innermost PersistentPreRunE, so subcommands must
	// not define their own unless they do not need d (see completion).
	d := &deps{}
	for _, opt := range opts {
		opt(d)
	}

	cmd := &cobra.Command{
		Use:   "cnam",
		Short: "Caller name (CNAM) lookups against the OpenCNAM API",
		Long: `cnam looks up the caller ID name registered for North American phone numbers
using the OpenCNAM API (https://api.opencnam.com/v2/phone/).

Numbers may contain any punctuation; only digits are kept and the rightmost
ten are used, so "+1 (339) 203-3301" and "3392033301" are the same lookup.

The free tier needs no credentials. For the paid tier set account_sid and
auth_token (flags, CNAM_ACCOUNT_SID / CNAM_AUTH_TOKEN, or the config file).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return d.load(cmd, cmd.ErrOrStderr())
		},
	}

	config.RegisterFlags(cmd.PersistentFlags())
	config.RegisterFlagCompletions(cmd)

	cmd.Version = version.Get().Version
	cmd.SetVersionTemplate("cnam version {{.Version}}\n")

	cmd.AddGroup(
		&cobra.Group{ID: "lookup", Title: "Lookup Commands:"},
		&cobra.Group{ID: "utility", Title: "Utility Commands:"},
	)

	cmd.AddCommand(
		newLookupCmd(d),
		newURLCmd(d),
		newConfigCmd(d),
		newCompletionCmd(),
		newVersionCmd(d),
	)

	return cmd
}

// Execute builds the root command and runs it with args (without the program name).
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}

// resolveInputs returns positional args, or reads non-empty lines from stdin when
// no args are provided. Returns an error if stdin is an interactive terminal with
// no args (i.e. the user forgot to pass a number or pipe input).
func resolveInputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	r := cmd.InOrStdin()
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) { //nolint:gosec // file descriptors fit in int on all supported platforms
		return nil, fmt.Errorf("no input: pass a phone number or pipe stdin")
	}
	inputs, err := worker.ReadInputs(r)
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no input: stdin contained no phone numbers")
	}
	return inputs, nil
}
