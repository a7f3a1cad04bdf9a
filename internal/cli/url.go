package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newURLCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:     "url <number>",
		Short:   "Print the OpenCNAM request URL for a number without sending it",
		GroupID: "lookup",
		Long: `Print the request URL that "cnam lookup" would send for a number.

The URL carries the configured --format and, when set, the auth_token and
account_sid credentials in clear text. No network request is made.`,
		Example: `  cnam url 3392033301
  cnam url --format json --auth-token tok --account-sid AC42 3392033301`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := d.newRequest(nil)
			if err != nil {
				return err
			}
			if err := r.SetPhoneNumber(args[0]); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), r.URL())
			return err
		},
	}
}
