package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		GroupID:               "utility",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Long: `Generate a shell completion script for cnam.

Bash (requires the bash-completion package):
  $ source <(cnam completion bash)
  $ cnam completion bash > /etc/bash_completion.d/cnam

Zsh:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  $ cnam completion zsh > "${fpath[1]}/_cnam"

Fish:
  $ cnam completion fish > ~/.config/fish/completions/cnam.fish

PowerShell:
  PS> cnam completion powershell | Out-String | Invoke-Expression

Start a new shell for the setup to take effect.`,
		// Completion must not load config: loading creates the config dir and file.
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			root, w := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(w, true)
			case "zsh":
				return root.GenZshCompletion(w)
			case "fish":
				return root.GenFishCompletion(w, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(w)
			}
			return fmt.Errorf("unsupported shell %q", args[0])
		},
	}
}
