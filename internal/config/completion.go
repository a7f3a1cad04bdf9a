package config

import (
	"github.com/spf13/cobra"
)

// RegisterFlagCompletions wires shell completion for the enum-valued flags
// registered by RegisterFlags on cmd's persistent flags.
func RegisterFlagCompletions(cmd *cobra.Command) {
	for _, name := range []string{"output", "format", "tls_fingerprint"} {
		_ = cmd.RegisterFlagCompletionFunc(flagName(name), completeKey(name))
	}
	_ = cmd.RegisterFlagCompletionFunc("ca-file", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"pem", "crt"}, cobra.ShellCompDirectiveFilterFileExt
	})
}

func completeKey(key string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return KeyCompletions(key), cobra.ShellCompDirectiveNoFileComp
	}
}
