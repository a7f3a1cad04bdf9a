package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tbckr/cnam/internal/config"
	"github.com/tbckr/cnam/internal/output"
)

func newConfigCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Read and write cnam config file values",
		GroupID: "utility",
	}
	cmd.AddCommand(
		newConfigPathCmd(d),
		newConfigShowCmd(d),
		newConfigGetCmd(d),
		newConfigSetCmd(d),
		newConfigEditCmd(d),
	)
	return cmd
}

func newConfigPathCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), d.cfg.ConfigFile)
			return err
		},
	}
}

// secretKeys are masked by "config show". "config get" prints them as-is.
var secretKeys = map[string]bool{"auth_token": true}

const secretMask = "********"

// effectiveValue returns the current effective value for key from cfg.
func effectiveValue(cfg *config.Config, key string) string {
	switch key {
	case "verbose":
		return strconv.FormatBool(cfg.Verbose)
	case "output":
		return cfg.Output
	case "format":
		return cfg.Format
	case "account_sid":
		return cfg.AccountSID
	case "auth_token":
		return cfg.AuthToken
	case "proxy":
		return cfg.Proxy
	case "user_agent":
		return cfg.UserAgent
	case "tls_fingerprint":
		return cfg.TLSFingerprint
	case "ca_file":
		return cfg.CAFile
	case "timeout":
		return cfg.Timeout.String()
	case "concurrency":
		return strconv.Itoa(cfg.Concurrency)
	case "rps":
		return strconv.FormatFloat(cfg.RPS, 'g', -1, 64)
	default:
		return ""
	}
}

// settings is the effective configuration (defaults, file, env and flags
// merged) as sorted key/value pairs.
type settings struct {
	keys   []string
	values map[string]string
}

func newSettings(cfg *config.Config) *settings {
	keys := config.ValidKeys()
	sort.Strings(keys)
	s := &settings{keys: keys, values: make(map[string]string, len(keys))}
	for _, k := range keys {
		v := effectiveValue(cfg, k)
		if secretKeys[k] && v != "" {
			v = secretMask
		}
		s.values[k] = v
	}
	return s
}

func (s *settings) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(s.values)
}

func (s *settings) WriteTable(w io.Writer) error {
	rows := make([][]string, len(s.keys))
	for i, k := range s.keys {
		rows[i] = []string{k, s.values[k]}
	}
	return output.RenderTable(w, []string{"KEY", "VALUE"}, rows)
}

func (s *settings) WritePlain(w io.Writer) error {
	for _, k := range s.keys {
		if _, err := fmt.Fprintf(w, "%s=%s\n", k, s.values[k]); err != nil {
			return err
		}
	}
	return nil
}

func newConfigShowCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Aliases: []string{"cat"},
		Short:   "Display all effective config settings",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeResult(cmd.OutOrStdout(), d, newSettings(d.cfg))
		},
	}
}

func completeConfigKey(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return config.ValidKeys(), cobra.ShellCompDirectiveNoFileComp
	case 1:
		return config.KeyCompletions(args[0]), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func newConfigGetCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the effective value of a config key",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return completeConfigKey(cmd, args, toComplete)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			key := config.NormalizeKey(args[0])
			if err := config.ValidateKey(key); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), effectiveValue(d.cfg, key))
			return err
		},
	}
}

func newConfigSetCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:               "set <key> <value>",
		Short:             "Set a config value and persist it to the config file",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeConfigKey,
		RunE: func(_ *cobra.Command, args []string) error {
			key := config.NormalizeKey(args[0])
			value, err := config.ParseValue(key, args[1])
			if err != nil {
				return err
			}
			return setFileValue(d.cfg.ConfigFile, key, value)
		},
	}
}

// setFileValue writes key=value into the YAML file at path, leaving every
// other key in the file untouched. Values from env or flags are never written.
func setFileValue(path, key string, value any) error {
	raw := map[string]any{}
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parsing config file: %w", err)
		}
	}

	raw[key] = value

	out, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, out, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func newConfigEditCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the config file in $EDITOR",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			editor := editorCommand(os.Getenv)
			c := exec.CommandContext(cmd.Context(), editor, d.cfg.ConfigFile) //nolint:gosec // editor comes from the user's own $EDITOR/$VISUAL
			c.Stdin = cmd.InOrStdin()
			c.Stdout = cmd.OutOrStdout()
			c.Stderr = cmd.ErrOrStderr()
			if err := c.Run(); err != nil {
				return fmt.Errorf("running editor %q: %w", editor, err)
			}
			return nil
		},
	}
}

// editorCommand picks $EDITOR, then $VISUAL, then vi.
func editorCommand(getenv func(string) string) string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if e := getenv(env); e != "" {
			return e
		}
	}
	return "vi"
}
