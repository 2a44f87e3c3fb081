// Package cli implements the uchygiene command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"uchygiene/internal/domain"
	"uchygiene/pkg/ucclient"
)

var (
	version = "dev"
	commit  = "none"
)

// errIssuesFound signals that a scan completed but reported warnings. It maps
// to exit code 1 without printing an error message.
var errIssuesFound = errors.New("hygiene issues found")

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd, opts := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errIssuesFound) {
			return 1
		}
		if opts.output == "json" {
			_ = PrintJSON(os.Stdout, map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return 2
		}
		return 1
	}
	return 0
}

// rootOptions holds the resolved persistent flag values shared by subcommands.
type rootOptions struct {
	host    string
	token   string
	profile string
	output  string
}

// newClient constructs the metadata client from the resolved options.
func (o *rootOptions) newClient() (*ucclient.Client, error) {
	if o.host != "" {
		if err := ucclient.ValidateHost(o.host); err != nil {
			return nil, domain.ErrValidation("%v", err)
		}
	}
	return ucclient.New(ucclient.Config{
		Host:    o.host,
		Token:   o.token,
		Profile: o.profile,
	})
}

func newRootCmd() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "uchygiene",
		Short:         "Unity Catalog hygiene checker",
		Long:          "Scans Unity Catalog metadata for missing descriptions, missing owners, and empty schemas.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Config file is optional.
			cfg, err := ucclient.LoadUserConfig()
			if err != nil {
				cfg = &ucclient.UserConfig{
					CurrentProfile: "default",
					Profiles:       map[string]ucclient.Profile{},
				}
			}
			p := cfg.ActiveProfile(opts.profile)

			// Precedence: flag > env > profile > default.
			if !cmd.Flags().Changed("host") {
				if v := os.Getenv("DATABRICKS_HOST"); v != "" {
					opts.host = v
				} else if p.Host != "" {
					opts.host = p.Host
				}
			}
			if !cmd.Flags().Changed("token") {
				if v := os.Getenv("DATABRICKS_TOKEN"); v != "" {
					opts.token = v
				} else if p.Token != "" {
					opts.token = p.Token
				}
			}
			if !cmd.Flags().Changed("output") {
				switch {
				case os.Getenv("UCHYGIENE_OUTPUT") != "":
					opts.output = os.Getenv("UCHYGIENE_OUTPUT")
				case p.Output != "":
					opts.output = p.Output
				case !term.IsTerminal(int(os.Stdout.Fd())):
					// Piped output defaults to machine-readable.
					opts.output = "json"
				}
			}
			return validateOutputFormat(opts.output)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.host, "host", "", "Workspace host URL")
	rootCmd.PersistentFlags().StringVar(&opts.token, "token", "", "Workspace access token")
	rootCmd.PersistentFlags().StringVarP(&opts.profile, "profile", "p", "", "Config profile to use")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "console", "Output format (console, json)")

	rootCmd.AddCommand(newScanCmd(opts))
	rootCmd.AddCommand(newStatsCmd(opts))
	rootCmd.AddCommand(newChecksCmd(opts))
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd, opts
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
}
