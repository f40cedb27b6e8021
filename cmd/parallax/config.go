package main

import (
	"github.com/spf13/cobra"

	actions "github.com/footprint-tools/parallax/internal/actions/config"
	"github.com/footprint-tools/parallax/internal/config"
	"github.com/footprint-tools/parallax/internal/ui"
)

func newConfigCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and edit the configuration file",
		Long: `Reads and edits the configuration file, ~/.parallaxrc unless --config
or PARALLAX_CONFIG points elsewhere. YAML and TOML files are read-only.`,
	}

	sub := []struct {
		use   string
		short string
		run   func([]string, actions.Deps) error
	}{
		{"list", "List every configuration key", actions.List},
		{"get <key>", "Print the effective value of a key", actions.Get},
		{"set <key> <value>", "Set a key in the configuration file", actions.Set},
		{"unset <key>", "Remove a key from the configuration file", actions.Unset},
	}
	for _, s := range sub {
		cmd.AddCommand(&cobra.Command{
			Use:   s.use,
			Short: s.short,
			RunE: func(c *cobra.Command, args []string) error {
				return s.run(args, configDeps(c, f))
			},
		})
	}
	return cmd
}

func configDeps(c *cobra.Command, f *rootFlags) actions.Deps {
	provider := config.NewProvider()
	if f.configPath != "" {
		provider = config.NewProviderAt(f.configPath)
	}

	w := ui.NewWriterTo(c.OutOrStdout(), ui.WithErrorOutput(c.ErrOrStderr()))
	deps := actions.ProviderDeps(provider)
	deps.Printf = w.Printf
	deps.Println = w.Println
	return deps
}
