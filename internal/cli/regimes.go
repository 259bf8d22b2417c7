package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crucible/internal/config"
)

type regimeFlags struct {
	config string
	minRun int
	maxRun int
}

func (f *regimeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "regime config file (default ./"+config.FileName+" if present)")
	cmd.Flags().IntVar(&f.minRun, "min-run", 0, "solve a single ad-hoc regime with this minimum run (needs --max-run)")
	cmd.Flags().IntVar(&f.maxRun, "max-run", 0, "solve a single ad-hoc regime with this maximum run (needs --min-run)")
	cmd.MarkFlagsRequiredTogether("min-run", "max-run")
	cmd.MarkFlagsMutuallyExclusive("config", "min-run")
}

// resolve returns the effective config and a label for where it came from.
// Explicit run flags win even when set to zero, so bad values fail validation.
func (f *regimeFlags) resolve(cmd *cobra.Command) (config.Config, string, error) {
	if cmd.Flags().Changed("min-run") || cmd.Flags().Changed("max-run") {
		c := config.Config{Regimes: []config.Regime{{
			Name:   "custom",
			MinRun: f.minRun,
			MaxRun: f.maxRun,
		}}}
		if err := c.Validate(); err != nil {
			return config.Config{}, "", err
		}
		return c, "flags", nil
	}

	return config.LoadOrDefault(f.config)
}

func (c *CLI) regimesCommand() *cobra.Command {
	var flags regimeFlags

	cmd := &cobra.Command{
		Use:   "regimes",
		Short: "Print the run-length regimes solve would use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, source, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("Loaded regimes", "source", source, "count", len(cfg.Regimes))

			out := cmd.OutOrStdout()
			for _, r := range cfg.Regimes {
				fmt.Fprintf(out, "%s %s\n",
					column(styleRegime, r.Name, nameWidth(cfg)),
					styleBounds.Render(r.Constraints().String()))
			}
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func nameWidth(cfg config.Config) int {
	w := 0
	for _, r := range cfg.Regimes {
		w = max(w, len(r.Name))
	}
	return w
}
