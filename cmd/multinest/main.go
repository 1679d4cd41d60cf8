// Command multinest runs Bayesian nested-sampling evidence and parameter
// estimation, either against a YAML-configured user likelihood or against
// one of the built-in benchmark scenarios.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/multinest/config"
	"github.com/katalvlaran/multinest/demo"
	"github.com/katalvlaran/multinest/nested"
	"github.com/katalvlaran/multinest/results"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "multinest",
		Short: "Bayesian nested sampling: evidence and parameter estimation",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newDemoCmd())
	return root
}

// builtinLikelihoods names the benchmark likelihoods a YAML config can pair
// with, since a likelihood is Go code and has no YAML representation of
// its own (config.Load deserializes only the Uniform/Normal priors and the
// run's tunables).
var builtinLikelihoods = map[string]func() (*demo.Scenario, error){
	"rosenbrock":     demo.Rosenbrock,
	"egg-box":        demo.EggBox,
	"gaussian-shell": func() (*demo.Scenario, error) { return demo.GaussianShell([2]float64{0, 0}, 2.0, 0.1, [2][2]float64{{-6, 6}, {-6, 6}}) },
}

func newRunCmd() *cobra.Command {
	var (
		configPath string
		likeName   string
		jsonFormat bool
		credible   float64
		outPrefix  string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run nested sampling from a YAML config paired with a named likelihood",
		RunE: func(cmd *cobra.Command, args []string) error {
			build, ok := builtinLikelihoods[likeName]
			if !ok {
				return fmt.Errorf("run: unknown --likelihood %q", likeName)
			}
			scenario, err := build()
			if err != nil {
				return err
			}
			cfg, err := config.Load(configPath, scenario.Likelihood)
			if err != nil {
				return err
			}
			cfg.OutputPathPrefix = outPrefix
			cfg.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
			cfg.PrintOnTheScreen = true
			return execute(cmd.Context(), cfg, jsonFormat, credible)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to YAML run configuration (required)")
	cmd.Flags().StringVar(&likeName, "likelihood", "rosenbrock", "built-in likelihood to pair with the config's tunables")
	cmd.Flags().StringVar(&outPrefix, "output-prefix", "multinest_", "output file path prefix")
	cmd.Flags().BoolVar(&jsonFormat, "format-json", false, "also emit <prefix>Summary.json")
	cmd.Flags().Float64Var(&credible, "credible-level", 0.683, "credible interval level for ParameterSummary.txt")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func newDemoCmd() *cobra.Command {
	var (
		jsonFormat bool
		credible   float64
		outPrefix  string
		seed       int64
	)
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a built-in D=2 benchmark scenario",
	}

	addScenario := func(use, short string, build func() (*demo.Scenario, error)) {
		demoCmd.AddCommand(&cobra.Command{
			Use:   use,
			Short: short,
			RunE: func(cmd *cobra.Command, args []string) error {
				scenario, err := build()
				if err != nil {
					return err
				}
				logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
				cfg, err := nested.NewConfig(scenario.Prior, scenario.Likelihood,
					nested.WithSeed(seed),
					nested.WithLogger(logger),
					nested.WithPrintOnTheScreen(true),
					nested.WithOutputPathPrefix(outPrefix),
				)
				if err != nil {
					return err
				}
				return execute(cmd.Context(), cfg, jsonFormat, credible)
			},
		})
	}

	addScenario("rosenbrock", "Rosenbrock banana-valley likelihood", demo.Rosenbrock)
	addScenario("egg-box", "Multi-modal egg-box likelihood", demo.EggBox)
	addScenario("gaussian-shell", "Ring-shaped shell likelihood", func() (*demo.Scenario, error) {
		return demo.GaussianShell([2]float64{0, 0}, 2.0, 0.1, [2][2]float64{{-6, 6}, {-6, 6}})
	})

	demoCmd.PersistentFlags().BoolVar(&jsonFormat, "format-json", false, "also emit <prefix>Summary.json")
	demoCmd.PersistentFlags().Float64Var(&credible, "credible-level", 0.683, "credible interval level")
	demoCmd.PersistentFlags().StringVar(&outPrefix, "output-prefix", "multinest_", "output file path prefix")
	demoCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "PRNG seed")
	return demoCmd
}

// execute runs a fully-built Config to completion and writes its results,
// installing a signal-driven cancellation so SIGINT/SIGTERM stop the run
// cleanly and still flush whatever posterior has accumulated so far.
func execute(ctx context.Context, cfg *nested.Config, jsonFormat bool, credible float64) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	start := time.Now()
	result, err := nested.Run(ctx, cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	return results.Write(result, cfg.OutputPathPrefix, elapsed, credible, jsonFormat)
}
