package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/secretsanta/config"
	"github.com/katalvlaran/secretsanta/internal/logging"
	"github.com/katalvlaran/secretsanta/output"
	"github.com/katalvlaran/secretsanta/santa"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// flags holds every command line option of the root command.
type flags struct {
	configPath  string
	seed        int64
	maxAttempts int
	timeout     time.Duration
	order       string
	out         string
	appendOut   bool
	quiet       bool
	logLevel    string
	logJSON     bool
	metricsFile string
}

func newRootCmd() *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "secretsanta",
		Short: "Draw a Secret Santa list",
		Long: `secretsanta draws one gift-giving loop through everybody in the
configuration: each person gives once, receives once, and the rules about
partners, past years, triangles and couples are respected.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDraw(cmd, &f)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", config.FileName, "Path of the YAML configuration")
	pf.StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.BoolVar(&f.logJSON, "log-json", false, "Write logs as JSON")

	fl := rootCmd.Flags()
	fl.Int64Var(&f.seed, "seed", 0, "Random seed; 0 picks one from the clock and logs it")
	fl.IntVar(&f.maxAttempts, "max-attempts", santa.DefaultMaxAttempts, "Attempt budget before giving up")
	fl.DurationVar(&f.timeout, "timeout", 0, "Overall time limit, 0 for none")
	fl.StringVar(&f.order, "order", "", "Printing order, overriding the configuration (GivingOrder, FamilyOrder, AlphabeticalOrder)")
	fl.StringVarP(&f.out, "out", "o", "", "Write the list to this file, overriding the configuration")
	fl.BoolVar(&f.appendOut, "append", false, "Append to the list file instead of replacing it")
	fl.BoolVarP(&f.quiet, "quiet", "q", false, "Do not print the list to the screen")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "Write draw metrics in Prometheus text format to this file")

	rootCmd.AddCommand(newValidateCmd(&f))
	return rootCmd
}

func newValidateCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration without drawing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(cmd, f)
			if err != nil {
				return err
			}
			_, d, err := loadDraw(log, f.configPath)
			if err != nil {
				return err
			}
			reg := d.Registry()
			var rigged int
			for i := 0; i < reg.Len(); i++ {
				if _, ok := d.Rigged(i); ok {
					rigged++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d participants, %d couples, %d rigged\n",
				f.configPath, reg.Len(), reg.Couples(), rigged)
			return nil
		},
	}
}

func newLogger(cmd *cobra.Command, f *flags) (*slog.Logger, error) {
	level, err := logging.ParseLevel(f.logLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Config{
		Level:  level,
		JSON:   f.logJSON,
		Writer: cmd.ErrOrStderr(),
	}), nil
}

func loadDraw(log *slog.Logger, path string) (*config.Config, *santa.Draw, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	d, err := cfg.Draw()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Info("configuration loaded", "path", path, "participants", d.Registry().Len())
	return cfg, d, nil
}

func runDraw(cmd *cobra.Command, f *flags) (err error) {
	log, err := newLogger(cmd, f)
	if err != nil {
		return err
	}
	cfg, d, err := loadDraw(log, f.configPath)
	if err != nil {
		return err
	}
	outOpts, err := outputOptions(cmd, cfg, f)
	if err != nil {
		return err
	}

	var seed = f.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		log.Info("seed chosen", "seed", seed)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	reg := prometheus.NewRegistry()
	if f.metricsFile != "" {
		defer func() {
			if werr := prometheus.WriteToTextfile(f.metricsFile, reg); werr != nil && err == nil {
				err = fmt.Errorf("metrics: %w", werr)
			}
		}()
	}

	res, err := santa.Generate(ctx, d, santa.Options{
		MaxAttempts: f.maxAttempts,
		Seed:        seed,
		Logger:      log,
		Metrics:     santa.NewMetrics(reg),
	})
	if err != nil {
		return err
	}
	if err = santa.Check(res.List, d); err != nil {
		return fmt.Errorf("generated list failed verification: %w", err)
	}

	return output.Write(cmd.OutOrStdout(), res.List, d.Registry(), outOpts)
}

// outputOptions applies command line overrides to the configured output.
func outputOptions(cmd *cobra.Command, cfg *config.Config, f *flags) (output.Options, error) {
	opts, err := cfg.OutputOptions()
	if err != nil {
		return opts, err
	}
	if f.order != "" {
		if opts.Order, err = output.ParseOrder(f.order); err != nil {
			return opts, err
		}
	}
	if f.out != "" {
		opts.WriteToFile = true
		opts.FileName = f.out
	}
	if cmd.Flags().Changed("append") {
		opts.Append = f.appendOut
	}
	if f.quiet {
		opts.PrintToScreen = false
	}
	return opts, nil
}
