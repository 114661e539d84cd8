// funcintro runs small lessons in functional programming and prints what
// they produce.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/vinodhalaharvi/funcintro/pkg/catalog"
	"github.com/vinodhalaharvi/funcintro/pkg/config"
	"github.com/vinodhalaharvi/funcintro/pkg/purity"
	"github.com/vinodhalaharvi/funcintro/pkg/report"
)

var (
	version = "0.1.0"

	// Global flags
	configPath string
	output     string
	seed       uint64
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "funcintro",
	Short: "Lessons in functional programming",
	Long: `funcintro runs small lessons that contrast imperative code with
pure functions, map and reduce, pipelines and function composition.

Every lesson reads fixed sample input and prints its result.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			cfg.Race.Seed = seed
		}
		if output != "text" && output != "yaml" {
			return fmt.Errorf("unknown output format %q (want text or yaml)", output)
		}

		logger, err = newLogger(cfg.Logging.Level, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available lessons",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var runCmd = &cobra.Command{
	Use:   "run [lesson...]",
	Short: "Run one or more lessons by name",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLessons,
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every lesson",
	Args:  cobra.NoArgs,
	RunE:  runAll,
}

var purityCmd = &cobra.Command{
	Use:   "purity [packages...]",
	Short: "Report functions that write globals or their arguments",
	Long: `Loads Go packages and reports every function that assigns to a
package-level variable or writes through a pointer, slice or map parameter.

Packages can be:
  .           Current directory
  ./...       Current directory and all subdirectories
  ./pkg/ct    Specific package`,
	RunE: runPurity,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "funcintro version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "text", "Output format: text or yaml")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 1, "Seed for the random lessons (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	rootCmd.AddCommand(listCmd, runCmd, allCmd, purityCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

func newEnv() (catalog.Env, error) {
	samples, err := catalog.DefaultSamples()
	if err != nil {
		return catalog.Env{}, err
	}
	return catalog.Env{Samples: samples, Config: cfg, Logger: logger}, nil
}

func runList(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	for _, e := range catalog.Default().Examples() {
		fmt.Fprintf(w, "%-18s %s\n", e.Name, e.Summary)
	}
	return nil
}

func runLessons(cmd *cobra.Command, args []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	c := catalog.Default()

	results := make([]report.Result, 0, len(args))
	for _, name := range args {
		out, err := c.Run(env, name)
		if err != nil {
			return err
		}
		results = append(results, report.Result{Name: name, Value: out.Value, Text: out.Text})
	}
	return write(cmd.OutOrStdout(), results)
}

func runAll(cmd *cobra.Command, args []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	c := catalog.Default()
	examples := c.Examples()

	results := make([]report.Result, len(examples))
	var g errgroup.Group
	for i, e := range examples {
		g.Go(func() error {
			out, err := c.Run(env, e.Name)
			if err != nil {
				return err
			}
			results[i] = report.Result{Name: e.Name, Value: out.Value, Text: out.Text}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Debug("Ran all lessons", zap.Int("count", len(results)))
	return write(cmd.OutOrStdout(), results)
}

func runPurity(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}
	logger.Debug("Checking packages", zap.Strings("patterns", args))

	findings, err := purity.NewChecker().Check(args...)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if len(findings) == 0 {
		fmt.Fprintln(w, "no side effects found")
		return nil
	}
	for _, f := range findings {
		fmt.Fprintln(w, f)
	}
	return nil
}

func write(w io.Writer, results []report.Result) error {
	if output == "yaml" {
		out, err := report.YAML(results)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}
	_, err := io.WriteString(w, strings.TrimSuffix(report.Render(results), "\n")+"\n")
	return err
}
