// Package main provides the CLI entrypoint for sortviz.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/sortviz/internal/bench"
	"github.com/verte-zerg/sortviz/internal/config"
	"github.com/verte-zerg/sortviz/internal/dataset"
	"github.com/verte-zerg/sortviz/internal/engine"
	"github.com/verte-zerg/sortviz/internal/generator"
	"github.com/verte-zerg/sortviz/internal/historyui"
	"github.com/verte-zerg/sortviz/internal/logging"
	"github.com/verte-zerg/sortviz/internal/metrics"
	"github.com/verte-zerg/sortviz/internal/model"
	"github.com/verte-zerg/sortviz/internal/quiz"
	"github.com/verte-zerg/sortviz/internal/quizui"
	"github.com/verte-zerg/sortviz/internal/stats"
	"github.com/verte-zerg/sortviz/internal/store"
	"github.com/verte-zerg/sortviz/internal/theory"
	"github.com/verte-zerg/sortviz/internal/tui"
)

const (
	defaultAlgorithm   = "quick"
	defaultDelayMs     = 50
	defaultLogLevel    = "info"
	defaultPlotHeight  = 12
	defaultTermWidth   = 80
	defaultHistoryLast = 0
	defaultStepsSize   = 8
	stepsMaxValue      = 99
)

var (
	globalLogLevel   string
	globalLogFile    string
	globalDBPath     string
	globalConfigPath string

	visualAlgorithm string
	visualSize      int
	visualMin       int
	visualMax       int
	visualDelayMs   int
	visualSeed      int64
	visualInput     string

	benchSizes       []int
	benchAlgorithms  string
	benchSeed        int64
	benchExport      string
	benchMetricsFile string
	benchNoSave      bool

	quizShuffle bool

	stepsSize int
	stepsSeed int64

	theoryPlain bool

	historyAlgorithm string
	historyLast      int
	historyPlain     bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sortviz",
		Short:         "Terminal sorting algorithm visualiser",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runVisualCmd,
	}

	rootCmd.PersistentFlags().StringVar(&globalLogLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&globalLogFile, "log-file", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&globalDBPath, "db", "", "path to the SQLite history database")
	rootCmd.PersistentFlags().StringVar(&globalConfigPath, "config", "", "path to the TOML config file")

	rootCmd.Flags().StringVar(&visualAlgorithm, "algorithm", defaultAlgorithm, "algorithm to start with")
	rootCmd.Flags().IntVar(&visualSize, "size", generator.DefaultSize, fmt.Sprintf("number of bars (at most %d)", tui.MaxSize))
	rootCmd.Flags().IntVar(&visualMin, "min", generator.DefaultMin, "smallest generated value")
	rootCmd.Flags().IntVar(&visualMax, "max", generator.DefaultMax, "largest generated value")
	rootCmd.Flags().IntVar(&visualDelayMs, "delay", defaultDelayMs, "delay between steps in milliseconds")
	rootCmd.Flags().Int64Var(&visualSeed, "seed", 0, "random seed (0 picks one from the clock)")
	rootCmd.Flags().StringVar(&visualInput, "input", "", "load values from a file, one integer per line")

	rootCmd.AddCommand(newBenchCmd())
	rootCmd.AddCommand(newQuizCmd())
	rootCmd.AddCommand(newTheoryCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newStepsCmd())
	rootCmd.AddCommand(newAlgosCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runVisualCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "algorithm", &visualAlgorithm, fileCfg.Visual.Algorithm)
	applyIntConfig(cmd, "size", &visualSize, fileCfg.Visual.Size)
	applyIntConfig(cmd, "min", &visualMin, fileCfg.Visual.Min)
	applyIntConfig(cmd, "max", &visualMax, fileCfg.Visual.Max)
	applyIntConfig(cmd, "delay", &visualDelayMs, fileCfg.Visual.DelayMs)
	applyInt64Config(cmd, "seed", &visualSeed, fileCfg.Visual.Seed)

	alg, err := engine.ParseAlgorithm(visualAlgorithm)
	if err != nil {
		return fmt.Errorf("invalid --algorithm value: %w", err)
	}
	cfg := model.Config{
		Algorithm: alg,
		Size:      visualSize,
		Min:       visualMin,
		Max:       visualMax,
		Delay:     time.Duration(visualDelayMs) * time.Millisecond,
		Seed:      visualSeed,
		InputPath: visualInput,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cmd, fileCfg, true)
	if err != nil {
		return err
	}
	defer closeLog()

	var initial []int
	if cfg.InputPath != "" {
		initial, err = loadInput(cfg)
		if err != nil {
			return err
		}
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	gen := newGenerator(cfg.Seed)
	logger.Info("visualiser started", "algorithm", alg.String(), "size", cfg.Size, "delay", cfg.Delay)
	program := tea.NewProgram(tui.NewModel(cfg, st, gen, initial, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func loadInput(cfg model.Config) ([]int, error) {
	values, err := dataset.LoadValues(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load --input: %w", err)
	}
	kept, rejected := dataset.Apply(values, dataset.FilterRange(cfg.Min, cfg.Max))
	if rejected > 0 {
		logErrf("Skipped %d value(s) outside [%d, %d]\n", rejected, cfg.Min, cfg.Max)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("no values in %s fall within [%d, %d]", cfg.InputPath, cfg.Min, cfg.Max)
	}
	if len(kept) > tui.MaxSize {
		return nil, fmt.Errorf("--input holds %d values; at most %d can be shown", len(kept), tui.MaxSize)
	}
	return kept, nil
}

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark every algorithm across input sizes",
		Args:  cobra.NoArgs,
		RunE:  runBenchCmd,
	}
	cmd.Flags().IntSliceVar(&benchSizes, "sizes", bench.DefaultSizes, "input sizes to measure")
	cmd.Flags().StringVar(&benchAlgorithms, "algorithms", "", "comma-separated algorithms (default: all)")
	cmd.Flags().Int64Var(&benchSeed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().StringVar(&benchExport, "export", "", "write results as YAML to this path")
	cmd.Flags().StringVar(&benchMetricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	cmd.Flags().BoolVar(&benchNoSave, "no-save", false, "do not store results in the history database")
	return cmd
}

func runBenchCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("sizes") && len(fileCfg.Bench.Sizes) > 0 {
		benchSizes = fileCfg.Bench.Sizes
	}
	applyStringConfig(cmd, "algorithms", &benchAlgorithms, fileCfg.Bench.Algorithms)
	applyInt64Config(cmd, "seed", &benchSeed, fileCfg.Bench.Seed)

	cfg := model.BenchConfig{
		Sizes: benchSizes,
		Seed:  benchSeed,
	}
	if strings.TrimSpace(benchAlgorithms) != "" {
		cfg.Algorithms, err = engine.ParseAlgorithms(benchAlgorithms)
		if err != nil {
			return fmt.Errorf("invalid --algorithms value: %w", err)
		}
	}
	if err := validateBenchConfig(cfg); err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cmd, fileCfg, false)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := bench.Options{
		Generator: newGenerator(cfg.Seed),
		Progress: func(c bench.Cell) {
			logErrf("[%d/%d] %-15s n=%-6d %s\n", c.Done, c.Total, c.Algorithm.Title(), c.Size, c.Duration)
		},
	}
	var reg *metrics.BenchMetrics
	if benchMetricsFile != "" {
		reg = metrics.NewBenchMetrics()
		opts.Metrics = reg
	}

	res, runErr := bench.Run(ctx, cfg, opts)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return fmt.Errorf("failed to run benchmark: %w", runErr)
	}

	out := cmd.OutOrStdout()
	width, color := outputWidth(out)
	if err := bench.Render(out, res, width, defaultPlotHeight, color); err != nil {
		return fmt.Errorf("failed to render benchmark: %w", err)
	}
	if runErr != nil {
		logger.Warn("benchmark interrupted", "run_id", res.RunID, "cells", len(res.Records()))
		return fmt.Errorf("benchmark interrupted: %w", runErr)
	}

	if benchExport != "" {
		if err := bench.ExportFile(benchExport, res); err != nil {
			return fmt.Errorf("failed to export benchmark: %w", err)
		}
		logErrf("Wrote %s\n", benchExport)
	}
	if reg != nil {
		if err := reg.WriteTextfile(benchMetricsFile); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		logErrf("Wrote %s\n", benchMetricsFile)
	}
	if benchNoSave {
		return nil
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	if _, err := st.InsertBenchRun(ctx, res.Header(), res.Records()); err != nil {
		return fmt.Errorf("failed to save benchmark: %w", err)
	}
	logger.Info("benchmark saved", "run_id", res.RunID, "sizes", len(res.Sizes), "algorithms", len(res.Algorithms))
	return nil
}

func newQuizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Test your knowledge of sorting algorithms",
		Args:  cobra.NoArgs,
		RunE:  runQuizCmd,
	}
	cmd.Flags().BoolVar(&quizShuffle, "shuffle", false, "ask the questions in random order")
	return cmd
}

func runQuizCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := openLogger(cmd, fileCfg, true)
	if err != nil {
		return err
	}
	defer closeLog()

	questions := quiz.DefaultQuestions()
	if quizShuffle {
		questions = quiz.Shuffled(questions, generator.New().Shuffle)
	}
	session, err := quiz.NewSession(questions)
	if err != nil {
		return fmt.Errorf("failed to start quiz: %w", err)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	program := tea.NewProgram(quizui.NewModel(session, st, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run quiz TUI: %w", err)
	}
	return nil
}

func newTheoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theory <algorithm>",
		Short: "Explain how an algorithm works",
		Args:  cobra.ExactArgs(1),
		RunE:  runTheoryCmd,
	}
	cmd.Flags().BoolVar(&theoryPlain, "plain", false, "print raw markdown")
	return cmd
}

func runTheoryCmd(cmd *cobra.Command, args []string) error {
	alg, err := engine.ParseAlgorithm(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	var text string
	if theoryPlain {
		text, err = theory.Markdown(alg)
	} else {
		width, _ := outputWidth(out)
		var r *theory.Renderer
		r, err = theory.NewRenderer(width)
		if err != nil {
			return err
		}
		text, err = r.Render(alg)
	}
	if err != nil {
		return fmt.Errorf("failed to render theory: %w", err)
	}
	if _, err := fmt.Fprint(out, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse past runs, benchmarks and quiz scores",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyAlgorithm, "algorithm", "", "algorithm filter")
	cmd.Flags().IntVar(&historyLast, "last", defaultHistoryLast, "limit to last N entries")
	cmd.Flags().BoolVar(&historyPlain, "plain", false, "print a text report instead of the TUI")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	cfg := model.HistoryConfig{Last: historyLast}
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	if historyAlgorithm != "" {
		alg, err := engine.ParseAlgorithm(historyAlgorithm)
		if err != nil {
			return fmt.Errorf("invalid --algorithm value: %w", err)
		}
		cfg.Algorithm = alg.String()
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	if historyPlain {
		report, err := stats.BuildReport(cmd.Context(), st, cfg)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		out := cmd.OutOrStdout()
		width, color := outputWidth(out)
		return stats.RenderReport(out, report, width, color)
	}

	program := tea.NewProgram(historyui.NewModel(st, cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run history TUI: %w", err)
	}
	return nil
}

func newStepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steps <algorithm> [values...]",
		Short: "Print every step of a sort as text",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runStepsCmd,
	}
	cmd.Flags().IntVar(&stepsSize, "size", defaultStepsSize, "number of random values when none are given")
	cmd.Flags().Int64Var(&stepsSeed, "seed", 0, "random seed (0 picks one from the clock)")
	return cmd
}

func runStepsCmd(cmd *cobra.Command, args []string) error {
	alg, err := engine.ParseAlgorithm(args[0])
	if err != nil {
		return err
	}
	var values []int
	if len(args) > 1 {
		values = make([]int, 0, len(args)-1)
		for _, arg := range args[1:] {
			v, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("value %q is not an integer", arg)
			}
			values = append(values, v)
		}
	} else {
		if stepsSize <= 0 {
			return fmt.Errorf("--size must be > 0")
		}
		values = newGenerator(stepsSeed).Values(stepsSize, 1, stepsMaxValue)
	}
	return writeSteps(cmd.OutOrStdout(), alg, values)
}

// writeSteps sorts values with a recorder and prints one line per event.
func writeSteps(w io.Writer, alg engine.Algorithm, values []int) error {
	if _, err := fmt.Fprintf(w, "%s on %v\n", alg.Title(), values); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	rec := engine.NewRecorder(values)
	counters, err := engine.Sort(alg, values, rec, 0)
	if err != nil {
		return err
	}
	for i, frame := range rec.Frames {
		line := fmt.Sprintf("%4d  %s%v", i+1, runewidth.FillRight(frame.Event.String(), 24), frame.Values)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w, "Comparisons: %d | Swaps: %d\n", counters.Comparisons, counters.Swaps); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newAlgosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algos",
		Short: "List available algorithms",
		Args:  cobra.NoArgs,
		RunE:  runAlgosCmd,
	}
}

func runAlgosCmd(cmd *cobra.Command, _ []string) error {
	return writeAlgorithms(cmd.OutOrStdout())
}

func writeAlgorithms(w io.Writer) error {
	for _, alg := range engine.All() {
		line := runewidth.FillRight(alg.String(), 12) + alg.Title()
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func configPath() string {
	if globalConfigPath != "" {
		return globalConfigPath
	}
	return config.DefaultConfigPath()
}

func loadFileConfig() (config.FileConfig, error) {
	cfg, err := config.LoadConfig(configPath())
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func openStore() (*store.Store, error) {
	path := globalDBPath
	if path == "" {
		path = config.DefaultDBPath()
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

// openLogger builds the logger from flags and the [log] section. Full-screen
// commands own the terminal, so without a log file they log nowhere.
func openLogger(cmd *cobra.Command, fileCfg config.FileConfig, fullScreen bool) (*slog.Logger, func(), error) {
	applyStringConfig(cmd, "log-level", &globalLogLevel, fileCfg.Log.Level)
	applyStringConfig(cmd, "log-file", &globalLogFile, fileCfg.Log.File)
	level, err := logging.ParseLevel(globalLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level value: %w", err)
	}
	if globalLogFile == "" {
		if fullScreen {
			return logging.NewNop(), func() {}, nil
		}
		return logging.New(os.Stderr, level), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(globalLogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(globalLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	closeFn := func() {
		if cerr := f.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}
	return logging.New(f, level), closeFn, nil
}

func newGenerator(seed int64) *generator.Generator {
	if seed != 0 {
		return generator.NewSeeded(seed)
	}
	return generator.New()
}

// outputWidth reports the terminal width of w and whether it can take colour.
func outputWidth(w io.Writer) (int, bool) {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return defaultTermWidth, false
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		width = defaultTermWidth
	}
	return width, os.Getenv("NO_COLOR") == ""
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# sortviz configuration
# Uncomment a value to enable it. CLI flags override config values.

[visual]
# algorithm = %q       # selection, insertion, bubble, quick, merge or builtin
# size = %d               # Number of bars (at most %d)
# min = %d                # Smallest generated value
# max = %d               # Largest generated value
# delay-ms = %d           # Delay between steps
# seed = 0                # Random seed (0 picks one from the clock)

[bench]
# sizes = %s
# algorithms = "selection,insertion,bubble,quick,merge,builtin"
# seed = 0

[log]
# level = %q           # debug, info, warn or error
# file = ""               # Log file; full-screen commands log nowhere without one
`,
		defaultAlgorithm,
		generator.DefaultSize,
		tui.MaxSize,
		generator.DefaultMin,
		generator.DefaultMax,
		defaultDelayMs,
		formatSizes(bench.DefaultSizes),
		defaultLogLevel,
	)
}

func formatSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, n := range sizes {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func validateConfig(cfg model.Config) error {
	if cfg.Size <= 0 {
		return fmt.Errorf("--size must be > 0")
	}
	if cfg.Size > tui.MaxSize {
		return fmt.Errorf("--size must be <= %d", tui.MaxSize)
	}
	if cfg.Min < 0 {
		return fmt.Errorf("--min must be >= 0")
	}
	if cfg.Max < cfg.Min {
		return fmt.Errorf("--max must be >= --min")
	}
	if cfg.Delay < 0 {
		return fmt.Errorf("--delay must be >= 0")
	}
	return nil
}

func validateBenchConfig(cfg model.BenchConfig) error {
	if len(cfg.Sizes) == 0 {
		return fmt.Errorf("--sizes must not be empty")
	}
	seen := make(map[int]bool, len(cfg.Sizes))
	for _, n := range cfg.Sizes {
		if n <= 0 {
			return fmt.Errorf("--sizes values must be > 0")
		}
		if seen[n] {
			return fmt.Errorf("--sizes values must be unique")
		}
		seen[n] = true
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
