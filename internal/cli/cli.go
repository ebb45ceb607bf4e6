package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/ffpoints/internal/config"
	"github.com/pfrederiksen/ffpoints/internal/league"
	"github.com/pfrederiksen/ffpoints/internal/logger"
	"github.com/pfrederiksen/ffpoints/internal/player"
	"github.com/pfrederiksen/ffpoints/internal/scoring"
	"github.com/pfrederiksen/ffpoints/internal/scraper"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// Version is set at build time
var Version = "dev"

var (
	flagConfig      string
	flagSeason      int
	flagWeek        int
	flagScoring     string
	flagPositions   []string
	flagFormat      string
	flagTop         int
	flagSortBy      string
	flagConcurrency int
	flagCache       bool
	flagVerbose     bool
	flagLogLevel    string
	flagOutput      string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ffpoints",
		Short: "Score fantasy football stat tables for a league",
		Long: `A CLI tool that scrapes per-position fantasy football stat tables,
applies the league's scoring rules and prints each position ranked by
adjusted fantasy points.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runBuild,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "League config file (default: ./.ffpoints.yaml or XDG config)")
	cmd.PersistentFlags().IntVar(&flagSeason, "season", config.DefaultSeason, "Season year")
	cmd.PersistentFlags().IntVar(&flagWeek, "week", 0, "Week number (0 for the full season)")
	cmd.PersistentFlags().StringVar(&flagScoring, "scoring", config.DefaultScoring, "Source scoring format in the stats URL")
	cmd.PersistentFlags().StringSliceVar(&flagPositions, "position", nil, "Only build these positions (repeatable: QB, RB, WR, TE, K, DST)")

	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text, json or markdown")
	cmd.Flags().IntVar(&flagTop, "top", 0, "Show only the top N players per position")
	cmd.Flags().StringVar(&flagSortBy, "sort-by", "", "Re-sort output by this column (default: adjusted fantasy points)")
	cmd.Flags().IntVar(&flagConcurrency, "concurrency", 0, "Positions fetched at once (default from config)")
	cmd.Flags().BoolVar(&flagCache, "cache", false, "Cache raw pages and reuse them on later runs")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging (same as --log-level debug)")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", string(logger.LevelWarn), "Log level: debug, info, warn or error")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write output to a file instead of stdout")

	cmd.AddCommand(newRulesCmd(), newVersionCmd())

	return cmd
}

// runBuild is the main command logic
func runBuild(cmd *cobra.Command, args []string) error {
	format, err := ParseFormat(flagFormat)
	if err != nil {
		return err
	}
	if flagTop < 0 {
		return fmt.Errorf("--top must not be negative")
	}

	log := logger.New(logger.ParseLevel(flagLogLevel), cmd.ErrOrStderr())
	if flagVerbose {
		log.SetLevel(logger.LevelDebug)
	}
	logger.SetDefault(log)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	positions, err := parsePositions(flagPositions)
	if err != nil {
		return err
	}
	restrictSources(cfg, positions)
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = flagConcurrency
	}
	if flagCache && cfg.CacheDir == "" {
		cfg.CacheDir = config.XDGCacheDir()
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	fetcher, err := newFetcher(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := logger.NewMetrics()
	l, err := league.Build(ctx, cfg.League, fetcher,
		league.WithConcurrency(cfg.Concurrency),
		league.WithLogger(log),
		league.WithMetrics(metrics),
	)
	if err != nil {
		return err
	}
	log.Debug(league.Summary(l), metrics.Snapshot().Fields())

	result, err := NewOutputResult(l, cfg.League.Season, cfg.League.Week, DisplayOptions{
		Positions: positions,
		SortBy:    flagSortBy,
		Top:       flagTop,
	})
	if err != nil {
		return err
	}

	w, closeOutput, err := openOutput(cmd.OutOrStdout(), flagOutput)
	if err != nil {
		return err
	}
	if err := WriteOutput(w, result, format); err != nil {
		closeOutput()
		return fmt.Errorf("writing output: %w", err)
	}
	return closeOutput()
}

// loadConfig reads the league file, if any, and applies period flags on top
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if path := config.FindConfigFile(flagConfig); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		cfg = loaded
	} else if flagConfig != "" {
		return nil, fmt.Errorf("loading %s: %w", flagConfig, config.ErrConfigNotFound)
	}

	flags := cmd.Flags()
	if flags.Changed("season") || flags.Changed("week") || flags.Changed("scoring") {
		season, week, format := cfg.League.Season, cfg.League.Week, cfg.League.Scoring
		if flags.Changed("season") {
			season = flagSeason
		}
		if flags.Changed("week") {
			week = flagWeek
		}
		if flags.Changed("scoring") {
			format = flagScoring
		}
		cfg.SetPeriod(season, week, format)
	}
	return cfg, nil
}

// restrictSources drops every source outside positions
func restrictSources(cfg *config.Config, positions []player.Position) {
	if len(positions) == 0 {
		return
	}
	keep := make(map[player.Position]string, len(positions))
	for _, pos := range positions {
		if url, ok := cfg.League.Sources[pos]; ok {
			keep[pos] = url
		}
	}
	cfg.League.Sources = keep
}

func newFetcher(cfg *config.Config) (scraper.Fetcher, error) {
	sc := scraper.New(
		scraper.WithTimeout(cfg.Timeout),
		scraper.WithUserAgent(cfg.UserAgent),
		scraper.WithRateLimit(cfg.RateLimit),
	)
	if cfg.CacheDir == "" {
		return sc, nil
	}
	cache, err := scraper.NewCache(cfg.CacheDir)
	if err != nil {
		return nil, fmt.Errorf("initializing cache: %w", err)
	}
	cache.TTL = cfg.CacheTTL
	removed, err := cache.CleanExpired()
	if err != nil {
		return nil, fmt.Errorf("cleaning cache: %w", err)
	}
	logger.Debug("page cache ready", logger.Fields{"dir": cache.Dir(), "expired_removed": removed})
	return &scraper.CachedFetcher{Next: sc, Cache: cache}, nil
}

func openOutput(stdout io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path) //nolint:gosec // user-provided output path
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, f.Close, nil
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the effective scoring rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			positions, err := parsePositions(flagPositions)
			if err != nil {
				return err
			}
			if len(positions) == 0 {
				positions = player.Positions
			}
			return writeRules(cmd.OutOrStdout(), cfg.League, positions)
		},
	}
}

// writeRules prints one row per weighted column
func writeRules(w io.Writer, lg config.League, positions []player.Position) error {
	fmt.Fprintln(w, lg.Name)

	rows := make([][]string, 0)
	for _, pos := range positions {
		rule := lg.Rule(pos)
		if len(rule) == 0 {
			rows = append(rows, []string{pos.String(), "(unscored)", ""})
			continue
		}
		for _, term := range rule {
			rows = append(rows, []string{pos.String(), term.Column, strconv.FormatFloat(term.Weight, 'f', -1, 64)})
		}
		if scoring.FamilyOf(pos) == scoring.FamilyDST {
			rows = append(rows, []string{pos.String(), scoring.PointsAllowedPerGame, "tiered"})
		}
	}
	return renderGrid(w, []string{"Position", "Column", "Weight"}, rows)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ffpoints %s\n", Version)
		},
	}
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
