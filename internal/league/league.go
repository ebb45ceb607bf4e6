package league

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pfrederiksen/ffpoints/internal/config"
	"github.com/pfrederiksen/ffpoints/internal/logger"
	"github.com/pfrederiksen/ffpoints/internal/player"
	"github.com/pfrederiksen/ffpoints/internal/scoring"
	"github.com/pfrederiksen/ffpoints/internal/scraper"
)

// League holds one scored table per configured position
type League struct {
	Name   string
	RunID  string
	tables []*player.Table
}

// Table returns the table for pos, if that position was built
func (l *League) Table(pos player.Position) (*player.Table, bool) {
	i := pos.Index()
	if i < 0 || l.tables[i] == nil {
		return nil, false
	}
	return l.tables[i], true
}

// Tables returns the built tables in QB, RB, WR, TE, K, DST order
func (l *League) Tables() []*player.Table {
	out := make([]*player.Table, 0, len(l.tables))
	for _, t := range l.tables {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

// Option configures Build
type Option func(*builder)

type builder struct {
	league      config.League
	fetcher     scraper.Fetcher
	concurrency int
	log         *logger.Logger
	metrics     *logger.Metrics
}

// WithConcurrency sets how many positions are fetched at once. The default of
// 1 processes positions strictly in order.
func WithConcurrency(n int) Option {
	return func(b *builder) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithLogger sets the logger used for build progress
func WithLogger(l *logger.Logger) Option {
	return func(b *builder) {
		if l != nil {
			b.log = l
		}
	}
}

// WithMetrics sets the tracker that receives stage timings
func WithMetrics(m *logger.Metrics) Option {
	return func(b *builder) {
		if m != nil {
			b.metrics = m
		}
	}
}

// Build fetches, parses and scores every position that has a source.
func Build(ctx context.Context, lg config.League, f scraper.Fetcher, opts ...Option) (*League, error) {
	b := &builder{
		league:      lg,
		fetcher:     f,
		concurrency: 1,
		log:         logger.Default(),
		metrics:     logger.NewMetrics(),
	}
	for _, opt := range opts {
		opt(b)
	}

	l := &League{
		Name:   lg.Name,
		RunID:  uuid.NewString(),
		tables: make([]*player.Table, len(player.Positions)),
	}
	b.log = b.log.With(logger.Fields{"run_id": l.RunID, "league": lg.Name})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, pos := range player.Positions {
		url, ok := lg.Sources[pos]
		if !ok || url == "" {
			b.log.Warn("no source configured, skipping position", logger.Fields{"position": pos.String()})
			continue
		}
		i, pos := i, pos // per-iteration copies; module targets go 1.21 loop semantics
		g.Go(func() error {
			t, err := b.buildPosition(gctx, pos, url)
			if err != nil {
				return err
			}
			l.tables[i] = t
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		b.log.Error("league build failed", nil, err)
		return nil, err
	}

	b.log.Info("league built", logger.Fields{"positions": len(l.Tables())})
	return l, nil
}

func (b *builder) buildPosition(ctx context.Context, pos player.Position, url string) (*player.Table, error) {
	fields := logger.Fields{"position": pos.String(), "url": url}

	start := time.Now()
	markup, err := b.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, &StageError{Position: pos, Stage: StageFetch, Err: err}
	}
	b.metrics.RecordTiming("fetch."+pos.String(), time.Since(start))
	b.log.Debug("page fetched", merge(fields, logger.Fields{"bytes": len(markup)}))

	raw, err := scraper.Extract(bytes.NewReader(markup), pos.IsDefense())
	if err != nil {
		return nil, &StageError{Position: pos, Stage: StageExtract, Err: err}
	}
	if raw.Dropped != "" {
		b.log.Debug("unpaired header fragment skipped", merge(fields, logger.Fields{"fragment": raw.Dropped}))
	}

	table, err := scraper.NormalizeTable(raw, pos)
	if err != nil {
		return nil, &StageError{Position: pos, Stage: StageNormalize, Err: err}
	}
	b.metrics.AddCounter("rows.parsed", int64(table.Len()))

	scored, err := scoring.Score(pos, b.league.Rule(pos), table)
	if err != nil {
		return nil, &StageError{Position: pos, Stage: StageScore, Err: err}
	}
	if scored.Scored {
		scored.SortByPoints()
	}
	b.metrics.RecordTiming("build."+pos.String(), time.Since(start))
	b.metrics.SetGauge("players."+pos.String(), float64(scored.Len()))

	b.log.Info("table ready", merge(fields, logger.Fields{
		"players": scored.Len(),
		"scored":  scored.Scored,
	}))
	return scored, nil
}

// Summary describes a built league in one line
func Summary(l *League) string {
	n := 0
	for _, t := range l.Tables() {
		n += t.Len()
	}
	return fmt.Sprintf("%s: %d positions, %d players", l.Name, len(l.Tables()), n)
}

func merge(a, b logger.Fields) logger.Fields {
	out := make(logger.Fields, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
