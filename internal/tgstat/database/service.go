package database

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/whoamihappyhacking/tgstat/internal/analyzer"
	"github.com/whoamihappyhacking/tgstat/internal/errors"
	"github.com/whoamihappyhacking/tgstat/internal/export"
	"github.com/whoamihappyhacking/tgstat/internal/model"
	"github.com/whoamihappyhacking/tgstat/internal/store"
	"github.com/whoamihappyhacking/tgstat/internal/tgstat/conf"
)

var (
	yearRe  = regexp.MustCompile(`^\d{4}$`)
	monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// Gallery limits.
const (
	galleryMaxPhotos = 10
	galleryFeatured  = 2
)

// Service ties the export loader, the analyzer and the store together.
type Service struct {
	conf     *conf.Config
	store    store.Store
	analyzer *analyzer.Analyzer
	watcher  *export.Watcher
}

// NewService builds the application service from config. The analyzer is
// constructed once; the keyword set and time zone are fixed for the process
// lifetime.
func NewService(cfg *conf.Config, st store.Store) (*Service, error) {
	loc, err := cfg.Analysis.Location()
	if err != nil {
		return nil, fmt.Errorf("resolve timezone: %w", err)
	}
	return &Service{
		conf:     cfg,
		store:    st,
		analyzer: analyzer.New(cfg.Analysis.Keywords, loc),
	}, nil
}

// AnalyzeFile loads an export file, runs the aggregation pass and persists
// the result. Returns the stored analysis, last_updated included.
func (s *Service) AnalyzeFile(ctx context.Context, path string) (*model.ChatAnalysis, error) {
	exp, err := export.Load(path)
	if err != nil {
		return nil, err
	}
	analysis, err := s.analyzer.Analyze(exp)
	if err != nil {
		return nil, err
	}
	if err := s.store.Upsert(ctx, analysis); err != nil {
		return nil, err
	}
	log.Info().
		Int64("chat_id", analysis.ChatID).
		Int("total_messages", analysis.TotalMessages).
		Int("months", len(analysis.MonthlyStats)).
		Msg("chat export analyzed")
	return s.store.Get(ctx, analysis.ChatID)
}

// Reanalyze re-runs analysis of the configured export for the given chat.
// The export's own chat id must match the requested one.
func (s *Service) Reanalyze(ctx context.Context, chatID int64) (*model.ChatAnalysis, error) {
	exp, err := export.Load(s.conf.GetExportFile())
	if err != nil {
		return nil, err
	}
	if exp.ID != chatID {
		return nil, errors.NotFound(fmt.Sprintf("export for chat %d", chatID))
	}
	analysis, err := s.analyzer.Analyze(exp)
	if err != nil {
		return nil, err
	}
	if err := s.store.Upsert(ctx, analysis); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, chatID)
}

// GetAnalysis returns the stored analysis for a chat.
func (s *Service) GetAnalysis(ctx context.Context, chatID int64) (*model.ChatAnalysis, error) {
	return s.store.Get(ctx, chatID)
}

// StatsForYear returns the chat's monthly stats within a year, sorted by
// month key.
func (s *Service) StatsForYear(ctx context.Context, chatID int64, year string) ([]model.MonthlyStat, error) {
	if !yearRe.MatchString(year) {
		return nil, errors.InvalidArg("year")
	}
	a, err := s.store.Get(ctx, chatID)
	if err != nil {
		return nil, err
	}
	prefix := year + "-"
	stats := make([]model.MonthlyStat, 0)
	for _, st := range a.MonthlyStats {
		if strings.HasPrefix(st.Month, prefix) {
			stats = append(stats, st)
		}
	}
	if len(stats) == 0 {
		return nil, errors.NotFound(fmt.Sprintf("stats for year %s", year))
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Month < stats[j].Month })
	return stats, nil
}

// StatsForMonth returns the chat's stats for an exact month.
func (s *Service) StatsForMonth(ctx context.Context, chatID int64, month string) (*model.MonthlyStat, error) {
	if !monthRe.MatchString(month) {
		return nil, errors.InvalidArg("month")
	}
	a, err := s.store.Get(ctx, chatID)
	if err != nil {
		return nil, err
	}
	for i := range a.MonthlyStats {
		if a.MonthlyStats[i].Month == month {
			return &a.MonthlyStats[i], nil
		}
	}
	return nil, errors.NotFound(fmt.Sprintf("stats for month %s", month))
}

// Gallery synthesizes placeholder photo records from a month's photo count.
// At most galleryMaxPhotos records, the first galleryFeatured marked featured.
// Photo payloads are never decoded, only counted.
func (s *Service) Gallery(ctx context.Context, chatID int64, month string) ([]model.GalleryPhoto, error) {
	stat, err := s.StatsForMonth(ctx, chatID, month)
	if err != nil {
		return nil, err
	}
	n := stat.PhotoCount
	if n > galleryMaxPhotos {
		n = galleryMaxPhotos
	}
	photos := make([]model.GalleryPhoto, 0, n)
	for i := 0; i < n; i++ {
		photos = append(photos, model.GalleryPhoto{
			ID:       uuid.NewString(),
			Month:    stat.Month,
			Index:    i,
			Featured: i < galleryFeatured,
		})
	}
	return photos, nil
}

// StartWatch begins watching the configured export file and re-analyzing it
// on change. No-op when a watcher is already running.
func (s *Service) StartWatch() error {
	if s.watcher != nil {
		return nil
	}
	path := s.conf.GetExportFile()
	w, err := export.NewWatcher(path, func() {
		if _, err := s.AnalyzeFile(context.Background(), path); err != nil {
			log.Err(err).Str("file", path).Msg("auto re-analysis failed")
		}
	})
	if err != nil {
		return err
	}
	s.watcher = w
	log.Info().Str("file", path).Msg("watching export file")
	return nil
}

// Stop stops the export watcher if one is running.
func (s *Service) Stop() error {
	if s.watcher == nil {
		return nil
	}
	err := s.watcher.Close()
	s.watcher = nil
	return err
}
