package services

import (
	"os"
	"path/filepath"
	"time"

	"github.com/Eman-Abukhater/kanban-board-backend/internal/models"
	"github.com/Eman-Abukhater/kanban-board-backend/pkg/logger"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// UploadSweeper periodically removes files in the upload directory that no
// card references anymore. Files younger than graceAge are left alone so an
// in-flight upload is never swept between Save and commit.
type UploadSweeper struct {
	db       *gorm.DB
	store    *UploadStore
	schedule string
	cron     *cron.Cron
	graceAge time.Duration
}

func NewUploadSweeper(db *gorm.DB, store *UploadStore, schedule string) *UploadSweeper {
	return &UploadSweeper{
		db:       db,
		store:    store,
		schedule: schedule,
		graceAge: time.Hour,
	}
}

// Start registers the sweep on the configured cron schedule.
func (s *UploadSweeper) Start() error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.schedule, s.Sweep); err != nil {
		return err
	}
	s.cron.Start()
	logger.Info().Str("schedule", s.schedule).Msg("upload sweeper started")
	return nil
}

// Stop halts the scheduler; a running sweep finishes.
func (s *UploadSweeper) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Sweep runs one pass. Errors are logged; a failing pass is retried on the
// next schedule tick.
func (s *UploadSweeper) Sweep() {
	var referenced []string
	if err := s.db.Model(&models.Card{}).
		Where("image_path != ''").
		Pluck("image_path", &referenced).Error; err != nil {
		logger.Warn().Err(err).Msg("upload sweep: failed to load referenced images")
		return
	}

	keep := make(map[string]bool, len(referenced))
	for _, name := range referenced {
		keep[name] = true
	}

	entries, err := os.ReadDir(s.store.Dir())
	if err != nil {
		logger.Warn().Err(err).Msg("upload sweep: failed to read upload dir")
		return
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || keep[entry.Name()] {
			continue
		}
		info, err := entry.Info()
		if err != nil || time.Since(info.ModTime()) < s.graceAge {
			continue
		}
		if err := os.Remove(filepath.Join(s.store.Dir(), entry.Name())); err != nil {
			logger.Warn().Err(err).Str("file", entry.Name()).Msg("upload sweep: remove failed")
			continue
		}
		removed++
	}

	if removed > 0 {
		logger.Info().Int("removed", removed).Msg("upload sweep finished")
	}
}
