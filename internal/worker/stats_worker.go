package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shahisiiii/quiz-platform/internal/cache"
	"github.com/shahisiiii/quiz-platform/internal/config"
	"github.com/shahisiiii/quiz-platform/internal/repository"
)

// StatsWorker periodically recomputes submission statistics for active
// quizzes and rewrites the cached entries, so admin dashboards rarely pay
// for the aggregate query. The cache stays correct without the worker; it
// only keeps the hot keys warm.
type StatsWorker struct {
	quizRepo       *repository.QuizRepository
	submissionRepo *repository.SubmissionRepository
	store          *cache.Store
	interval       time.Duration
	log            zerolog.Logger
}

// NewStatsWorker creates a new StatsWorker.
func NewStatsWorker(
	quizRepo *repository.QuizRepository,
	submissionRepo *repository.SubmissionRepository,
	store *cache.Store,
	interval time.Duration,
	log zerolog.Logger,
) *StatsWorker {
	return &StatsWorker{
		quizRepo:       quizRepo,
		submissionRepo: submissionRepo,
		store:          store,
		interval:       interval,
		log:            log.With().Str("component", "stats_worker").Logger(),
	}
}

// Start runs the refresh loop until ctx is cancelled.
func (w *StatsWorker) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Msg("StatsWorker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("StatsWorker stopping")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *StatsWorker) refresh(ctx context.Context) {
	quizzes, err := w.quizRepo.List(ctx, true)
	if err != nil {
		w.log.Error().Err(err).Msg("stats refresh: listing quizzes failed")
		return
	}

	refreshed := 0
	for _, quiz := range quizzes {
		stats, err := w.submissionRepo.Stats(ctx, quiz.ID)
		if err != nil {
			w.log.Warn().Err(err).Int64("quiz_id", quiz.ID).Msg("stats refresh failed")
			continue
		}
		w.store.SetJSON(ctx, config.CacheKey.QuizStats(quiz.ID), stats, config.QuizStatsTTL)
		refreshed++
	}

	w.log.Debug().Int("refreshed", refreshed).Msg("stats refresh cycle complete")
}
