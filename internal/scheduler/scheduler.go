package scheduler

import (
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog/log"

	"quizforge/config"
	"quizforge/internal/repository"
	"quizforge/internal/service"
)

// StreakScheduler runs the daily streak-bonus sweep. Users who completed a
// quiz yesterday and whose streak has reached the configured minimum get a
// bonus proportional to the streak length.
type StreakScheduler struct {
	cron      *gocron.Scheduler
	cfg       *config.Config
	statsRepo repository.UserStatsRepository
	points    service.PointsService
}

func NewStreakScheduler(cfg *config.Config, statsRepo repository.UserStatsRepository, points service.PointsService) *StreakScheduler {
	return &StreakScheduler{
		cron:      gocron.NewScheduler(time.UTC),
		cfg:       cfg,
		statsRepo: statsRepo,
		points:    points,
	}
}

// Start registers the daily job and runs the scheduler in the background.
func (s *StreakScheduler) Start() error {
	if !s.cfg.Streak.BonusEnabled {
		log.Info().Msg("Streak bonus job disabled")
		return nil
	}
	if _, err := s.cron.Every(1).Day().At("00:05").Do(func() {
		if _, err := s.Run(); err != nil {
			log.Error().Err(err).Msg("Streak bonus sweep failed")
		}
	}); err != nil {
		return err
	}
	s.cron.StartAsync()
	log.Info().Msg("Streak bonus scheduler started")
	return nil
}

func (s *StreakScheduler) Stop() {
	s.cron.Stop()
}

// Run performs one sweep and returns how many users were awarded. Exposed so
// an admin endpoint can trigger it outside the schedule.
func (s *StreakScheduler) Run() (int, error) {
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")

	candidates, err := s.statsRepo.StreakCandidates(yesterday, s.cfg.Streak.BonusMinDays)
	if err != nil {
		return 0, err
	}

	awarded := 0
	for _, c := range candidates {
		bonus, err := s.points.AwardStreakBonus(c.UserID, c.CurrentStreak)
		if err != nil {
			log.Error().Err(err).Uint("userID", c.UserID).Msg("Streak bonus award failed")
			continue
		}
		awarded++
		log.Info().
			Uint("userID", c.UserID).
			Int("streak", c.CurrentStreak).
			Int("bonus", bonus).
			Msg("Streak bonus awarded")
	}
	return awarded, nil
}
