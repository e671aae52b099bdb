package service

import (
	"fmt"
	"math"

	"github.com/jinzhu/copier"

	"quizforge/internal/dto"
	"quizforge/internal/repository"
)

// LeaderboardService serves the ranking and aggregate read paths on top of
// the denormalized stats rows.
type LeaderboardService interface {
	GetLeaderboard(limit int) ([]dto.LeaderboardEntry, error)
	GetUserRank(userID uint) (int, error)
	GetUserStatsWithRank(userID uint) (*dto.UserStatsResponse, error)
	GetGlobalStats() (*dto.GlobalStatsResponse, error)
}

type leaderboardService struct {
	statsRepo repository.UserStatsRepository
	points    PointsService
	levels    LevelEngine
	cfg       PointsConfig
}

func NewLeaderboardService(statsRepo repository.UserStatsRepository, points PointsService, levels LevelEngine, cfg PointsConfig) LeaderboardService {
	return &leaderboardService{statsRepo: statsRepo, points: points, levels: levels, cfg: cfg}
}

func (s *leaderboardService) GetLeaderboard(limit int) ([]dto.LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	rows, err := s.statsRepo.TopByPoints(limit)
	if err != nil {
		return nil, fmt.Errorf("loading leaderboard: %w", err)
	}

	entries := make([]dto.LeaderboardEntry, 0, len(rows))
	if err := copier.Copy(&entries, &rows); err != nil {
		return nil, fmt.Errorf("mapping leaderboard: %w", err)
	}
	return entries, nil
}

// GetUserRank is 1 plus the number of users with strictly more points, so
// ties share a rank.
func (s *leaderboardService) GetUserRank(userID uint) (int, error) {
	stats, err := s.points.GetUserStats(userID)
	if err != nil {
		return 0, err
	}
	ahead, err := s.statsRepo.CountWithMorePoints(stats.TotalPoints)
	if err != nil {
		return 0, fmt.Errorf("computing rank: %w", err)
	}
	return int(ahead) + 1, nil
}

func (s *leaderboardService) GetUserStatsWithRank(userID uint) (*dto.UserStatsResponse, error) {
	stats, err := s.points.GetUserStats(userID)
	if err != nil {
		return nil, err
	}
	ahead, err := s.statsRepo.CountWithMorePoints(stats.TotalPoints)
	if err != nil {
		return nil, fmt.Errorf("computing rank: %w", err)
	}

	resp := &dto.UserStatsResponse{}
	if err := copier.Copy(resp, stats); err != nil {
		return nil, fmt.Errorf("mapping stats: %w", err)
	}
	resp.Rank = int(ahead) + 1
	resp.LevelProgress = s.levelProgress(stats.Level, stats.TotalPoints)
	return resp, nil
}

// levelProgress places the user's points between the floor of their current
// level and the next threshold. At max level progress is pinned to 100.
func (s *leaderboardService) levelProgress(level, points int) dto.LevelProgress {
	progress := dto.LevelProgress{
		CurrentLevel:       level,
		CurrentPoints:      points,
		PointsForNextLevel: remainingToNext(s.levels, level, points),
	}

	next := s.levels.PointsForNextLevel(level)
	if next == nil {
		progress.ProgressPercentage = 100
		return progress
	}

	floor := 0
	if level-1 < len(s.cfg.LevelThresholds) {
		floor = s.cfg.LevelThresholds[level-1]
	}
	span := *next - floor
	if span > 0 {
		pct := float64(points-floor) / float64(span) * 100
		progress.ProgressPercentage = math.Round(math.Max(0, math.Min(100, pct))*100) / 100
	}
	return progress
}

func (s *leaderboardService) GetGlobalStats() (*dto.GlobalStatsResponse, error) {
	agg, err := s.statsRepo.Aggregates()
	if err != nil {
		return nil, fmt.Errorf("loading global stats: %w", err)
	}
	return &dto.GlobalStatsResponse{
		TotalUsers:            agg.TotalUsers,
		TotalPointsAwarded:    agg.TotalPoints,
		TotalQuizzesCompleted: agg.TotalQuizzes,
		AverageUserLevel:      math.Round(agg.AverageLevel*100) / 100,
		HighestLevelAchieved:  agg.HighestLevel,
		HighestPoints:         agg.HighestPoints,
		LongestStreak:         agg.LongestStreak,
	}, nil
}
