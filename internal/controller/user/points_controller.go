package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"quizforge/internal/dto"
	"quizforge/internal/service"
)

type PointsController struct {
	pointsService      service.PointsService
	leaderboardService service.LeaderboardService
	cfg                service.PointsConfig
	levels             service.LevelEngine
}

func NewPointsController(ps service.PointsService, ls service.LeaderboardService, cfg service.PointsConfig, levels service.LevelEngine) *PointsController {
	return &PointsController{pointsService: ps, leaderboardService: ls, cfg: cfg, levels: levels}
}

// GetUserStats godoc
// @Summary Get a user's gamification stats with rank and level progress
// @Tags Points
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {object} dto.UserStatsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /points/stats [get]
func (c *PointsController) GetUserStats(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	stats, err := c.leaderboardService.GetUserStatsWithRank(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetUserStats: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load stats", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetPointsHistory godoc
// @Summary List a user's points ledger entries, newest first
// @Tags Points
// @Produce json
// @Param user_id query int true "User ID"
// @Param limit query int false "Max entries (default 50)"
// @Success 200 {array} dto.PointsEntryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /points/history [get]
func (c *PointsController) GetPointsHistory(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))

	entries, err := c.pointsService.GetPointsHistory(userID, limit)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetPointsHistory: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load history", Details: []string{err.Error()}})
		return
	}

	responses := make([]dto.PointsEntryResponse, 0, len(entries))
	if err := copier.Copy(&responses, &entries); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to map history"})
		return
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetLeaderboard godoc
// @Summary Top users by total points
// @Tags Points
// @Produce json
// @Param limit query int false "Entries to return (default 10, max 100)"
// @Success 200 {array} dto.LeaderboardEntry
// @Router /points/leaderboard [get]
func (c *PointsController) GetLeaderboard(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	entries, err := c.leaderboardService.GetLeaderboard(limit)
	if err != nil {
		log.Error().Err(err).Msg("GetLeaderboard: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load leaderboard", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// GetGlobalStats godoc
// @Summary Platform-wide gamification aggregates
// @Tags Points
// @Produce json
// @Success 200 {object} dto.GlobalStatsResponse
// @Router /points/global [get]
func (c *PointsController) GetGlobalStats(ctx *gin.Context) {
	stats, err := c.leaderboardService.GetGlobalStats()
	if err != nil {
		log.Error().Err(err).Msg("GetGlobalStats: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load global stats", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetPointsConfig godoc
// @Summary Point values and level thresholds in effect
// @Tags Points
// @Produce json
// @Success 200 {object} dto.PointsConfigResponse
// @Router /points/config [get]
func (c *PointsController) GetPointsConfig(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.PointsConfigResponse{
		PointValues:     c.cfg.Values(),
		LevelThresholds: c.cfg.LevelThresholds,
		MaxLevel:        c.levels.MaxLevel(),
	})
}

// CalculatePoints godoc
// @Summary Preview the points a score would earn
// @Description Returns the breakdown for a hypothetical result without writing to the ledger. Level-up bonuses are excluded.
// @Tags Points
// @Accept json
// @Produce json
// @Param calculation body dto.CalculatePointsRequest true "Score to evaluate"
// @Success 200 {object} dto.PointsCalculation
// @Failure 400 {object} dto.ErrorResponse
// @Router /points/calculate [post]
func (c *PointsController) CalculatePoints(ctx *gin.Context) {
	var req dto.CalculatePointsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	isFirstQuiz := ctx.Query("first_quiz") == "true"
	calc := c.pointsService.CalculateQuizPoints(req.Score, req.TotalQuestions, req.CorrectAnswers, isFirstQuiz)
	ctx.JSON(http.StatusOK, calc)
}
