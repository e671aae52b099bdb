package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"quizforge/internal/dto"
	"quizforge/internal/scheduler"
	"quizforge/internal/service"
)

type PointsAdminController struct {
	pointsService   service.PointsService
	streakScheduler *scheduler.StreakScheduler
}

func NewPointsAdminController(ps service.PointsService, ss *scheduler.StreakScheduler) *PointsAdminController {
	return &PointsAdminController{pointsService: ps, streakScheduler: ss}
}

// AwardCustomPoints godoc
// @Summary (Admin) Grant arbitrary points to a user
// @Description Writes a custom ledger entry and updates the user's stats, including any level-up it causes.
// @Tags Admin - Points
// @Accept json
// @Produce json
// @Param grant body dto.AwardCustomPointsRequest true "Grant details"
// @Success 200 {object} map[string]any
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/points/award [post]
func (c *PointsAdminController) AwardCustomPoints(ctx *gin.Context) {
	var req dto.AwardCustomPointsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.pointsService.AwardCustomPoints(req.UserID, req.Points, req.Reason, req.Description); err != nil {
		log.Error().Err(err).Uint("userID", req.UserID).Msg("AwardCustomPoints: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to award points", Details: []string{err.Error()}})
		return
	}

	log.Info().Uint("userID", req.UserID).Int("points", req.Points).Str("reason", req.Reason).Msg("Custom points awarded")
	ctx.JSON(http.StatusOK, gin.H{"message": "Points awarded", "user_id": req.UserID, "points": req.Points})
}

// RunStreakSweep godoc
// @Summary (Admin) Run the streak bonus sweep immediately
// @Description Awards streak bonuses to all eligible users without waiting for the scheduled daily run.
// @Tags Admin - Points
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/points/streak-sweep [post]
func (c *PointsAdminController) RunStreakSweep(ctx *gin.Context) {
	awarded, err := c.streakScheduler.Run()
	if err != nil {
		log.Error().Err(err).Msg("RunStreakSweep: sweep failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Streak sweep failed", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Streak sweep complete", "users_awarded": awarded})
}
