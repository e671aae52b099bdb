package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"quizforge/internal/dto"
	"quizforge/internal/service"
)

type AttemptController struct {
	submissionService service.SubmissionService
	quizService       service.QuizService
}

func NewAttemptController(ss service.SubmissionService, qs service.QuizService) *AttemptController {
	return &AttemptController{submissionService: ss, quizService: qs}
}

// SubmitAttempt godoc
// @Summary Submit a completed quiz attempt
// @Description Scores the submitted answers, stores the attempt and awards points. Game formats send self-reported results; traditional quizzes are validated server side.
// @Tags Attempts
// @Accept json
// @Produce json
// @Param submission body dto.SubmitAttemptRequest true "Answers and completion metadata"
// @Success 201 {object} dto.SubmitAttemptResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or quiz has no questions"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz-attempts [post]
func (c *AttemptController) SubmitAttempt(ctx *gin.Context) {
	var req dto.SubmitAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAttempt: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.submissionService.SubmitAttempt(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuizNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found"})
		case errors.Is(err, service.ErrNoQuestions):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Quiz has no questions"})
		default:
			log.Error().Err(err).Uint("quizID", req.QuizID).Msg("SubmitAttempt: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit attempt", Details: []string{err.Error()}})
		}
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// GetAttempt godoc
// @Summary Get one attempt with its answer records
// @Tags Attempts
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} dto.AttemptDetailResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /quiz-attempts/{attempt_id} [get]
func (c *AttemptController) GetAttempt(ctx *gin.Context) {
	attemptID, err := strconv.ParseUint(ctx.Param("attempt_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid attempt ID format"})
		return
	}
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	detail, err := c.submissionService.GetAttempt(uint(attemptID), userID)
	if err != nil {
		if errors.Is(err, service.ErrAttemptNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Attempt not found"})
			return
		}
		log.Error().Err(err).Uint64("attemptID", attemptID).Msg("GetAttempt: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load attempt", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// ListAttempts godoc
// @Summary List a user's attempts, newest first
// @Tags Attempts
// @Produce json
// @Param user_id query int true "User ID"
// @Param quiz_id query int false "Filter by quiz"
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]any
// @Failure 400 {object} dto.ErrorResponse
// @Router /quiz-attempts [get]
func (c *AttemptController) ListAttempts(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var quizID *uint
	if raw := ctx.Query("quiz_id"); raw != "" {
		val, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
			return
		}
		id := uint(val)
		quizID = &id
	}
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))

	attempts, total, err := c.submissionService.GetUserAttempts(userID, quizID, limit, offset)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ListAttempts: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list attempts", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"attempts": attempts, "total": total})
}

// GetQuiz godoc
// @Summary Get a quiz with its questions
// @Tags Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id} [get]
func (c *AttemptController) GetQuiz(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return
	}
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	quiz, err := c.quizService.GetQuizWithQuestions(uint(quizID), userID)
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found"})
			return
		}
		log.Error().Err(err).Uint64("quizID", quizID).Msg("GetQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load quiz", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// requireUserID reads the mandatory user_id query parameter. Auth lives in an
// upstream gateway, so the ID arrives as a plain parameter here.
func requireUserID(ctx *gin.Context) (uint, bool) {
	raw := ctx.Query("user_id")
	if raw == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "user_id query parameter is required"})
		return 0, false
	}
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user ID format"})
		return 0, false
	}
	return uint(val), true
}
