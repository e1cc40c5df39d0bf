package review

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gatehouse/internal/application/review/usecases"
	"gatehouse/internal/interfaces/http/middleware"
	"gatehouse/internal/shared/logger"
	"gatehouse/internal/shared/utils"
)

type ReviewHandler struct {
	submitUC        usecases.SubmitApplicationExecutor
	claimUC         usecases.ClaimApplicationExecutor
	unclaimUC       usecases.UnclaimApplicationExecutor
	decideUC        usecases.DecideApplicationExecutor
	getUC           usecases.GetApplicationExecutor
	resolveCodeUC   usecases.ResolveCodeExecutor
	recentActionsUC usecases.RecentActionsExecutor
	statsUC         usecases.ReviewStatsExecutor
	statsWindowDays int
	logger          logger.Interface
}

func NewReviewHandler(
	submitUC usecases.SubmitApplicationExecutor,
	claimUC usecases.ClaimApplicationExecutor,
	unclaimUC usecases.UnclaimApplicationExecutor,
	decideUC usecases.DecideApplicationExecutor,
	getUC usecases.GetApplicationExecutor,
	resolveCodeUC usecases.ResolveCodeExecutor,
	recentActionsUC usecases.RecentActionsExecutor,
	statsUC usecases.ReviewStatsExecutor,
	statsWindowDays int,
) *ReviewHandler {
	return &ReviewHandler{
		submitUC:        submitUC,
		claimUC:         claimUC,
		unclaimUC:       unclaimUC,
		decideUC:        decideUC,
		getUC:           getUC,
		resolveCodeUC:   resolveCodeUC,
		recentActionsUC: recentActionsUC,
		statsUC:         statsUC,
		statsWindowDays: statsWindowDays,
		logger:          logger.NewLogger(),
	}
}

// SubmitApplication handles POST /applications
func (h *ReviewHandler) SubmitApplication(c *gin.Context) {
	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit application", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Application submitted successfully")
}

// GetApplication handles GET /applications/:id
func (h *ReviewHandler) GetApplication(c *gin.Context) {
	applicationID, err := parseApplicationID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetApplicationQuery{
		ApplicationID: applicationID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ClaimApplication handles POST /applications/:id/claim
func (h *ReviewHandler) ClaimApplication(c *gin.Context) {
	applicationID, err := parseApplicationID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ClaimApplicationCommand{
		ApplicationID: applicationID,
		StaffID:       middleware.StaffID(c),
	}

	result, err := h.claimUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Application claimed successfully", result)
}

// UnclaimApplication handles POST /applications/:id/unclaim
func (h *ReviewHandler) UnclaimApplication(c *gin.Context) {
	applicationID, err := parseApplicationID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UnclaimApplicationCommand{
		ApplicationID: applicationID,
		StaffID:       middleware.StaffID(c),
	}

	result, err := h.unclaimUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Application unclaimed successfully", result)
}

// DecideApplication handles POST /applications/:id/decision
func (h *ReviewHandler) DecideApplication(c *gin.Context) {
	applicationID, err := parseApplicationID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for decide application", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.decideUC.Execute(c.Request.Context(), req.ToCommand(applicationID, middleware.StaffID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Decision applied successfully", result)
}

// ResolveCode handles GET /codes/:code
func (h *ReviewHandler) ResolveCode(c *gin.Context) {
	result, err := h.resolveCodeUC.Execute(c.Request.Context(), usecases.ResolveCodeQuery{
		Code: c.Param("code"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RecentActions handles GET /applications/:id/actions
func (h *ReviewHandler) RecentActions(c *gin.Context) {
	applicationID, err := parseApplicationID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	result, err := h.recentActionsUC.Execute(c.Request.Context(), usecases.RecentActionsQuery{
		ApplicationID: applicationID,
		Limit:         limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ReviewStats handles GET /guilds/:guild_id/stats
func (h *ReviewHandler) ReviewStats(c *gin.Context) {
	guildID := c.Param("guild_id")

	windowDays, _ := strconv.Atoi(c.DefaultQuery("window_days", "0"))
	if windowDays <= 0 {
		windowDays = h.statsWindowDays
	}

	query := usecases.ReviewStatsQuery{
		GuildID:      guildID,
		StaffID:      c.Query("staff_id"),
		WindowStartS: time.Now().Add(-time.Duration(windowDays) * 24 * time.Hour).Unix(),
	}

	result, err := h.statsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
