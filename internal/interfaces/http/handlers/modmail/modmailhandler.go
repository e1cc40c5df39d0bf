package modmail

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appmodmail "gatehouse/internal/application/modmail"
	"gatehouse/internal/shared/logger"
	"gatehouse/internal/shared/utils"
)

type OpenThreadRequest struct {
	ThreadID      string `json:"thread_id" binding:"required,max=32"`
	ApplicationID uint   `json:"application_id" binding:"required"`
}

type ThreadStatusResponse struct {
	ThreadID string `json:"thread_id"`
	Open     bool   `json:"open"`
}

type ModmailHandler struct {
	cache  *appmodmail.ThreadCache
	logger logger.Interface
}

func NewModmailHandler(cache *appmodmail.ThreadCache) *ModmailHandler {
	return &ModmailHandler{
		cache:  cache,
		logger: logger.NewLogger(),
	}
}

// OpenThread handles POST /modmail/threads
func (h *ModmailHandler) OpenThread(c *gin.Context) {
	var req OpenThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for open thread", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	if err := h.cache.Open(c.Request.Context(), req.ThreadID, req.ApplicationID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, ThreadStatusResponse{ThreadID: req.ThreadID, Open: true},
		"Thread opened successfully")
}

// CloseThread handles POST /modmail/threads/:thread_id/close
func (h *ModmailHandler) CloseThread(c *gin.Context) {
	threadID := c.Param("thread_id")

	if err := h.cache.Close(c.Request.Context(), threadID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Thread closed successfully",
		ThreadStatusResponse{ThreadID: threadID, Open: false})
}

// ThreadStatus handles GET /modmail/threads/:thread_id
func (h *ModmailHandler) ThreadStatus(c *gin.Context) {
	threadID := c.Param("thread_id")

	utils.SuccessResponse(c, http.StatusOK, "", ThreadStatusResponse{
		ThreadID: threadID,
		Open:     h.cache.IsOpen(threadID),
	})
}
