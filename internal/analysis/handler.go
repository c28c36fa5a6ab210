package analysis

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"comply-backend/internal/shared/server/respond"
)

// Handler exposes the analysis pipeline and its status over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers analysis routes on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analysis/run", h.run)
	rg.POST("/analysis/schedule", h.schedule)
	rg.GET("/analysis/status", h.status)
	rg.DELETE("/analysis/status/message", h.clearMessage)
}

func (h *Handler) run(c *gin.Context) {
	results, err := h.svc.RunManual(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "analysis_failed", "Manual analysis failed", err.Error())
		return
	}
	respond.OK(c, gin.H{"analysis_results": results})
}

type scheduleRequest struct {
	DelaySeconds int `json:"delay_seconds"`
}

func (h *Handler) schedule(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "Body must be JSON with delay_seconds", err.Error())
		return
	}
	if req.DelaySeconds < 0 {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "delay_seconds must not be negative", nil)
		return
	}

	err := h.svc.Schedule(time.Duration(req.DelaySeconds) * time.Second)
	if errors.Is(err, ErrAnalysisInProgress) {
		respond.Error(c, http.StatusConflict, "analysis_in_progress", "An analysis is already in progress.", nil)
		return
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "schedule_failed", "Failed to schedule analysis", err.Error())
		return
	}
	respond.Accepted(c, gin.H{
		"message": fmt.Sprintf("One-time analysis scheduled to run in %d seconds.", req.DelaySeconds),
	})
}

func (h *Handler) status(c *gin.Context) {
	respond.OK(c, h.svc.Status.Snapshot())
}

func (h *Handler) clearMessage(c *gin.Context) {
	h.svc.Status.ClearMessage()
	respond.OK(c, gin.H{"message": "Analysis status message cleared."})
}
