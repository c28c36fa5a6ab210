package reports

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"comply-backend/internal/shared/server/respond"
)

// Handler exposes persisted reports and dashboard statistics over HTTP.
type Handler struct {
	repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{repo: repo}
}

// RegisterRoutes registers report routes on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports", h.list)
	rg.GET("/reports/:id", h.get)
	rg.GET("/stats", h.stats)
}

func (h *Handler) list(c *gin.Context) {
	all, err := h.repo.ListReports(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "reports_unavailable", "Failed to load reports", err.Error())
		return
	}
	if all == nil {
		all = []Report{}
	}
	respond.OK(c, gin.H{"reports": all, "count": len(all)})
}

func (h *Handler) get(c *gin.Context) {
	report, err := h.repo.GetReport(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "report_not_found", "No report with that id", nil)
		return
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "reports_unavailable", "Failed to load report", err.Error())
		return
	}
	respond.OK(c, report)
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := Stats(c.Request.Context(), h.repo)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "stats_unavailable", "Failed to compute statistics", err.Error())
		return
	}
	respond.OK(c, stats)
}
