package regulations

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comply-backend/internal/shared/server/respond"
)

// Handler exposes the regulation rule set over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers regulation routes on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/regulations/rules", h.list)
}

func (h *Handler) list(c *gin.Context) {
	rules, err := h.svc.Rules()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "regulations_unavailable", "Failed to derive rules from the regulation corpus", err.Error())
		return
	}
	if rules == nil {
		rules = []Rule{}
	}
	respond.OK(c, gin.H{"rules": rules, "count": len(rules)})
}
