package api

import (
	"net/http"

	resdto "hostelops/internal/handler/dto/response"
	"hostelops/internal/handler/httperr"
	"hostelops/internal/handler/middleware"
	"hostelops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OccupancyHandler struct {
	occupancyQueries queries.OccupancyQueries
}

func NewOccupancyHandler(occupancyQueries queries.OccupancyQueries) *OccupancyHandler {
	return &OccupancyHandler{occupancyQueries: occupancyQueries}
}

// @Summary Occupancy reconciliation
// @Description Report rooms whose recorded occupants drift from their booking sum
// @Tags occupancy
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReconciliationResponse
// @Failure 401 {object} map[string]string
// @Router /occupancy/reconciliation [get]
func (h *OccupancyHandler) Reconciliation(c *gin.Context) {
	branchID, ok := middleware.GetBranchID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal error", nil)
		return
	}

	rows, err := h.occupancyQueries.Reconciliation(c.Request.Context(), branchID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	response := make([]*resdto.ReconciliationResponse, len(rows))
	for i, row := range rows {
		response[i] = resdto.FromReconciliationRow(row)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Branch occupancy summary
// @Description Aggregate room and booking counts for the caller's branch
// @Tags occupancy
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.OccupancySummaryResponse
// @Failure 401 {object} map[string]string
// @Router /occupancy/summary [get]
func (h *OccupancyHandler) Summary(c *gin.Context) {
	branchID, ok := middleware.GetBranchID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal error", nil)
		return
	}

	summary, err := h.occupancyQueries.BranchSummary(c.Request.Context(), branchID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOccupancySummary(summary))
}
