package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agentium/agentium/pkg/services"
)

// BudgetResponse is returned by GET /api/v1/budget. Zero limits mean
// unlimited.
type BudgetResponse struct {
	DailyTokenLimit int     `json:"daily_token_limit"`
	DailyCostLimit  float64 `json:"daily_cost_limit"`
	TokensToday     int     `json:"tokens_today"`
	CostToday       float64 `json:"cost_today"`
}

// UpdateBudgetRequest is the HTTP request body for PUT /api/v1/budget.
// Nil fields are left unchanged.
type UpdateBudgetRequest struct {
	DailyTokenLimit *int     `json:"daily_token_limit,omitempty"`
	DailyCostLimit  *float64 `json:"daily_cost_limit,omitempty"`
}

// getBudget handles GET /api/v1/budget. Today's figures come from logged
// usage rows, not estimates.
func (s *Server) getBudget(c *gin.Context) {
	ctx := c.Request.Context()

	tokenLimit, err := s.settings.DailyTokenLimit(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	costLimit, err := s.settings.DailyCostLimit(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	today, err := s.usage.ForDay(ctx, time.Now())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{
		DailyTokenLimit: tokenLimit,
		DailyCostLimit:  costLimit,
		TokensToday:     today.Tokens,
		CostToday:       today.Cost,
	})
}

// putBudget handles PUT /api/v1/budget. The updater recorded with each
// setting is the token subject.
func (s *Server) putBudget(c *gin.Context) {
	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DailyTokenLimit == nil && req.DailyCostLimit == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no budget fields to update"})
		return
	}
	if req.DailyTokenLimit != nil && *req.DailyTokenLimit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "daily_token_limit must be non-negative"})
		return
	}
	if req.DailyCostLimit != nil && *req.DailyCostLimit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "daily_cost_limit must be non-negative"})
		return
	}

	updatedBy := "api-client"
	if claims := claimsFrom(c); claims != nil && claims.Subject != "" {
		updatedBy = claims.Subject
	}

	ctx := c.Request.Context()
	if req.DailyTokenLimit != nil {
		value := strconv.Itoa(*req.DailyTokenLimit)
		if err := s.settings.Set(ctx, services.SettingDailyTokenLimit, value, updatedBy); err != nil {
			writeError(c, err)
			return
		}
	}
	if req.DailyCostLimit != nil {
		value := strconv.FormatFloat(*req.DailyCostLimit, 'f', -1, 64)
		if err := s.settings.Set(ctx, services.SettingDailyCostLimit, value, updatedBy); err != nil {
			writeError(c, err)
			return
		}
	}

	s.getBudget(c)
}
