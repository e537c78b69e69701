package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agentium/agentium/pkg/bus"
	"github.com/agentium/agentium/pkg/capability"
	"github.com/agentium/agentium/pkg/guard"
	"github.com/agentium/agentium/pkg/services"
	"github.com/agentium/agentium/pkg/taskflow"
)

// writeError maps domain errors to HTTP responses. Policy rejections
// (hierarchy, capability, constitution) are 403, rate limiting is 429 with
// a Retry-After header, malformed input and illegal state transitions are
// 400, everything unrecognized is a 500.
func writeError(c *gin.Context, err error) {
	var (
		blockErr     *guard.BlockError
		deniedErr    *capability.DeniedError
		hierarchyErr *bus.HierarchyViolationError
		rateErr      *bus.RateLimitError
		loopErr      *bus.RoutingLoopError
		validErr     *services.ValidationError
		stateErr     *taskflow.IllegalStateTransition
	)

	switch {
	case errors.As(err, &blockErr):
		c.JSON(http.StatusForbidden, gin.H{
			"error":        blockErr.Decision.Explanation,
			"article_refs": blockErr.Decision.ArticleRefs,
		})
	case errors.As(err, &deniedErr):
		c.JSON(http.StatusForbidden, gin.H{"error": deniedErr.Error()})
	case errors.As(err, &hierarchyErr):
		c.JSON(http.StatusForbidden, gin.H{"error": hierarchyErr.Error()})
	case errors.As(err, &rateErr):
		seconds := int(rateErr.RetryAfter.Seconds())
		if seconds < 1 {
			seconds = 1
		}
		c.Header("Retry-After", strconv.Itoa(seconds))
		c.JSON(http.StatusTooManyRequests, gin.H{"error": rateErr.Error()})
	case errors.As(err, &loopErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": loopErr.Error()})
	case errors.As(err, &validErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
	case errors.As(err, &stateErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": stateErr.Error()})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		slog.Error("Unexpected API error", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
