package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentium/agentium/pkg/critic"
)

// ReviewRequest is the HTTP request body for POST /api/v1/critics/review.
type ReviewRequest struct {
	TaskID        string `json:"task_id"`
	OutputContent string `json:"output_content"`
	CriticType    string `json:"critic_type"`
	RetryCount    int    `json:"retry_count"`
}

// ReviewResponse is the verdict payload returned by the review endpoint.
type ReviewResponse struct {
	TaskID      string         `json:"task_id"`
	Verdict     string         `json:"verdict"`
	CriticID    string         `json:"critic_id"`
	Reason      string         `json:"reason,omitempty"`
	Suggestions []string       `json:"suggestions,omitempty"`
	Escalation  map[string]any `json:"escalation,omitempty"`
	Cached      bool           `json:"cached"`
}

// reviewOutput handles POST /api/v1/critics/review: runs the critic
// pipeline and persists the outcome before answering.
func (s *Server) reviewOutput(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.TaskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task_id is required"})
		return
	}
	if req.OutputContent == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "output_content is required"})
		return
	}
	criticType := critic.Type(req.CriticType)
	if !criticType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown critic_type " + req.CriticType})
		return
	}
	if req.RetryCount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "retry_count must be non-negative"})
		return
	}

	review, err := s.critics.Review(c.Request.Context(), req.TaskID, criticType, req.OutputContent)
	if err != nil {
		writeError(c, err)
		return
	}

	hash := critic.Fingerprint(req.OutputContent)
	if err := s.reviews.Record(c.Request.Context(), req.TaskID, criticType, hash, req.RetryCount, review); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReviewResponse{
		TaskID:      req.TaskID,
		Verdict:     string(review.Verdict),
		CriticID:    review.CriticID,
		Reason:      review.Reason,
		Suggestions: review.Suggestions,
		Escalation:  review.Escalation,
		Cached:      review.Cached,
	})
}
