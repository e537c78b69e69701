package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentium/agentium/pkg/hierarchy"
	"github.com/agentium/agentium/pkg/orchestrator"
)

// maxChatMessageChars bounds a single chat submission.
const maxChatMessageChars = 100_000

// SendChatRequest is the HTTP request body for POST /api/v1/chat/send.
// AgentID is honored only when the bearer token carries no agent identity.
type SendChatRequest struct {
	Message string `json:"message"`
	Stream  bool   `json:"stream"`
	AgentID string `json:"agent_id,omitempty"`
}

// SendChatResponse is the HTTP response for POST /api/v1/chat/send.
type SendChatResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Path      string `json:"path,omitempty"`
	LatencyMs int64  `json:"latency_ms"`
}

// sendChat handles POST /api/v1/chat/send. The message becomes an
// orchestrated intent addressed to the Head agent.
func (s *Server) sendChat(c *gin.Context) {
	var req SendChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	if len(req.Message) > maxChatMessageChars {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message exceeds maximum length of 100,000 characters"})
		return
	}

	sourceID := callerAgentID(c, req.AgentID)
	if sourceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no agent identity in token or body"})
		return
	}

	result, err := s.intents.ProcessIntent(c.Request.Context(), orchestrator.IntentRequest{
		RawInput: req.Message,
		SourceID: sourceID,
		TargetID: hierarchy.HeadID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SendChatResponse{
		Success:   result.Success,
		MessageID: result.MessageID,
		Path:      result.Path,
		LatencyMs: result.LatencyMs,
	})
}
