package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentium/agentium/pkg/executor"
)

// ExecuteRequest is the HTTP request body for
// POST /api/v1/remote-executor/execute. AgentID is honored only when the
// bearer token carries no agent identity.
type ExecuteRequest struct {
	Code           string   `json:"code"`
	AgentID        string   `json:"agent_id,omitempty"`
	TaskID         string   `json:"task_id,omitempty"`
	Language       string   `json:"language,omitempty"`
	Dependencies   []string `json:"dependencies,omitempty"`
	InputData      any      `json:"input_data,omitempty"`
	TimeoutSeconds int      `json:"timeout_seconds,omitempty"`
	MemoryLimitMB  int      `json:"memory_limit_mb,omitempty"`
	CPULimit       float64  `json:"cpu_limit,omitempty"`
	NetworkAccess  bool     `json:"network_access,omitempty"`
}

// executeCode handles POST /api/v1/remote-executor/execute. A failed
// execution is still a 200: the report carries status=failed and the
// security result. Only transport and policy errors map to error statuses.
func (s *Server) executeCode(c *gin.Context) {
	var req ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	agentID := callerAgentID(c, req.AgentID)
	if agentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no agent identity in token or body"})
		return
	}

	report, err := s.runner.Execute(c.Request.Context(), executor.Request{
		Code:           req.Code,
		AgentID:        agentID,
		TaskID:         req.TaskID,
		Language:       req.Language,
		Dependencies:   req.Dependencies,
		InputData:      req.InputData,
		TimeoutSeconds: req.TimeoutSeconds,
		MemoryLimitMB:  req.MemoryLimitMB,
		CPULimit:       req.CPULimit,
		NetworkAccess:  req.NetworkAccess,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
