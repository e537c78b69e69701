package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentium/agentium/pkg/capability"
)

// CapabilityRequest is the HTTP request body for
// POST /api/v1/capabilities/grant and /revoke. The acting agent is always
// the token-derived identity.
type CapabilityRequest struct {
	TargetID   string `json:"target_id"`
	Capability string `json:"capability"`
	Reason     string `json:"reason,omitempty"`
}

// CapabilityResponse is returned by the grant and revoke endpoints.
type CapabilityResponse struct {
	TargetID   string `json:"target_id"`
	Capability string `json:"capability"`
	Applied    bool   `json:"applied"`
}

func (s *Server) bindCapabilityRequest(c *gin.Context) (CapabilityRequest, capability.Capability, string, bool) {
	var req CapabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, "", "", false
	}
	if req.TargetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_id is required"})
		return req, "", "", false
	}
	parsed, err := capability.Parse(req.Capability)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, "", "", false
	}
	actorID := callerAgentID(c, "")
	if actorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no agent identity in token"})
		return req, "", "", false
	}
	return req, parsed, actorID, true
}

// grantCapability handles POST /api/v1/capabilities/grant. The granter
// must hold grant_capability.
func (s *Server) grantCapability(c *gin.Context) {
	req, parsed, actorID, ok := s.bindCapabilityRequest(c)
	if !ok {
		return
	}
	if err := s.caps.Grant(c.Request.Context(), req.TargetID, parsed, actorID, req.Reason); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, CapabilityResponse{TargetID: req.TargetID, Capability: string(parsed), Applied: true})
}

// revokeCapability handles POST /api/v1/capabilities/revoke. The revoker
// must hold revoke_capability.
func (s *Server) revokeCapability(c *gin.Context) {
	req, parsed, actorID, ok := s.bindCapabilityRequest(c)
	if !ok {
		return
	}
	if err := s.caps.Revoke(c.Request.Context(), req.TargetID, parsed, actorID, req.Reason); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, CapabilityResponse{TargetID: req.TargetID, Capability: string(parsed), Applied: true})
}
