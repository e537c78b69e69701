package api

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// Roles carried in bearer-token claims.
const (
	RoleAdmin     = "admin"
	RoleSovereign = "sovereign"
	RoleOperator  = "operator"
)

// Claims is the identity attached to an authenticated request. AgentID is
// the caller's agent identity; when set, it overrides any agent identifier
// supplied in a request body.
type Claims struct {
	Subject string `json:"subject"`
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"is_admin"`
	AgentID string `json:"agent_id,omitempty"`
}

// CanAdjustBudget reports whether the caller may read or mutate the
// persistent daily budget settings.
func (c *Claims) CanAdjustBudget() bool {
	return c.IsAdmin || c.Role == RoleAdmin || c.Role == RoleSovereign
}

// ErrInvalidToken is returned by verifiers for unknown or revoked tokens.
var ErrInvalidToken = errors.New("invalid token")

// TokenVerifier resolves a bearer token to its claims.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

// StaticTokenStore is an in-memory TokenVerifier keyed by opaque token.
// Tokens are provisioned at startup or through operator tooling.
type StaticTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]Claims
}

// NewStaticTokenStore creates an empty token store.
func NewStaticTokenStore() *StaticTokenStore {
	return &StaticTokenStore{tokens: make(map[string]Claims)}
}

// Add registers a token with its claims, replacing any previous entry.
func (s *StaticTokenStore) Add(token string, claims Claims) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = claims
}

// Revoke removes a token.
func (s *StaticTokenStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

// Verify implements TokenVerifier.
func (s *StaticTokenStore) Verify(token string) (*Claims, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	claims, ok := s.tokens[token]
	if !ok {
		return nil, ErrInvalidToken
	}
	c := claims
	return &c, nil
}

const claimsContextKey = "api.claims"

// bearerToken extracts the token from the Authorization header, falling
// back to the token query parameter for WebSocket upgrades.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}
	return c.Query("token")
}

// requireAuth rejects requests without a valid bearer token and stores the
// resolved claims on the request context.
func requireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		claims, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid bearer token"})
			return
		}
		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// requireBudgetRole rejects callers that may not touch budget settings.
// Must run after requireAuth.
func requireBudgetRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFrom(c)
		if claims == nil || !claims.CanAdjustBudget() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "budget access requires admin or sovereign role"})
			return
		}
		c.Next()
	}
}

// claimsFrom returns the claims stored by requireAuth, or nil.
func claimsFrom(c *gin.Context) *Claims {
	v, ok := c.Get(claimsContextKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*Claims)
	return claims
}

// callerAgentID resolves the acting agent identity. The token-derived
// identity wins over a body-supplied one so the audit trail cannot be
// spoofed through request bodies.
func callerAgentID(c *gin.Context, bodyID string) string {
	if claims := claimsFrom(c); claims != nil && claims.AgentID != "" {
		return claims.AgentID
	}
	return bodyID
}
