package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStaticTokenStore(t *testing.T) {
	store := NewStaticTokenStore()
	store.Add("tok-1", Claims{Subject: "alice", Role: RoleAdmin, IsAdmin: true, AgentID: "00001"})

	claims, err := store.Verify("tok-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "00001", claims.AgentID)

	_, err = store.Verify("unknown")
	assert.ErrorIs(t, err, ErrInvalidToken)

	store.Revoke("tok-1")
	_, err = store.Verify("tok-1")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestStaticTokenStoreReturnsCopy(t *testing.T) {
	store := NewStaticTokenStore()
	store.Add("tok-1", Claims{Subject: "alice"})

	first, err := store.Verify("tok-1")
	require.NoError(t, err)
	first.Subject = "mutated"

	second, err := store.Verify("tok-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", second.Subject)
}

func newAuthRouter(verifier TokenVerifier) *gin.Engine {
	r := gin.New()
	r.GET("/protected", requireAuth(verifier), func(c *gin.Context) {
		claims := claimsFrom(c)
		c.JSON(http.StatusOK, gin.H{"subject": claims.Subject, "agent_id": claims.AgentID})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	store := NewStaticTokenStore()
	store.Add("tok-1", Claims{Subject: "alice", AgentID: "10001"})
	r := newAuthRouter(store)

	tests := []struct {
		name       string
		header     string
		query      string
		wantStatus int
	}{
		{name: "missing token", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", header: "tok-1", wantStatus: http.StatusUnauthorized},
		{name: "valid header token", header: "Bearer tok-1", wantStatus: http.StatusOK},
		{name: "valid query token", query: "?token=tok-1", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCallerAgentIDPrefersToken(t *testing.T) {
	store := NewStaticTokenStore()
	store.Add("tok-agent", Claims{Subject: "alice", AgentID: "20001"})
	store.Add("tok-user", Claims{Subject: "bob"})

	r := gin.New()
	r.GET("/whoami", requireAuth(store), func(c *gin.Context) {
		c.String(http.StatusOK, callerAgentID(c, "30001"))
	})

	// Token carries an agent identity: the body-supplied one is ignored.
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer tok-agent")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "20001", w.Body.String())

	// No agent identity in the token: fall back to the body.
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer tok-user")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "30001", w.Body.String())
}

func TestCanAdjustBudget(t *testing.T) {
	assert.True(t, (&Claims{IsAdmin: true}).CanAdjustBudget())
	assert.True(t, (&Claims{Role: RoleAdmin}).CanAdjustBudget())
	assert.True(t, (&Claims{Role: RoleSovereign}).CanAdjustBudget())
	assert.False(t, (&Claims{Role: RoleOperator}).CanAdjustBudget())
}
