package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentium/agentium/pkg/audit"
	"github.com/agentium/agentium/pkg/bus"
	"github.com/agentium/agentium/pkg/capability"
	"github.com/agentium/agentium/pkg/critic"
	"github.com/agentium/agentium/pkg/executor"
	"github.com/agentium/agentium/pkg/orchestrator"
	"github.com/agentium/agentium/pkg/services"
)

type fakeIntents struct {
	result *orchestrator.RouteResult
	err    error
	last   orchestrator.IntentRequest
}

func (f *fakeIntents) ProcessIntent(_ context.Context, req orchestrator.IntentRequest) (*orchestrator.RouteResult, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeRunner struct {
	report *executor.Report
	err    error
	last   executor.Request
}

func (f *fakeRunner) Execute(_ context.Context, req executor.Request) (*executor.Report, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

type fakeCritics struct {
	review *critic.Review
	err    error
}

func (f *fakeCritics) Review(_ context.Context, _ string, _ critic.Type, _ string) (*critic.Review, error) {
	return f.review, f.err
}

type recordedReview struct {
	taskID  string
	attempt int
	verdict critic.Verdict
}

type fakeReviewStore struct {
	recorded []recordedReview
}

func (f *fakeReviewStore) Record(_ context.Context, taskID string, _ critic.Type, _ string, attempt int, review *critic.Review) error {
	f.recorded = append(f.recorded, recordedReview{taskID: taskID, attempt: attempt, verdict: review.Verdict})
	return nil
}

type fakeSettings struct {
	tokenLimit int
	costLimit  float64
	set        map[string]string
}

func (f *fakeSettings) DailyTokenLimit(context.Context) (int, error)  { return f.tokenLimit, nil }
func (f *fakeSettings) DailyCostLimit(context.Context) (float64, error) {
	return f.costLimit, nil
}
func (f *fakeSettings) Set(_ context.Context, key, value, _ string) error {
	if f.set == nil {
		f.set = make(map[string]string)
	}
	f.set[key] = value
	return nil
}

type fakeUsage struct {
	usage services.DailyUsage
}

func (f *fakeUsage) ForDay(context.Context, time.Time) (*services.DailyUsage, error) {
	u := f.usage
	return &u, nil
}

// testHarness bundles a server with its fakes.
type testHarness struct {
	router   *gin.Engine
	intents  *fakeIntents
	runner   *fakeRunner
	critics  *fakeCritics
	reviews  *fakeReviewStore
	settings *fakeSettings
	usage    *fakeUsage
	caps     *capability.Registry
}

func newTestHarness() *testHarness {
	h := &testHarness{
		intents:  &fakeIntents{result: &orchestrator.RouteResult{Success: true, MessageID: "m-1", Path: "30001 -> 00001"}},
		runner:   &fakeRunner{report: &executor.Report{ExecutionID: "e-1", Status: executor.StatusCompleted}},
		critics:  &fakeCritics{review: &critic.Review{Verdict: critic.VerdictPass, CriticID: "10002"}},
		reviews:  &fakeReviewStore{},
		settings: &fakeSettings{tokenLimit: 1_000_000, costLimit: 50},
		usage:    &fakeUsage{usage: services.DailyUsage{Tokens: 1234, Cost: 0.42}},
		caps:     capability.NewRegistry(capability.NewMemoryOverrideStore(), audit.NewMemoryRecorder()),
	}

	verifier := NewStaticTokenStore()
	verifier.Add("head-token", Claims{Subject: "root", UserID: "u-1", Role: RoleSovereign, IsAdmin: true, AgentID: "00001"})
	verifier.Add("task-token", Claims{Subject: "worker", UserID: "u-2", Role: RoleOperator, AgentID: "30001"})
	verifier.Add("user-token", Claims{Subject: "observer", UserID: "u-3", Role: RoleOperator})

	server := NewServer(Deps{
		Intents:      h.intents,
		Runner:       h.runner,
		Capabilities: h.caps,
		Critics:      h.critics,
		Reviews:      h.reviews,
		Settings:     h.settings,
		Usage:        h.usage,
		Verifier:     verifier,
	})
	h.router = server.Router()
	return h
}

func (h *testHarness) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestSendChat(t *testing.T) {
	h := newTestHarness()

	w := h.do(t, http.MethodPost, "/api/v1/chat/send", "task-token", gin.H{"message": "status report ready"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[SendChatResponse](t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "m-1", resp.MessageID)

	// The intent is addressed to the Head from the token's agent.
	assert.Equal(t, "30001", h.intents.last.SourceID)
	assert.Equal(t, "00001", h.intents.last.TargetID)
	assert.Equal(t, "status report ready", h.intents.last.RawInput)
}

func TestSendChatTokenIdentityOverridesBody(t *testing.T) {
	h := newTestHarness()

	w := h.do(t, http.MethodPost, "/api/v1/chat/send", "task-token",
		gin.H{"message": "hello", "agent_id": "20001"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "30001", h.intents.last.SourceID)
}

func TestSendChatValidation(t *testing.T) {
	h := newTestHarness()

	w := h.do(t, http.MethodPost, "/api/v1/chat/send", "task-token", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(t, http.MethodPost, "/api/v1/chat/send", "", gin.H{"message": "hi"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// No agent identity anywhere.
	w = h.do(t, http.MethodPost, "/api/v1/chat/send", "user-token", gin.H{"message": "hi"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendChatPolicyErrors(t *testing.T) {
	h := newTestHarness()

	h.intents.err = &bus.HierarchyViolationError{SenderID: "30001", RecipientID: "00001", Direction: "up"}
	w := h.do(t, http.MethodPost, "/api/v1/chat/send", "task-token", gin.H{"message": "hi"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	h.intents.err = &bus.RateLimitError{SenderID: "30001", Tier: "task", RetryAfter: 2 * time.Second}
	w = h.do(t, http.MethodPost, "/api/v1/chat/send", "task-token", gin.H{"message": "hi"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get("Retry-After"))
}

func TestExecuteCode(t *testing.T) {
	h := newTestHarness()

	w := h.do(t, http.MethodPost, "/api/v1/remote-executor/execute", "task-token", gin.H{
		"code":            "result = 40 + 2",
		"timeout_seconds": 30,
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[executor.Report](t, w)
	assert.Equal(t, "e-1", resp.ExecutionID)
	assert.Equal(t, "30001", h.runner.last.AgentID)
	assert.Equal(t, 30, h.runner.last.TimeoutSeconds)
}

func TestExecuteCodeFailedReportIsStill200(t *testing.T) {
	h := newTestHarness()
	h.runner.report = &executor.Report{
		ExecutionID: "e-2",
		Status:      executor.StatusFailed,
		Error:       "static analysis rejected the submission",
	}

	w := h.do(t, http.MethodPost, "/api/v1/remote-executor/execute", "task-token", gin.H{"code": "import os"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[executor.Report](t, w)
	assert.Equal(t, executor.StatusFailed, resp.Status)
}

func TestExecuteCodeRequiresCode(t *testing.T) {
	h := newTestHarness()
	w := h.do(t, http.MethodPost, "/api/v1/remote-executor/execute", "task-token", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGrantCapability(t *testing.T) {
	h := newTestHarness()

	w := h.do(t, http.MethodPost, "/api/v1/capabilities/grant", "head-token", gin.H{
		"target_id":  "30001",
		"capability": "network_access",
		"reason":     "needs external data",
	})
	require.Equal(t, http.StatusOK, w.Code)

	effective, err := h.caps.Effective(context.Background(), "30001")
	require.NoError(t, err)
	assert.True(t, effective.Has(capability.NetworkAccess))
}

func TestGrantCapabilityDeniedForTaskAgent(t *testing.T) {
	h := newTestHarness()

	// Task agents do not hold grant_capability.
	w := h.do(t, http.MethodPost, "/api/v1/capabilities/grant", "task-token", gin.H{
		"target_id":  "30002",
		"capability": "network_access",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRevokeCapability(t *testing.T) {
	h := newTestHarness()

	w := h.do(t, http.MethodPost, "/api/v1/capabilities/revoke", "head-token", gin.H{
		"target_id":  "30001",
		"capability": "execute_code",
		"reason":     "incident response",
	})
	require.Equal(t, http.StatusOK, w.Code)

	effective, err := h.caps.Effective(context.Background(), "30001")
	require.NoError(t, err)
	assert.False(t, effective.Has(capability.ExecuteCode))
}

func TestCapabilityValidation(t *testing.T) {
	h := newTestHarness()

	w := h.do(t, http.MethodPost, "/api/v1/capabilities/grant", "head-token", gin.H{
		"target_id":  "30001",
		"capability": "rm_dash_rf",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(t, http.MethodPost, "/api/v1/capabilities/grant", "head-token", gin.H{
		"capability": "network_access",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewOutput(t *testing.T) {
	h := newTestHarness()
	h.critics.review = &critic.Review{
		Verdict:     critic.VerdictReject,
		CriticID:    "10002",
		Reason:      "missing error handling",
		Suggestions: []string{"wrap the provider call"},
	}

	w := h.do(t, http.MethodPost, "/api/v1/critics/review", "head-token", gin.H{
		"task_id":        "task-7",
		"output_content": "def handler(): pass",
		"critic_type":    "code-critic",
		"retry_count":    2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[ReviewResponse](t, w)
	assert.Equal(t, "reject", resp.Verdict)
	assert.Equal(t, "10002", resp.CriticID)
	assert.Equal(t, []string{"wrap the provider call"}, resp.Suggestions)

	// The outcome is persisted with the submitted attempt number.
	require.Len(t, h.reviews.recorded, 1)
	assert.Equal(t, "task-7", h.reviews.recorded[0].taskID)
	assert.Equal(t, 2, h.reviews.recorded[0].attempt)
	assert.Equal(t, critic.VerdictReject, h.reviews.recorded[0].verdict)
}

func TestReviewOutputValidation(t *testing.T) {
	h := newTestHarness()

	w := h.do(t, http.MethodPost, "/api/v1/critics/review", "head-token", gin.H{
		"task_id":        "task-7",
		"output_content": "x",
		"critic_type":    "vibe-critic",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(t, http.MethodPost, "/api/v1/critics/review", "head-token", gin.H{
		"output_content": "x",
		"critic_type":    "code-critic",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBudget(t *testing.T) {
	h := newTestHarness()

	w := h.do(t, http.MethodGet, "/api/v1/budget", "head-token", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[BudgetResponse](t, w)
	assert.Equal(t, 1_000_000, resp.DailyTokenLimit)
	assert.Equal(t, 50.0, resp.DailyCostLimit)
	assert.Equal(t, 1234, resp.TokensToday)
	assert.InDelta(t, 0.42, resp.CostToday, 1e-9)
}

func TestBudgetRequiresAdminOrSovereign(t *testing.T) {
	h := newTestHarness()

	w := h.do(t, http.MethodGet, "/api/v1/budget", "task-token", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = h.do(t, http.MethodPut, "/api/v1/budget", "task-token", gin.H{"daily_token_limit": 5})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPutBudget(t *testing.T) {
	h := newTestHarness()

	w := h.do(t, http.MethodPut, "/api/v1/budget", "head-token", gin.H{
		"daily_token_limit": 750_000,
		"daily_cost_limit":  25.5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "750000", h.settings.set[services.SettingDailyTokenLimit])
	assert.Equal(t, "25.5", h.settings.set[services.SettingDailyCostLimit])
}

func TestPutBudgetValidation(t *testing.T) {
	h := newTestHarness()

	w := h.do(t, http.MethodPut, "/api/v1/budget", "head-token", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(t, http.MethodPut, "/api/v1/budget", "head-token", gin.H{"daily_token_limit": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthWithoutDatabase(t *testing.T) {
	h := newTestHarness()

	w := h.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[HealthResponse](t, w)
	assert.Equal(t, "healthy", resp.Status)
	assert.NotEmpty(t, resp.Version)
	assert.Nil(t, resp.Database)
}

func TestSecurityHeaders(t *testing.T) {
	h := newTestHarness()
	w := h.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
