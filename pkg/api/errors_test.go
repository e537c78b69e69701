package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/agentium/agentium/pkg/bus"
	"github.com/agentium/agentium/pkg/capability"
	"github.com/agentium/agentium/pkg/guard"
	"github.com/agentium/agentium/pkg/services"
	"github.com/agentium/agentium/pkg/taskflow"
)

func statusFor(t *testing.T, err error) (int, http.Header) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	writeError(c, err)
	return w.Code, w.Header()
}

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "constitutional block",
			err:  &guard.BlockError{ActorID: "30001"},
			want: http.StatusForbidden,
		},
		{
			name: "capability denied",
			err:  &capability.DeniedError{AgentID: "30001", Capability: capability.Broadcast},
			want: http.StatusForbidden,
		},
		{
			name: "hierarchy violation",
			err:  &bus.HierarchyViolationError{SenderID: "30001", RecipientID: "10001", Direction: "up"},
			want: http.StatusForbidden,
		},
		{
			name: "routing loop",
			err:  &bus.RoutingLoopError{MessageID: "m1", HopCount: 5},
			want: http.StatusBadRequest,
		},
		{
			name: "validation",
			err:  services.NewValidationError("message", "message is required"),
			want: http.StatusBadRequest,
		},
		{
			name: "illegal state transition",
			err:  &taskflow.IllegalStateTransition{TaskID: "t1", From: taskflow.StatusPending, To: taskflow.StatusCompleted},
			want: http.StatusBadRequest,
		},
		{
			name: "invalid input",
			err:  fmt.Errorf("bad payload: %w", services.ErrInvalidInput),
			want: http.StatusBadRequest,
		},
		{
			name: "not found",
			err:  fmt.Errorf("task t1: %w", services.ErrNotFound),
			want: http.StatusNotFound,
		},
		{
			name: "already exists",
			err:  fmt.Errorf("deliberation: %w", services.ErrAlreadyExists),
			want: http.StatusConflict,
		},
		{
			name: "unrecognized",
			err:  errors.New("redis connection refused"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := statusFor(t, tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteErrorRateLimitSetsRetryAfter(t *testing.T) {
	err := &bus.RateLimitError{SenderID: "30001", Tier: "task", RetryAfter: 3 * time.Second}
	code, header := statusFor(t, err)
	assert.Equal(t, http.StatusTooManyRequests, code)
	assert.Equal(t, "3", header.Get("Retry-After"))
}

func TestWriteErrorRateLimitRoundsUpToOneSecond(t *testing.T) {
	err := &bus.RateLimitError{SenderID: "30001", Tier: "task", RetryAfter: 200 * time.Millisecond}
	code, header := statusFor(t, err)
	assert.Equal(t, http.StatusTooManyRequests, code)
	assert.Equal(t, "1", header.Get("Retry-After"))
}

func TestWriteErrorWrappedCauseStillMaps(t *testing.T) {
	inner := &capability.DeniedError{AgentID: "30001", Capability: capability.ExecuteCode}
	code, _ := statusFor(t, fmt.Errorf("processing intent: %w", inner))
	assert.Equal(t, http.StatusForbidden, code)
}
