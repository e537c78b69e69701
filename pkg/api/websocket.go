package api

import (
	"context"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"

	"github.com/agentium/agentium/pkg/bus"
	"github.com/agentium/agentium/pkg/hierarchy"
	"github.com/agentium/agentium/pkg/orchestrator"
)

// closeInvalidToken is the application close code sent when the token in
// the upgrade request does not verify.
const closeInvalidToken = websocket.StatusCode(4001)

// wsInbound is a client frame on /ws/chat.
type wsInbound struct {
	Type    string `json:"type"`
	Content string `json:"content,omitempty"`
}

// wsOutbound is a server frame on /ws/chat.
type wsOutbound struct {
	Type      string `json:"type"`
	Content   string `json:"content,omitempty"`
	MessageID string `json:"message_id,omitempty"`
}

// chatSession is one live WebSocket connection. The write mutex serializes
// frames from the read loop and the bus subscription.
type chatSession struct {
	conn   *websocket.Conn
	claims *Claims

	mu sync.Mutex
}

func (cs *chatSession) write(ctx context.Context, frame wsOutbound) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return wsjson.Write(ctx, cs.conn, frame)
}

// chatSocket handles GET /ws/chat. The token travels in the query string
// because browsers cannot set headers on WebSocket upgrades; a failed
// verification completes the upgrade and closes with code 4001 so clients
// can distinguish auth failure from transport failure.
func (s *Server) chatSocket(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: s.wsOrigins,
	})
	if err != nil {
		return
	}
	defer conn.Close(websocket.StatusInternalError, "session ended")

	claims, err := s.verifier.Verify(c.Query("token"))
	if err != nil {
		conn.Close(closeInvalidToken, "invalid token")
		return
	}

	ctx := c.Request.Context()
	session := &chatSession{conn: conn, claims: claims}

	// Push bus notifications for the caller's agent, when it has one.
	if s.notifier != nil && claims.AgentID != "" {
		sub, err := s.notifier.Subscribe(ctx, claims.AgentID, func(n bus.Notification) {
			_ = session.write(ctx, wsOutbound{
				Type:      "message",
				Content:   n.Type,
				MessageID: n.MessageID,
			})
		})
		if err != nil {
			s.log.Warn("WebSocket subscription failed", "agent_id", claims.AgentID, "error", err)
		} else {
			defer sub.Close()
		}
	}

	_ = session.write(ctx, wsOutbound{Type: "status", Content: "connected"})

	for {
		var frame wsInbound
		if err := wsjson.Read(ctx, conn, &frame); err != nil {
			return
		}
		s.handleChatFrame(ctx, session, frame)
	}
}

func (s *Server) handleChatFrame(ctx context.Context, session *chatSession, frame wsInbound) {
	switch frame.Type {
	case "ping":
		_ = session.write(ctx, wsOutbound{Type: "status", Content: "pong"})

	case "message":
		if frame.Content == "" {
			_ = session.write(ctx, wsOutbound{Type: "error", Content: "empty message"})
			return
		}
		sourceID := session.claims.AgentID
		if sourceID == "" {
			_ = session.write(ctx, wsOutbound{Type: "error", Content: "no agent identity in token"})
			return
		}
		result, err := s.intents.ProcessIntent(ctx, orchestrator.IntentRequest{
			RawInput: frame.Content,
			SourceID: sourceID,
			TargetID: hierarchy.HeadID,
		})
		if err != nil {
			_ = session.write(ctx, wsOutbound{Type: "error", Content: err.Error()})
			return
		}
		_ = session.write(ctx, wsOutbound{
			Type:      "message",
			Content:   "routed via " + result.Path,
			MessageID: result.MessageID,
		})

	default:
		_ = session.write(ctx, wsOutbound{Type: "error", Content: "unknown frame type " + frame.Type})
	}
}
