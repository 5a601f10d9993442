// Package wslive exposes a live binding over a WebSocket: every text frame a
// client sends is one input change, answered by one result frame.
package wslive

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"

	"github.com/baditaflorin/go_palindrome/internal/core/domain"
	"github.com/baditaflorin/go_palindrome/internal/core/live"
	"github.com/baditaflorin/go_palindrome/internal/metrics"
	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// DefaultReadLimit caps the size of one input frame.
const DefaultReadLimit = 64 * 1024

// Message is the JSON frame written for each evaluated input.
type Message struct {
	Session    string `json:"session"`
	Seq        int    `json:"seq"`
	Text       string `json:"text"`
	Normalized string `json:"normalized"`
	Palindrome bool   `json:"palindrome"`
	Length     int    `json:"length"`
}

// Config tunes the live endpoint.
type Config struct {
	// ReadLimit is the maximum frame size in bytes; zero selects DefaultReadLimit.
	ReadLimit int64
	// OriginPatterns lists extra host patterns allowed to connect cross-origin.
	OriginPatterns []string
}

// Server is an http.Handler that upgrades to WebSocket and runs one
// live.Binding per connection.
type Server struct {
	logger    ports.Logger
	evaluator ports.Evaluator
	config    Config
}

// NewServer creates the live endpoint handler.
func NewServer(logger ports.Logger, evaluator ports.Evaluator, config Config) *Server {
	if config.ReadLimit <= 0 {
		config.ReadLimit = DefaultReadLimit
	}
	return &Server{logger: logger, evaluator: evaluator, config: config}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.config.OriginPatterns,
	})
	if err != nil {
		s.logger.Warn("WebSocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.CloseNow()
	conn.SetReadLimit(s.config.ReadLimit)

	session := uuid.NewString()
	metrics.SessionOpened()
	defer metrics.SessionClosed()

	s.logger.Info("Live session opened", "session", session, "remote", r.RemoteAddr)

	binding, err := live.NewBinding(s.evaluator, domain.Result{Palindrome: true})
	if err != nil {
		s.logger.Error("Failed to create binding", "session", session, "error", err)
		conn.Close(websocket.StatusInternalError, "internal error")
		return
	}

	ctx := r.Context()
	seq := 0
	var writeErr error
	binding.Subscribe(func(result domain.Result) {
		seq++
		metrics.ObserveEvaluation(metrics.SourceLive, result)
		writeErr = wsjson.Write(ctx, conn, Message{
			Session:    session,
			Seq:        seq,
			Text:       result.Input,
			Normalized: result.Normalized,
			Palindrome: result.Palindrome,
			Length:     result.Length,
		})
	})

	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			s.logClosed(session, seq, err)
			return
		}
		if typ != websocket.MessageText {
			conn.Close(websocket.StatusUnsupportedData, "text frames only")
			s.logger.Warn("Rejected binary frame", "session", session)
			return
		}

		binding.OnInputChange(string(data))
		if writeErr != nil {
			s.logger.Error("Failed to write result", "session", session, "error", writeErr)
			return
		}
	}
}

func (s *Server) logClosed(session string, seq int, err error) {
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		s.logger.Info("Live session closed", "session", session, "evaluations", seq)
	default:
		s.logger.Warn("Live session ended", "session", session, "evaluations", seq, "error", err)
	}
}
