// Package relay lets a recorder running in another process publish the
// recording state over a loopback websocket.
//
// Each text frame is a JSON object:
//
//	{"event": "recording", "payload": true}
//
// "recording:started" and "recording:stopped" need no payload. Frames that
// cannot be decoded or name other events are logged and dropped.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"takt/internal/shell"

	"github.com/gorilla/websocket"
)

// Path is where the websocket endpoint is served.
const Path = "/recording"

const readLimit = 4096

// Message is one notification sent by the recorder.
type Message struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Sink receives the signals accepted by the relay.
type Sink interface {
	Recording(signal shell.RecordingSignal)
}

type Server struct {
	sink     Sink
	logger   *slog.Logger
	upgrader websocket.Upgrader

	srv *http.Server
	ln  net.Listener

	mu     sync.Mutex
	conns  map[*websocket.Conn]struct{}
	closed bool
}

func New(sink Sink, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		sink:   sink,
		logger: logger,
		conns:  make(map[*websocket.Conn]struct{}),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     loopbackOrigin,
	}
	return s
}

// Handler returns the HTTP handler serving Path.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(Path, s.serveWS)
	return mux
}

// Start listens on addr, which must be a loopback address, and serves in
// the background.
func (s *Server) Start(addr string) error {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("invalid relay address %q: %w", addr, err)
	}
	if !isLoopback(host) {
		return fmt.Errorf("relay address %q is not a loopback address", addr)
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.ln = ln
	s.srv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("relay stopped", "error", err)
		}
	}()

	s.logger.Info("recording relay listening", "addr", ln.Addr().String(), "path", Path)
	return nil
}

// Addr returns the bound address, or "" before Start.
func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Close stops accepting recorders and drops the connected ones. No signal
// reaches the sink once Close returns.
func (s *Server) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	conns := s.conns
	s.conns = make(map[*websocket.Conn]struct{})
	s.mu.Unlock()

	var err error
	if s.srv != nil {
		err = s.srv.Shutdown(ctx)
	}
	for conn := range conns {
		_ = conn.Close()
	}
	return err
}

// track registers conn for Close. It reports false once the server is
// closed.
func (s *Server) track(conn *websocket.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *Server) untrack(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("relay upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	if !s.track(conn) {
		return
	}
	defer s.untrack(conn)

	conn.SetReadLimit(readLimit)
	s.logger.Debug("recorder connected", "remote", r.RemoteAddr)

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("recorder disconnected", "remote", r.RemoteAddr, "error", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}
		s.handle(data)
	}
}

func (s *Server) handle(data []byte) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		s.logger.Warn("dropping undecodable relay message", "error", err)
		return
	}

	signal, ok := shell.SignalForEvent(msg.Event, msg.Payload)
	if !ok {
		s.logger.Debug("ignoring relay event", "event", msg.Event)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.sink.Recording(signal)
}

func loopbackOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return isLoopback(u.Hostname())
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
