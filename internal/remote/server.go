package remote

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/frudas24/mousesim/internal/command"
	"github.com/frudas24/mousesim/internal/logging"
	"github.com/frudas24/mousesim/internal/monitor"
)

// Runner executes a single parsed command.
type Runner interface {
	Execute(cmd command.Command) error
}

// MonitorProvider returns the current list of monitors.
type MonitorProvider func() ([]monitor.Monitor, error)

// Options configure the server.
type Options struct {
	Defaults command.Defaults
	// Token, when set, must be presented as ?token= or a Bearer header.
	Token    string
	Monitors MonitorProvider
	Logger   *slog.Logger
}

// Server handles websocket command input.
type Server struct {
	mu       sync.Mutex
	execMu   sync.Mutex
	upgrader websocket.Upgrader
	runner   Runner
	opts     Options
	logger   *slog.Logger
	conn     *websocket.Conn
}

// NewServer creates a command websocket server.
func NewServer(runner Runner, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Server{
		runner: runner,
		opts:   opts,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// RegisterRoutes wires the websocket and status handlers onto the mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/ws/command", s)
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/api/monitors", s.handleMonitors)
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
			s.closeActive()
		case <-done:
		}
	}()
	defer close(done)
	defer ln.Close()

	s.logger.Info("listening", "addr", ln.Addr().String())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ServeHTTP upgrades the connection and processes command messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.acceptConn(conn); err != nil {
		s.logger.Warn("rejecting connection", "remote", r.RemoteAddr, "err", err)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error()), time.Now().Add(time.Second))
		_ = conn.Close()
		return
	}
	defer s.cleanupConn(conn)
	s.logger.Info("client connected", "remote", r.RemoteAddr)

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			s.logger.Debug("client disconnected", "remote", r.RemoteAddr, "err", err)
			return
		}
		reply, ok := s.handleMessage(msg)
		if !ok {
			continue
		}
		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}

// authorized checks the optional shared token.
func (s *Server) authorized(r *http.Request) bool {
	if s.opts.Token == "" {
		return true
	}
	got := r.URL.Query().Get("token")
	if got == "" {
		got = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(s.opts.Token)) == 1
}

// acceptConn ensures only one active connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return fmt.Errorf("command connection already active")
	}
	s.conn = conn
	return nil
}

// cleanupConn clears the active connection when closed.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	_ = conn.Close()
}

// closeActive drops the active connection during shutdown.
func (s *Server) closeActive() {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn != nil {
		_ = conn.Close()
	}
}

// handleMessage dispatches a single message. Unknown types get no reply.
func (s *Server) handleMessage(msg Message) (Reply, bool) {
	switch msg.T {
	case TypePing:
		return Reply{T: TypePong, ID: msg.ID, OK: true}, true
	case TypeExec:
		reply := Reply{T: TypeResult, ID: msg.ID, OK: true}
		if err := s.exec(msg.Line); err != nil {
			reply.OK = false
			reply.Error = err.Error()
		}
		return reply, true
	default:
		return Reply{}, false
	}
}

// exec parses a line like a batch-file line and runs it; runs never overlap.
func (s *Server) exec(line string) error {
	args := command.Split(strings.TrimSpace(line))
	if len(args) == 0 {
		return errors.New("empty command line")
	}
	cmd, err := command.ParseLine(args, s.opts.Defaults)
	if err != nil {
		return err
	}

	s.execMu.Lock()
	defer s.execMu.Unlock()
	s.logger.Debug("remote execute", "line", line)
	return s.runner.Execute(cmd)
}

// handleMonitors returns the list of monitors.
func (s *Server) handleMonitors(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if s.opts.Monitors == nil {
		http.Error(w, "monitor listing unavailable", http.StatusNotImplemented)
		return
	}
	list, err := s.opts.Monitors()
	if err != nil {
		http.Error(w, "failed to list monitors", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// handleHealth reports liveness.
func handleHealth(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("ok"))
}
