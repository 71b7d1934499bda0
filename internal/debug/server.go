// internal/debug/server.go
package debug

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"farm-flies/internal/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Snapshot — состояние игры, отдаваемое по GET /state.
type Snapshot struct {
	Scene       string `json:"scene"`
	Lives       int    `json:"lives"`
	Score       int    `json:"score"`
	HighScore   int    `json:"highScore"`
	Enemies     int    `json:"enemies"`
	Projectiles int    `json:"projectiles"`
}

// StateSource отдаёт последний снимок. Вызывается из горутин HTTP-сервера.
type StateSource interface {
	Snapshot() Snapshot
}

// Server — отладочный HTTP-сервер: pprof на /debug и состояние игры на /state.
type Server struct {
	source StateSource
	srv    *http.Server
	addr   string
}

func NewServer(addr string, source StateSource) *Server {
	s := &Server{source: source, addr: addr}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Router собирает маршруты.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Mount("/debug", middleware.Profiler())

	r.Get("/state", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(s.source.Snapshot()); err != nil {
			logger.Errorf("debug: encode state: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
	return r
}

// Start слушает адрес и обслуживает запросы в отдельной горутине.
// Ошибка занятого порта возвращается сразу.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("debug server: %w", err)
	}
	s.addr = ln.Addr().String()
	logger.Infof("debug server listening on http://%s", s.addr)

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("debug server: %v", err)
		}
	}()
	return nil
}

// Addr — фактический адрес после Start (полезно при порте 0).
func (s *Server) Addr() string {
	return s.addr
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
