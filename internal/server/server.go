package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gfranca/finbot/internal/workflow"
	"go.uber.org/zap"
)

// Server exposes the chat pipeline over HTTP.
type Server struct {
	workflow *workflow.Workflow
	logger   *zap.Logger
	httpSrv  *http.Server
}

type chatRequest struct {
	Mensagem string `json:"mensagem"`
}

type chatResponse struct {
	Resposta string `json:"resposta"`
}

func New(addr string, wf *workflow.Workflow, logger *zap.Logger) *Server {
	s := &Server{
		workflow: wf,
		logger:   logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleRoot)
	mux.HandleFunc("POST /chat/{userID}", s.handleChat)

	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      s.withRequestLogging(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	return s
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", s.httpSrv.Addr))
		errCh <- s.httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	// A malformed or wrong-typed body degrades to an empty message; the
	// pipeline still runs and always answers.
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Warn("Malformed chat request body, treating as empty message",
			zap.Error(err),
			zap.String("user_id", userID))
		req.Mensagem = ""
	}

	resposta := s.workflow.Run(r.Context(), userID, req.Mensagem)

	writeJSON(w, chatResponse{Resposta: resposta})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}
