// Package server exposes the Telegram webhook over HTTP and fans decoded
// updates out to a bounded work queue consumed by independent handler
// workers.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"premium-store-bot/internal/config"
	"premium-store-bot/internal/handlers"
	"premium-store-bot/internal/telegram"
)

// Server is the bot's HTTP front.
type Server struct {
	httpServer *http.Server
	bot        *handlers.Bot
	log        *zap.Logger

	updates chan telegram.Update
	workers int
	wg      sync.WaitGroup
}

// New builds the server. Updates beyond the queue capacity are dropped with
// a log line rather than blocking the webhook; Telegram redelivers on its
// own schedule.
func New(cfg *config.Config, bot *handlers.Bot, log *zap.Logger) *Server {
	s := &Server{
		bot:     bot,
		log:     log,
		updates: make(chan telegram.Update, cfg.QueueSize),
		workers: cfg.Workers,
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	router.Post("/webhook", s.handleWebhook)

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  time.Minute,
	}

	return s
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var update telegram.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		s.log.Warn("webhook body rejected", zap.Error(err))
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	select {
	case s.updates <- update:
	default:
		s.log.Warn("update queue full, dropping update", zap.Int64("update_id", update.UpdateID))
	}

	w.WriteHeader(http.StatusOK)
}

// Start launches the worker pool and the HTTP listener. It blocks until the
// listener stops.
func (s *Server) Start() error {
	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			for update := range s.updates {
				s.bot.HandleUpdate(update)
			}
		}()
	}

	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the listener, drains the queue and waits for the workers.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	close(s.updates)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return err
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
