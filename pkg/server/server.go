// Package server exposes a trie over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/khalid-nowaf/runetrie/pkg/trie"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// Server represents the HTTP API server
type Server struct {
	store        *Store
	server       *http.Server
	logger       zerolog.Logger
	upgrader     websocket.Upgrader
	writeTimeout time.Duration
}

// DefaultWriteTimeout is used when Options.WriteTimeout is not set.
const DefaultWriteTimeout = 10 * time.Second

type Options struct {
	Addr         string
	CORSOrigins  []string      // no CORS handling when empty
	WriteTimeout time.Duration // per websocket message
	Logger       zerolog.Logger
}

type wordsResponse struct {
	Prefix string   `json:"prefix"`
	Words  []string `json:"words"`
}

type suffixesResponse struct {
	Prefix   string   `json:"prefix"`
	Suffixes []string `json:"suffixes"`
}

type wordResponse struct {
	Word     string `json:"word"`
	Contains bool   `json:"contains"`
}

type prefixResponse struct {
	Prefix string `json:"prefix"`
	Exists bool   `json:"exists"`
}

type removedResponse struct {
	Prefix  string   `json:"prefix"`
	Removed []string `json:"removed"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewServer creates a new API server
func NewServer(store *Store, opts Options) *Server {
	s := &Server{
		store:        store,
		logger:       opts.Logger,
		writeTimeout: opts.WriteTimeout,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	if s.writeTimeout <= 0 {
		s.writeTimeout = DefaultWriteTimeout
	}

	r := mux.NewRouter()

	// Add request logging middleware
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s.logger.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("received request")
			next.ServeHTTP(w, r)
		})
	})

	r.HandleFunc("/stats", s.stats).Methods(http.MethodGet)

	// Word operations
	r.HandleFunc("/words", s.listWords).Methods(http.MethodGet)
	r.HandleFunc("/words/{word:.+}", s.getWord).Methods(http.MethodGet)
	r.HandleFunc("/words/{word:.+}", s.putWord).Methods(http.MethodPut)
	r.HandleFunc("/words/{word:.+}", s.deleteWord).Methods(http.MethodDelete)

	// Prefix operations
	r.HandleFunc("/suffixes", s.listSuffixes).Methods(http.MethodGet)
	r.HandleFunc("/prefixes", s.getPrefix).Methods(http.MethodGet)
	r.HandleFunc("/prefixes", s.deletePrefix).Methods(http.MethodDelete)
	r.HandleFunc("/stream", s.stream).Methods(http.MethodGet)

	var handler http.Handler = r
	if len(opts.CORSOrigins) > 0 {
		handler = cors.New(cors.Options{
			AllowedOrigins: opts.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodDelete},
		}).Handler(r)
	}

	addr := opts.Addr
	// Ensure the address includes a host if not specified
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = "0.0.0.0:" + addr
	}

	s.server = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler returns the HTTP handler for the server
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Addr returns the address the server listens on
func (s *Server) Addr() string {
	return s.server.Addr
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.server.Addr).Msg("starting server")
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.Stats())
}

func (s *Server) listWords(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	sorted, limit, err := listOptions(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, wordsResponse{
		Prefix: prefix,
		Words:  s.store.Content(prefix, sorted, limit),
	})
}

func (s *Server) listSuffixes(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	sorted, limit, err := listOptions(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, suffixesResponse{
		Prefix:   prefix,
		Suffixes: s.store.Suffixes(prefix, sorted, limit),
	})
}

func (s *Server) getWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	if !s.store.Contains(word) {
		s.writeJSON(w, http.StatusNotFound, wordResponse{Word: word})
		return
	}
	s.writeJSON(w, http.StatusOK, wordResponse{Word: word, Contains: true})
}

func (s *Server) putWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	status := http.StatusOK
	if s.store.Insert(word) {
		status = http.StatusCreated
		s.logger.Debug().Str("word", word).Msg("word inserted")
	}
	s.writeJSON(w, status, wordResponse{Word: word, Contains: true})
}

func (s *Server) deleteWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	if err := s.store.Remove(word); err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getPrefix(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	s.writeJSON(w, http.StatusOK, prefixResponse{
		Prefix: prefix,
		Exists: s.store.ContainsPrefix(prefix),
	})
}

func (s *Server) deletePrefix(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	removed, err := s.store.RemoveSuffixes(prefix)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.logger.Info().Str("prefix", prefix).Int("removed", len(removed)).Msg("prefix removed")
	s.writeJSON(w, http.StatusOK, removedResponse{Prefix: prefix, Removed: removed})
}

// stream sends every word starting with the prefix as its own websocket text message
// and closes the connection once the enumeration is exhausted.
// A client that stops reading is dropped after the write timeout.
func (s *Server) stream(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	sent := 0
	err = s.store.Walk(prefix, func(word string) error {
		if err := conn.SetWriteDeadline(time.Now().Add(s.writeTimeout)); err != nil {
			return err
		}
		sent++
		return conn.WriteMessage(websocket.TextMessage, []byte(word))
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("prefix", prefix).Msg("streaming aborted")
		return
	}

	closing := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done")
	if err := conn.WriteControl(websocket.CloseMessage, closing, time.Now().Add(time.Second)); err != nil {
		s.logger.Warn().Err(err).Msg("failed to close websocket")
	}
	s.logger.Debug().Str("prefix", prefix).Int("sent", sent).Msg("stream complete")
}

func listOptions(r *http.Request) (sorted bool, limit int, err error) {
	query := r.URL.Query()
	if value := query.Get("sorted"); value != "" {
		if sorted, err = strconv.ParseBool(value); err != nil {
			return false, 0, errors.New("sorted must be a boolean")
		}
	}
	if value := query.Get("limit"); value != "" {
		if limit, err = strconv.Atoi(value); err != nil || limit < 0 {
			return false, 0, errors.New("limit must be a non negative integer")
		}
	}
	return sorted, limit, nil
}

func statusFor(err error) int {
	if errors.Is(err, trie.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
