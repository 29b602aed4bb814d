// Package web hosts the component tree over HTTP and pushes re-rendered
// lines to browsers over WebSocket.
//
// There is one document and one store per server; every browser sees the
// same page, the way a single screen would.
package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/example/carline/internal/adapters/dom"
	"github.com/example/carline/internal/component"
	"github.com/example/carline/internal/ctxutil"
	"github.com/example/carline/internal/ports/primary"
)

const (
	writeWait       = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

// UI is the assembled component tree the server hosts.
type UI struct {
	Document *dom.Document
	Store    primary.CarStore
	Form     *component.FormComponent
	LineIDs  []string
}

// Part is one re-rendered element pushed to browsers.
type Part struct {
	ID   string `json:"id"`
	HTML string `json:"html"`
}

// Server is the HTTP host of a UI.
type Server struct {
	ui       UI
	loop     *Loop
	hub      *Hub
	logger   zerolog.Logger
	upgrader websocket.Upgrader
	mux      *http.ServeMux
}

// NewServer subscribes the server to the store and registers its routes.
// Subscribe it after the lines so pushes carry the lines' new state.
func NewServer(ui UI, logger zerolog.Logger) *Server {
	logger = logger.With().Str("component", "web").Logger()
	s := &Server{
		ui:     ui,
		loop:   NewLoop(),
		hub:    NewHub(logger),
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		mux: http.NewServeMux(),
	}

	s.ui.Store.Subscribe(func(ctx context.Context, _ []primary.Car) {
		msg, err := s.renderLines()
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to render lines")
			return
		}
		s.hub.Broadcast(msg)
	})

	s.mux.HandleFunc("/", s.handlePage)
	s.mux.HandleFunc("/cars", s.handleCars)
	s.mux.HandleFunc("/ws", s.handleWebSocket)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Hub returns the WebSocket hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// ListenAndServe serves on addr until ctx is done, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.Close()
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.Close()
	if err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}

// Close stops the UI loop.
func (s *Server) Close() {
	s.loop.Close()
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writePage(w, r, http.StatusOK)
}

func (s *Server) handleCars(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listCars(w, r)
	case http.MethodPost:
		s.submitCar(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) listCars(w http.ResponseWriter, r *http.Request) {
	var cars []primary.Car
	err := s.loop.Do(r.Context(), func() error {
		var err error
		cars, err = s.ui.Store.Snapshot(r.Context())
		return err
	})
	if err != nil {
		s.fail(w, "failed to list cars", err)
		return
	}
	if cars == nil {
		cars = []primary.Car{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cars); err != nil {
		s.logger.Error().Err(err).Msg("cannot write response")
	}
}

func (s *Server) submitCar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	ctx := ctxutil.WithOrigin(r.Context(), ctxutil.OriginWeb)
	err := s.loop.Do(ctx, func() error {
		s.ui.Form.Fill(r.PostForm.Get("brand"), r.PostForm.Get("model"), r.PostForm.Get("door"), r.PostForm.Get("lineId"))
		return s.ui.Form.Submit(ctx)
	})

	var verr *component.ValidationError
	switch {
	case errors.As(err, &verr):
		s.writePage(w, r, http.StatusUnprocessableEntity)
	case err != nil:
		s.fail(w, "failed to add car", err)
	default:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	c := s.hub.register()
	defer s.hub.unregister(c)

	// Send current state first so the client starts in sync.
	var initial []byte
	if err := s.loop.Do(r.Context(), func() error {
		var err error
		initial, err = s.renderLines()
		return err
	}); err != nil {
		s.logger.Error().Err(err).Msg("failed to render lines")
		return
	}
	c.send <- initial

	go s.readPump(conn, c)

	for msg := range c.send {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			s.logger.Debug().Err(err).Msg("websocket write failed")
			return
		}
	}
}

// readPump discards client messages and unregisters the client when the
// connection closes, which ends the write loop.
func (s *Server) readPump(conn *websocket.Conn, c *client) {
	defer s.hub.unregister(c)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// renderLines must run on the loop.
func (s *Server) renderLines() ([]byte, error) {
	parts := make([]Part, 0, len(s.ui.LineIDs))
	for _, id := range s.ui.LineIDs {
		el, err := s.ui.Document.FindElementByID(id)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := s.ui.Document.RenderElement(&buf, el); err != nil {
			return nil, err
		}
		parts = append(parts, Part{ID: id, HTML: buf.String()})
	}
	return json.Marshal(parts)
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, status int) {
	var buf bytes.Buffer
	if err := s.loop.Do(r.Context(), func() error {
		return s.ui.Document.Render(&buf)
	}); err != nil {
		s.fail(w, "failed to render page", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Error().Err(err).Msg("cannot write response")
	}
}

func (s *Server) fail(w http.ResponseWriter, msg string, err error) {
	s.logger.Error().Err(err).Msg(msg)
	http.Error(w, msg, http.StatusInternalServerError)
}
