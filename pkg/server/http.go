// Package server exposes the room service over HTTP and serves the game client files.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"escaperoom/pkg/game/room"
	"escaperoom/pkg/logger"
	"escaperoom/pkg/roomservice"
)

// Catalog is the lookup the server answers from
type Catalog interface {
	GetRoom(id string) (room.Room, error)
	GetSprite(id string) (room.Sprite, error)
}

// Server serves the catalog, the asset directory and the client page
type Server struct {
	Catalog   Catalog
	Addr      string
	AssetsDir string
	PublicDir string
}

// New creates a server for catalog listening on addr
func New(catalog Catalog, addr, assetsDir, publicDir string) *Server {
	return &Server{
		Catalog:   catalog,
		Addr:      addr,
		AssetsDir: assetsDir,
		PublicDir: publicDir,
	}
}

// Handler returns the full route table wrapped in middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /room/{id}", s.handleRoom)
	mux.HandleFunc("GET /sprite/{id}", s.handleSprite)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(s.AssetsDir))))
	mux.HandleFunc("/", s.handleClient)

	return withRequestID(withAccessLog(enableCORS(mux)))
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Infof("Room service listening on %s", s.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Log.Info("Shutting down room service...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleRoom(w http.ResponseWriter, r *http.Request) {
	rm, err := s.Catalog.GetRoom(r.PathValue("id"))
	if err != nil {
		writeLookupError(w, r, err, "Room not found")
		return
	}
	writeJSON(w, http.StatusOK, rm)
}

func (s *Server) handleSprite(w http.ResponseWriter, r *http.Request) {
	sp, err := s.Catalog.GetSprite(r.PathValue("id"))
	if err != nil {
		writeLookupError(w, r, err, "Sprite Not Found")
		return
	}
	writeJSON(w, http.StatusOK, sp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleClient serves files from the public directory and falls back to
// index.html for everything else, so client-side routes resolve.
// Missing paths with a file extension are 404s; answering a script or wasm
// request with the page would break the client boot.
func (s *Server) handleClient(w http.ResponseWriter, r *http.Request) {
	clean := path.Clean("/" + r.URL.Path)
	if clean != "/" {
		file := filepath.Join(s.PublicDir, filepath.FromSlash(clean))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			http.ServeFile(w, r, file)
			return
		}
		if path.Ext(clean) != "" {
			http.NotFound(w, r)
			return
		}
	}
	http.ServeFile(w, r, filepath.Join(s.PublicDir, "index.html"))
}

type errorBody struct {
	Error string `json:"error"`
}

func writeLookupError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	if errors.Is(err, roomservice.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: notFoundMsg})
		return
	}
	logger.Log.WithError(err).WithField("path", r.URL.Path).Error("Lookup failed")
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Internal error"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Warn("Encode response")
	}
}
