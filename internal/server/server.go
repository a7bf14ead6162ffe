// Package server exposes the chart over http. Scenes are built per request
// from the immutable dataset and cached by transition.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/patrickmn/go-cache"
	"github.com/rs/cors"

	"github.com/midbel/scatter"
	"github.com/midbel/scatter/internal/config"
	"github.com/midbel/scatter/internal/dataset"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	data     dataset.Dataset
	layout   scatter.Layout
	initial  scatter.Field
	duration time.Duration
	origins  []string

	cache  *cache.Cache
	logger *slog.Logger
	router *mux.Router
}

func New(cfg config.Config, data dataset.Dataset, logger *slog.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if data.Len() == 0 {
		return nil, scatter.ErrEmpty
	}
	initial, _ := cfg.InitialField()
	s := Server{
		data:     data,
		layout:   cfg.Layout(),
		initial:  initial,
		duration: cfg.Duration,
		origins:  cfg.Origins,
		cache:    cache.New(cfg.Cache.TTL, cfg.Cache.Cleanup),
		logger:   logger,
		router:   mux.NewRouter(),
	}
	s.routes()
	return &s, nil
}

func (s *Server) routes() {
	s.router.HandleFunc("/", s.handlePage).Methods(http.MethodGet)
	s.router.HandleFunc("/chart.svg", s.handleChart).Methods(http.MethodGet)
	s.router.HandleFunc("/api/scene", s.handleScene).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
}

func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	})
	var h http.Handler = s.router
	h = c.Handler(h)
	h = recovery(s.logger, h)
	return logging(s.logger, h)
}

// ListenAndServe serves until ctx is cancelled, then shuts the server
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr, "records", s.data.Len())
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	s.logger.Info("server shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type rendered struct {
	Field scatter.Field
	SVG   []byte
	CSS   string
	Snap  scatter.Snapshot
}

// selection returns the previous and the requested field of a request.
// Without previous field, the chart is drawn without transition.
func (s *Server) selection(r *http.Request) (scatter.Field, scatter.Field, error) {
	var (
		query = r.URL.Query()
		to    = s.initial
		from  scatter.Field
		err   error
	)
	if str := query.Get("x"); str != "" {
		if to, err = scatter.ParseHorizontal(str); err != nil {
			return from, to, err
		}
	}
	from = to
	if str := query.Get("from"); str != "" {
		if from, err = scatter.ParseHorizontal(str); err != nil {
			return from, to, err
		}
	}
	return from, to, nil
}

func (s *Server) render(from, to scatter.Field) (*rendered, error) {
	key := cacheKey("scene", from, to)
	if v, ok := s.cache.Get(key); ok {
		return v.(*rendered), nil
	}
	scene, err := s.replay(from, to)
	if err != nil {
		return nil, err
	}
	res := rendered{
		Field: scene.Field(),
		CSS:   scene.Stylesheet(),
		Snap:  scene.Snapshot(),
	}
	var buf bytes.Buffer
	if err := scene.Render(&buf); err != nil {
		return nil, err
	}
	res.SVG = buf.Bytes()
	s.cache.Set(key, &res, cache.DefaultExpiration)
	s.logger.Debug("scene rendered", "from", from, "to", to, "transitions", len(scene.Transitions()))
	return &res, nil
}

func (s *Server) replay(from, to scatter.Field) (*scatter.Scene, error) {
	scene, err := scatter.NewScene(s.data.Records, s.layout, from)
	if err != nil {
		return nil, err
	}
	scene.Duration = s.duration
	if scene.X().Degenerate() {
		s.logger.Warn("degenerate horizontal domain", "field", from)
	}
	return scatter.NewController(scene).Select(to)
}

func cacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += ":" + fmt.Sprintf("%v", param)
	}
	return key
}
