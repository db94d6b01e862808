package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/theoremus-urban-solutions/transit-graph/network"
	"github.com/theoremus-urban-solutions/transit-graph/store"
)

const (
	defaultPort          = 8080
	defaultCacheSize     = 512
	defaultCacheTTL      = 5 * time.Minute
	defaultShutdownGrace = 10 * time.Second
)

// Options configures a Server. Graph is required; everything else has a
// working default. Store and SnapshotID are set together when precomputed
// shortest paths should answer /api/path.
type Options struct {
	Graph         *network.Graph
	Store         *store.Store
	SnapshotID    string
	Port          int
	CacheSize     int
	CacheTTL      time.Duration
	ShutdownGrace time.Duration
}

// Server serves graph queries over HTTP. The wrapped graph must not be
// mutated, including reweighting, while the server is running.
type Server struct {
	graph      *network.Graph
	store      *store.Store
	snapshotID string
	cache      *responseCache
	index      *nearestIndex
	port       int
	grace      time.Duration
	httpServer *http.Server
}

// InitLogging directs request and lifecycle logs to stdout with
// microsecond timestamps.
func InitLogging() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}

// New builds a Server around an assembled graph.
func New(opts Options) *Server {
	if opts.Port <= 0 {
		opts.Port = defaultPort
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = defaultCacheSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	if opts.ShutdownGrace <= 0 {
		opts.ShutdownGrace = defaultShutdownGrace
	}
	return &Server{
		graph:      opts.Graph,
		store:      opts.Store,
		snapshotID: opts.SnapshotID,
		cache:      newResponseCache(opts.CacheSize, opts.CacheTTL),
		index:      newNearestIndex(opts.Graph),
		port:       opts.Port,
		grace:      opts.ShutdownGrace,
	}
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Get("/api/health", s.handleHealth)
	r.Get("/api/stats", s.handleStats)
	r.Get("/api/nodes", s.handleNodes)
	r.Get("/api/nodes/{id}", s.handleNode)
	r.Get("/api/nearest", s.handleNearest)
	r.Get("/api/path", s.handlePath)
	r.Get("/api/allpairs/summary", s.handleAllPairsSummary)
	return r
}

// Start begins listening in a background goroutine and returns.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

// HandleGracefulShutdown blocks until SIGINT or SIGTERM, then drains
// in-flight requests with a timeout.
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}
