package main

import (
	"encoding/json"
	"net/http"
	"time"

	"board-catalog/catalog"
	"board-catalog/static"
	"board-catalog/templates"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type server struct {
	source catalog.Source
	opts   pageOptions
	images string
	log    *zap.Logger
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", s.catalogHandler)
	r.Get("/data.json", s.dataHandler)
	r.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(s.images))))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))
	return r
}

// catalogHandler renders the page. A failed load is logged and the page is
// served with an empty #data-table.
func (s *server) catalogHandler(w http.ResponseWriter, r *http.Request) {
	res := <-catalog.LoadAsync(r.Context(), s.source)
	if res.Err != nil {
		s.log.Error("❌ error loading catalog", zap.Error(res.Err))
		res.Items = nil
	}

	opts := s.opts
	opts.Bucket = r.URL.Query().Get("bucket")
	opts.Open = r.URL.Query()["open"]

	page := buildPage(res.Items, opts)
	s.log.Debug("📚 rendering catalog",
		zap.Int("items", len(res.Items)),
		zap.Int("groups", len(page.Groups)),
		zap.String("bucket", opts.Bucket))
	templ.Handler(templates.CatalogPage(page)).ServeHTTP(w, r)
}

func (s *server) dataHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.source.Load(r.Context())
	if err != nil {
		s.log.Error("❌ error loading catalog", zap.Error(err))
		http.Error(w, "Could not load catalog", http.StatusBadGateway)
		return
	}
	if items == nil {
		items = []catalog.Item{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(items); err != nil {
		s.log.Warn("write catalog json", zap.Error(err))
	}
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("elapsed", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())))
		})
	}
}
