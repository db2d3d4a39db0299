package server

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/trendhub/pkg/usecase"
	"github.com/secmon-lab/trendhub/pkg/utils/errutil"
	"github.com/secmon-lab/trendhub/pkg/utils/logging"
)

// Server previews a generated site directory over HTTP. It also exposes
// the raw report when a report path is configured.
type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	reportPath string
}

type Option func(*config)

// WithReportPath enables GET /api/trending backed by the report file.
func WithReportPath(path string) Option {
	return func(cfg *config) {
		cfg.reportPath = path
	}
}

func New(siteDir string, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Get("/api/trending", func(w http.ResponseWriter, r *http.Request) {
		if cfg.reportPath == "" {
			safeWrite(w, http.StatusNotFound, []byte(`{"error":"no report configured"}`))
			return
		}

		report, err := usecase.ReadReportFile(cfg.reportPath)
		if err != nil {
			errutil.HandleError(r.Context(), "fail to load report", err)
			safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"failed to load report"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		body, err := json.Marshal(report)
		if err != nil {
			errutil.HandleError(r.Context(), "fail to serialize report", err)
			safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"failed to serialize report"}`))
			return
		}
		safeWrite(w, http.StatusOK, body)
	})
	r.Handle("/*", http.FileServer(http.Dir(siteDir)))

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
