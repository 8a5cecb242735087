package handler

import (
	"io"
	"net/http"

	"github.com/MikhailRaia/top4top-converter/internal/logger"
	"github.com/MikhailRaia/top4top-converter/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// ConvertPaths are the routes the convert endpoint answers on, for every method.
var ConvertPaths = []string{
	"/",
	"/api/convert",
	"/.netlify/functions/convert",
}

func (h *Handler) RegisterRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Use(logger.RequestLogger)
	r.Use(middleware.CORS(CORSHeaders()))

	r.Use(middleware.BodySizeLimit(middleware.MaxBodySize))
	r.Use(middleware.GzipReader)
	r.Use(middleware.GzipMiddleware)

	r.Get("/ping", h.handlePing)
	for _, path := range ConvertPaths {
		r.HandleFunc(path, h.handleConvert)
	}

	return r
}

func (h *Handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	var body []byte
	if r.Method == http.MethodPost {
		defer r.Body.Close()

		var err error
		body, err = io.ReadAll(r.Body)
		if err != nil {
			log.Error().Err(err).Msg("Failed to read request body")
			writeResponse(w, ErrorResponse(http.StatusInternalServerError, err.Error()))
			return
		}
	}

	writeResponse(w, h.Handle(r.Context(), r.Method, body))
}

func (h *Handler) handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func writeResponse(w http.ResponseWriter, resp Response) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	if resp.Body != "" {
		if _, err := w.Write([]byte(resp.Body)); err != nil {
			log.Error().Err(err).Int("status", resp.StatusCode).Msg("Failed to write response")
		}
	}
}
