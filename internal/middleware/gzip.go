package middleware

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

var compressibleTypes = []string{
	"application/json",
	"text/html",
	"text/plain",
}

// GzipMiddleware compresses eligible responses with gzip when accepted by the client.
// The response is buffered so the decision can be made from the final Content-Type.
func GzipMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		wrapper := &responseWriterWrapper{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapper, r)

		if len(wrapper.body) == 0 || !isCompressible(w.Header().Get("Content-Type")) {
			writePlain(w, wrapper)
			return
		}

		gz, err := gzip.NewWriterLevel(w, gzip.BestSpeed)
		if err != nil {
			writePlain(w, wrapper)
			return
		}
		defer func() {
			if err := gz.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to flush gzipped response")
			}
		}()

		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Add("Vary", "Accept-Encoding")
		w.Header().Del("Content-Length")
		w.WriteHeader(wrapper.statusCode)

		if _, err := gz.Write(wrapper.body); err != nil {
			log.Error().Err(err).Msg("Failed to write gzipped response")
		}
	})
}

func writePlain(w http.ResponseWriter, wrapper *responseWriterWrapper) {
	w.WriteHeader(wrapper.statusCode)
	if _, err := w.Write(wrapper.body); err != nil {
		log.Error().Err(err).Msg("Failed to write response")
	}
}

func isCompressible(contentType string) bool {
	for _, t := range compressibleTypes {
		if strings.Contains(contentType, t) {
			return true
		}
	}
	return false
}

// responseWriterWrapper shares the header map with the wrapped writer and
// holds back the status and body until the handler returns.
type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode int
	body       []byte
}

// WriteHeader captures the status code without immediately writing it.
func (w *responseWriterWrapper) WriteHeader(statusCode int) {
	w.statusCode = statusCode
}

// Write appends the byte slice to the body buffer.
func (w *responseWriterWrapper) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return len(b), nil
}

// GzipReader transparently decompresses gzipped request bodies. The gzip
// stream is opened on first read, so requests whose body is never read pass
// through untouched and a corrupt stream surfaces as a body read error.
func GzipReader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Encoding") != "gzip" {
			next.ServeHTTP(w, r)
			return
		}

		r.Body = &gzipBody{src: r.Body}
		r.ContentLength = -1
		r.Header.Del("Content-Encoding")

		next.ServeHTTP(w, r)
	})
}

type gzipBody struct {
	src io.ReadCloser
	zr  *gzip.Reader
	err error
}

func (b *gzipBody) Read(p []byte) (int, error) {
	if b.zr == nil && b.err == nil {
		b.zr, b.err = gzip.NewReader(b.src)
		if b.err != nil && !errors.Is(b.err, io.EOF) {
			b.err = fmt.Errorf("read gzipped request: %w", b.err)
		}
	}
	if b.err != nil {
		return 0, b.err
	}
	return b.zr.Read(p)
}

func (b *gzipBody) Close() error {
	if b.zr != nil {
		b.zr.Close()
	}
	return b.src.Close()
}
