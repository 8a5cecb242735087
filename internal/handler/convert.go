package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MikhailRaia/top4top-converter/internal/model"
	"github.com/MikhailRaia/top4top-converter/internal/service"
	"github.com/rs/zerolog/log"
)

// Error messages returned to clients.
const (
	MsgMethodNotAllowed = "Method not allowed"
)

// Converter turns a validated request into a conversion response.
type Converter interface {
	Convert(ctx context.Context, req model.ConversionRequest) (*model.ConversionResponse, error)
}

// Response is a transport-independent reply produced by Handle.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

// CORSHeaders returns the header set attached to every response.
func CORSHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type",
		"Access-Control-Allow-Methods": "POST, OPTIONS",
	}
}

// Handler serves the convert endpoint over HTTP and serverless events.
type Handler struct {
	converter Converter
}

func NewHandler(converter Converter) *Handler {
	return &Handler{
		converter: converter,
	}
}

// Handle dispatches one request by method.
func (h *Handler) Handle(ctx context.Context, method string, body []byte) Response {
	switch method {
	case http.MethodOptions:
		return Response{
			StatusCode: http.StatusOK,
			Headers:    CORSHeaders(),
		}
	case http.MethodPost:
		return h.handlePost(ctx, body)
	default:
		return ErrorResponse(http.StatusMethodNotAllowed, MsgMethodNotAllowed)
	}
}

func (h *Handler) handlePost(ctx context.Context, body []byte) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Recovered from panic while converting")
			resp = ErrorResponse(http.StatusInternalServerError, fmt.Sprint(r))
		}
	}()

	req, err := service.DecodeRequest(body)
	if err != nil {
		return ErrorResponse(http.StatusInternalServerError, err.Error())
	}

	result, err := h.converter.Convert(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return ErrorResponse(http.StatusBadRequest, service.ErrMissingFields.Error())
		}
		return ErrorResponse(http.StatusInternalServerError, err.Error())
	}

	return jsonResponse(http.StatusOK, result)
}

// ErrorResponse builds a JSON failure reply with the CORS header set.
func ErrorResponse(status int, message string) Response {
	return jsonResponse(status, model.NewErrorResponse(message))
}

func jsonResponse(status int, v any) Response {
	headers := CORSHeaders()

	body, err := marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = marshal(model.NewErrorResponse(err.Error()))
	}

	headers["Content-Type"] = "application/json"
	return Response{
		StatusCode: status,
		Headers:    headers,
		Body:       body,
	}
}

// marshal encodes v without HTML escaping so query separators in links stay readable.
func marshal(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
