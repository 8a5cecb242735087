// Package serverless adapts API Gateway and Netlify style function events to the convert handler.
package serverless

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/MikhailRaia/top4top-converter/internal/handler"
	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"
)

// RequestHandler is the transport-independent convert handler.
type RequestHandler interface {
	Handle(ctx context.Context, method string, body []byte) handler.Response
}

type Adapter struct {
	handler RequestHandler
}

func NewAdapter(h RequestHandler) *Adapter {
	return &Adapter{handler: h}
}

// Handle serves one function invocation. Failures are reported in the
// response itself, so the returned error is always nil.
func (a *Adapter) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			log.Error().Err(err).Msg("Failed to decode event body")
			resp := handler.ErrorResponse(http.StatusInternalServerError, fmt.Sprintf("decode body: %v", err))
			return toEvent(resp), nil
		}
		body = decoded
	}

	resp := a.handler.Handle(ctx, event.HTTPMethod, body)

	log.Info().
		Str("request_id", event.RequestContext.RequestID).
		Str("method", event.HTTPMethod).
		Str("path", event.Path).
		Int("status", resp.StatusCode).
		Msg("Event processed")

	return toEvent(resp), nil
}

func toEvent(resp handler.Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}
}
