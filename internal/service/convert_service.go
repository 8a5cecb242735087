package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MikhailRaia/top4top-converter/internal/extractor"
	"github.com/MikhailRaia/top4top-converter/internal/linker"
	"github.com/MikhailRaia/top4top-converter/internal/model"
	"github.com/rs/zerolog/log"
)

// ISO8601Millis mirrors the millisecond UTC timestamps used in responses.
const ISO8601Millis = "2006-01-02T15:04:05.000Z07:00"

var (
	// ErrMissingFields is returned when url or platform is empty.
	ErrMissingFields = errors.New("URL and platform are required")
	// ErrInvalidBody is returned when the body is valid JSON but not an object.
	ErrInvalidBody = errors.New("request body must be a JSON object")
)

// LinkSynthesizer builds the placeholder download link.
type LinkSynthesizer interface {
	Synthesize(originalURL, platform string) (string, error)
}

// ConvertService validates conversion requests and shapes their responses.
type ConvertService struct {
	linker LinkSynthesizer
	now    func() time.Time
}

// NewConvertService constructs a ConvertService around the given synthesizer.
func NewConvertService(l LinkSynthesizer) *ConvertService {
	return &ConvertService{
		linker: l,
		now:    time.Now,
	}
}

// Validate reports ErrMissingFields when either field is empty.
func Validate(req model.ConversionRequest) error {
	if req.URL == "" || req.Platform == "" {
		return ErrMissingFields
	}
	return nil
}

// Convert synthesizes a link for req.
func (s *ConvertService) Convert(ctx context.Context, req model.ConversionRequest) (*model.ConversionResponse, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	link, err := s.linker.Synthesize(req.URL, req.Platform)
	if err != nil {
		log.Error().Err(err).Str("platform", req.Platform).Msg("Link synthesis failed")
		return nil, fmt.Errorf("synthesize link: %w", err)
	}

	event := log.Info().
		Str("platform", req.Platform).
		Str("segment", linker.PathSegment(req.Platform))
	if mediaID, ok := extractor.MediaID(req.Platform, req.URL); ok {
		event = event.Str("media_id", mediaID)
	}
	event.Msg("URL converted")

	return &model.ConversionResponse{
		Success:     true,
		OriginalURL: req.URL,
		Top4TopURL:  link,
		Platform:    req.Platform,
		ConvertedAt: s.now().UTC().Format(ISO8601Millis),
	}, nil
}
