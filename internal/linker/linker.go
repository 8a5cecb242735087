package linker

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MikhailRaia/top4top-converter/internal/generator"
)

// DefaultBaseURL is the host every synthesized link points at.
const DefaultBaseURL = "https://top4top.io"

// DefaultSegment is used for platforms without a dedicated short code.
const DefaultSegment = "media"

const referrer = "converter"

var segments = map[string]string{
	"youtube": "yt",
	"tiktok":  "tt",
	"spotify": "sp",
}

// Synthesizer builds placeholder download links. It performs no network I/O.
type Synthesizer struct {
	baseURL   string
	generator generator.IDGenerator
	now       func() time.Time
}

// NewSynthesizer constructs a Synthesizer. An empty baseURL falls back to DefaultBaseURL.
func NewSynthesizer(baseURL string, gen generator.IDGenerator) *Synthesizer {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Synthesizer{
		baseURL:   strings.TrimRight(baseURL, "/"),
		generator: gen,
		now:       time.Now,
	}
}

// WithClock replaces the wall clock, mainly for tests.
func (s *Synthesizer) WithClock(now func() time.Time) *Synthesizer {
	s.now = now
	return s
}

// PathSegment maps a platform tag to its short path code.
func PathSegment(platform string) string {
	if segment, ok := segments[platform]; ok {
		return segment
	}
	return DefaultSegment
}

// Synthesize returns a link of the form
// {base}/{segment}/{id}_{millis}?src={base64(url)}&ref=converter&platform={platform}.
func (s *Synthesizer) Synthesize(originalURL, platform string) (string, error) {
	id, err := s.generator.GenerateID()
	if err != nil {
		return "", fmt.Errorf("generate link id: %w", err)
	}

	timestamp := strconv.FormatInt(s.now().UnixMilli(), 10)
	encoded := base64.StdEncoding.EncodeToString([]byte(originalURL))

	var b strings.Builder
	b.WriteString(s.baseURL)
	b.WriteByte('/')
	b.WriteString(PathSegment(platform))
	b.WriteByte('/')
	b.WriteString(id)
	b.WriteByte('_')
	b.WriteString(timestamp)
	b.WriteString("?src=")
	b.WriteString(encoded)
	b.WriteString("&ref=")
	b.WriteString(referrer)
	b.WriteString("&platform=")
	b.WriteString(platform)

	return b.String(), nil
}
