package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MikhailRaia/top4top-converter/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLinker struct {
	synthesizeFunc func(originalURL, platform string) (string, error)
}

func (m *mockLinker) Synthesize(originalURL, platform string) (string, error) {
	return m.synthesizeFunc(originalURL, platform)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     model.ConversionRequest
		wantErr error
	}{
		{name: "Valid request", req: model.ConversionRequest{URL: "https://youtu.be/x", Platform: "youtube"}},
		{name: "Missing URL", req: model.ConversionRequest{Platform: "tiktok"}, wantErr: ErrMissingFields},
		{name: "Missing platform", req: model.ConversionRequest{URL: "https://youtu.be/x"}, wantErr: ErrMissingFields},
		{name: "Both missing", req: model.ConversionRequest{}, wantErr: ErrMissingFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConvertService_Convert(t *testing.T) {
	fixed := time.Date(2024, 3, 15, 10, 30, 45, 123000000, time.FixedZone("UTC+3", 3*3600))

	svc := NewConvertService(&mockLinker{
		synthesizeFunc: func(originalURL, platform string) (string, error) {
			return "https://top4top.io/yt/id_1?src=x&ref=converter&platform=" + platform, nil
		},
	})
	svc.now = func() time.Time { return fixed }

	resp, err := svc.Convert(context.Background(), model.ConversionRequest{
		URL:      "https://youtu.be/dQw4w9WgXcQ",
		Platform: "youtube",
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", resp.OriginalURL)
	assert.Equal(t, "youtube", resp.Platform)
	assert.Equal(t, "https://top4top.io/yt/id_1?src=x&ref=converter&platform=youtube", resp.Top4TopURL)
	assert.Equal(t, "2024-03-15T07:30:45.123Z", resp.ConvertedAt)
}

func TestConvertService_ConvertMissingFields(t *testing.T) {
	called := false
	svc := NewConvertService(&mockLinker{
		synthesizeFunc: func(string, string) (string, error) {
			called = true
			return "", nil
		},
	})

	_, err := svc.Convert(context.Background(), model.ConversionRequest{Platform: "tiktok"})
	assert.ErrorIs(t, err, ErrMissingFields)
	assert.False(t, called, "synthesizer must not run for invalid requests")
}

func TestConvertService_ConvertSynthesisError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewConvertService(&mockLinker{
		synthesizeFunc: func(string, string) (string, error) {
			return "", boom
		},
	})

	resp, err := svc.Convert(context.Background(), model.ConversionRequest{URL: "u", Platform: "p"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, boom)
}
