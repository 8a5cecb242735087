package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MikhailRaia/top4top-converter/internal/config"
	"github.com/MikhailRaia/top4top-converter/internal/generator"
	"github.com/MikhailRaia/top4top-converter/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_Integration(t *testing.T) {
	cfg := &config.Config{
		ServerAddress: ":8080",
		BaseURL:       "http://localhost:8080",
		IDStrategy:    generator.StrategyUUID,
	}

	app, err := NewApp(cfg)
	require.NoError(t, err)

	server := httptest.NewServer(app.handler)
	defer server.Close()

	resp, err := http.Post(
		server.URL+"/api/convert",
		"application/json",
		strings.NewReader(`{"url":"https://open.spotify.com/album/xyz","platform":"spotify"}`),
	)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	var body model.ConversionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.True(t, body.Success)
	assert.True(t, strings.HasPrefix(body.Top4TopURL, cfg.BaseURL+"/sp/"),
		"link %s does not start with base URL %s", body.Top4TopURL, cfg.BaseURL)

	req, err := http.NewRequest(http.MethodOptions, server.URL+"/", nil)
	require.NoError(t, err)

	preflight, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer preflight.Body.Close()

	assert.Equal(t, http.StatusOK, preflight.StatusCode)
	assert.Equal(t, "POST, OPTIONS", preflight.Header.Get("Access-Control-Allow-Methods"))
}

func TestNewApp_UnknownStrategy(t *testing.T) {
	_, err := NewApp(&config.Config{IDStrategy: "sequential"})
	assert.ErrorIs(t, err, generator.ErrUnknownStrategy)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := NewApp(&config.Config{ServerAddress: "127.0.0.1:0"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
