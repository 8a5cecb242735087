package service

import (
	"testing"

	"github.com/MikhailRaia/top4top-converter/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRequest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		want        model.ConversionRequest
		wantErr     error
		wantAnyErr  bool
		wantMissing bool
	}{
		{
			name: "Valid body",
			body: `{"url":"https://youtu.be/abc123","platform":"youtube"}`,
			want: model.ConversionRequest{URL: "https://youtu.be/abc123", Platform: "youtube"},
		},
		{name: "Zero url", body: `{"url":0,"platform":"youtube"}`, want: model.ConversionRequest{Platform: "youtube"}, wantMissing: true},
		{name: "False url", body: `{"url":false,"platform":"youtube"}`, want: model.ConversionRequest{Platform: "youtube"}, wantMissing: true},
		{name: "Null url", body: `{"url":null,"platform":"youtube"}`, want: model.ConversionRequest{Platform: "youtube"}, wantMissing: true},
		{name: "Zero platform", body: `{"url":"https://x","platform":0}`, want: model.ConversionRequest{URL: "https://x"}, wantMissing: true},
		{name: "Empty array", body: `[]`, wantMissing: true},
		{name: "Number body", body: `5`, wantMissing: true},
		{name: "String body", body: `"x"`, wantMissing: true},
		{name: "Null body", body: `null`, wantErr: ErrInvalidBody},
		{name: "Numeric url", body: `{"url":42,"platform":"youtube"}`, wantErr: ErrInvalidField},
		{name: "True platform", body: `{"url":"https://x","platform":true}`, wantErr: ErrInvalidField},
		{name: "Object url", body: `{"url":{},"platform":"youtube"}`, wantErr: ErrInvalidField},
		{name: "Syntax error", body: `{not json`, wantAnyErr: true},
		{name: "Empty body", body: ``, wantAnyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeRequest([]byte(tt.body))

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantAnyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				if tt.wantMissing {
					assert.ErrorIs(t, Validate(got), ErrMissingFields)
				}
			}
		})
	}
}

func TestDecodeRequest_FieldErrorMessage(t *testing.T) {
	_, err := DecodeRequest([]byte(`{"url":42,"platform":"youtube"}`))
	require.Error(t, err)
	assert.Equal(t, "url must be a string", err.Error())
}
