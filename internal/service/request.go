package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MikhailRaia/top4top-converter/internal/model"
)

// ErrInvalidField is returned when a field holds a truthy value that is not a string.
var ErrInvalidField = errors.New("must be a string")

// DecodeRequest parses a conversion body. Absent, null, "", 0 and false fields
// decode to "" and are rejected later by Validate. Bodies that parse to a
// non-object value carry no fields at all.
func DecodeRequest(body []byte) (model.ConversionRequest, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return model.ConversionRequest{}, err
	}

	var fields map[string]any
	switch t := v.(type) {
	case nil:
		return model.ConversionRequest{}, ErrInvalidBody
	case map[string]any:
		fields = t
	}

	url, err := stringField(fields, "url")
	if err != nil {
		return model.ConversionRequest{}, err
	}
	platform, err := stringField(fields, "platform")
	if err != nil {
		return model.ConversionRequest{}, err
	}

	return model.ConversionRequest{URL: url, Platform: platform}, nil
}

func stringField(fields map[string]any, name string) (string, error) {
	switch t := fields[name].(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		if !t {
			return "", nil
		}
	case float64:
		if t == 0 {
			return "", nil
		}
	}
	return "", fmt.Errorf("%s %w", name, ErrInvalidField)
}
