package model

// ConversionRequest is the JSON body accepted by the convert endpoint.
type ConversionRequest struct {
	URL      string `json:"url"`
	Platform string `json:"platform"`
}

// ConversionResponse is returned for a successful conversion.
type ConversionResponse struct {
	Success     bool   `json:"success"`
	OriginalURL string `json:"originalUrl"`
	Top4TopURL  string `json:"top4topUrl"`
	Platform    string `json:"platform"`
	ConvertedAt string `json:"convertedAt"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewErrorResponse builds a failure body with the given message.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}
