package domain

import "errors"

var (
	ErrUnsupportedFormat   = errors.New("unsupported document format")
	ErrSourceNotFound      = errors.New("source document not found")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrProviderUnavailable = errors.New("no structuring provider available")
	ErrProviderTimeout     = errors.New("structuring provider timed out")
	ErrMalformedResponse   = errors.New("malformed provider response")
	ErrValidationFailed    = errors.New("structured output failed validation")
	ErrExtractionEmpty     = errors.New("extracted text is empty")
)
