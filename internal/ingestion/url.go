package ingestion

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/resume-screener/internal/fetch"
	"go.uber.org/zap"
)

var (
	// ErrHTTPRequestFailed is returned when the job page cannot be fetched
	ErrHTTPRequestFailed = errors.New("HTTP request failed")
	// ErrContentExtractionFailed is returned when no text can be extracted from the page
	ErrContentExtractionFailed = errors.New("content extraction failed")
)

// IngestFromURL fetches a job posting, extracts its main text with platform-specific
// selectors and returns the cleaned text with metadata. opts and logger may be nil.
func IngestFromURL(ctx context.Context, urlStr string, opts *fetch.Options, logger *zap.Logger) (string, *Metadata, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	platform := fetch.DetectPlatform(urlStr)
	logger.Debug("fetching job posting", zap.String("url", urlStr), zap.String("platform", string(platform)))

	result, err := fetch.URL(ctx, urlStr, opts)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	logger.Debug("fetched job posting", zap.Int("bytes", len(result.HTML)))

	text, err := fetch.ExtractMainText(result.HTML,
		fetch.PlatformContentSelectors(platform),
		fetch.PlatformNoiseSelectors(platform)...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, ErrEmptyContent)
	}
	logger.Debug("extracted job description", zap.Int("chars", len(cleaned)))

	metadata := NewMetadata(cleaned)
	metadata.URL = urlStr
	metadata.Platform = string(platform)
	return cleaned, metadata, nil
}

// Ingest loads a job description from path or, when path is empty, from urlStr
func Ingest(ctx context.Context, path, urlStr string, opts *fetch.Options, logger *zap.Logger) (string, *Metadata, error) {
	switch {
	case path != "":
		return IngestFromFile(path)
	case urlStr != "":
		return IngestFromURL(ctx, urlStr, opts, logger)
	default:
		return "", nil, errors.New("either a job description file or URL is required")
	}
}
