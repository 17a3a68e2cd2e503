// Package candidates loads and normalizes candidate records produced by resume extraction.
package candidates

import "fmt"

// LoadError represents an error during file I/O, schema validation or JSON parsing
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// NormalizationError represents an invalid candidate record
type NormalizationError struct {
	Index   int
	Message string
	Cause   error
}

func (e *NormalizationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("normalization error: candidate %d: %s: %v", e.Index, e.Message, e.Cause)
	}
	return fmt.Sprintf("normalization error: candidate %d: %s", e.Index, e.Message)
}

func (e *NormalizationError) Unwrap() error {
	return e.Cause
}
