package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrorKind is a machine-checkable classification of a service failure.
// Callers branch on the kind instead of matching error strings.
type ErrorKind string

const (
	// KindMissingCredential means the selected provider has no API key
	// configured. Detected before any request is attempted.
	KindMissingCredential ErrorKind = "missing_credential"

	// KindNoParsedOutput means the provider responded, but the content
	// could not be used: malformed JSON, schema violation, empty
	// completion, or output truncated at the token limit.
	KindNoParsedOutput ErrorKind = "no_parsed_output"

	// KindUpstreamFailure means the provider call itself failed: network
	// error, 5xx, rate limit, or any other API-level error.
	KindUpstreamFailure ErrorKind = "upstream_failure"
)

// ServiceError is the error type returned by every Provider in this
// package. Kind is the stable classification; Err carries detail.
type ServiceError struct {
	Kind ErrorKind

	// Retryable reports whether a retry is plausible. Rate limits and
	// 5xx responses are retryable; truncation and missing credentials
	// are not. Schema violations are retryable once (the retry layer
	// enforces the cap).
	Retryable bool

	// RetryAfter is a provider-suggested wait before retrying.
	// Zero when the provider gave no hint.
	RetryAfter time.Duration

	// Content holds the raw response body for no_parsed_output errors,
	// for event logging and debugging. Nil otherwise.
	Content json.RawMessage

	Err error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llm %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("llm %s", e.Kind)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// missingCredential builds a missing_credential error for the named provider.
func missingCredential(provider string) *ServiceError {
	return &ServiceError{
		Kind: KindMissingCredential,
		Err:  fmt.Errorf("%s API key is required", provider),
	}
}

// noParsedOutput builds a no_parsed_output error. retryable should be true
// for schema violations (regeneration may fix them) and false for token
// truncation (a configuration problem).
func noParsedOutput(content json.RawMessage, retryable bool, err error) *ServiceError {
	return &ServiceError{
		Kind:      KindNoParsedOutput,
		Retryable: retryable,
		Content:   content,
		Err:       err,
	}
}

// upstreamFailure builds an upstream_failure error.
func upstreamFailure(retryable bool, retryAfter time.Duration, err error) *ServiceError {
	return &ServiceError{
		Kind:       KindUpstreamFailure,
		Retryable:  retryable,
		RetryAfter: retryAfter,
		Err:        err,
	}
}
