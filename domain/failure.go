package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a scan/gate failure for callers that need to map it
// to a transport status or a retry decision.
type ErrorKind string

const (
	KindConfiguration       ErrorKind = "configuration"
	KindUpstreamUnavailable ErrorKind = "upstream_unavailable"
	KindNotFound            ErrorKind = "not_found"
	KindEntitlementMissing  ErrorKind = "entitlement_missing"
	KindQuotaExceeded       ErrorKind = "quota_exceeded"
	KindPersistenceFailure  ErrorKind = "persistence_failure"
)

// Failure is the single structured error surfaced for whole-batch problems.
// Per-item enrichment misses never become a Failure.
type Failure struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Message, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func NewFailure(kind ErrorKind, message string, err error) *Failure {
	return &Failure{Kind: kind, Message: message, Err: err}
}

// KindOf returns the ErrorKind carried by err, or "" when err is not a
// Failure.
func KindOf(err error) ErrorKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return ""
}
