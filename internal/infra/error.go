package infra

import (
	"errors"

	"pos-gateway/internal/pkg/errs"
)

type UpstreamErrorKind string

// UpstreamError classifies a failed call to the store API. msg is the
// human-readable message surfaced to the cashier (for KindRejected it carries
// the backend's own validation text verbatim).
type UpstreamError struct {
	Kind UpstreamErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e UpstreamError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e UpstreamError) Unwrap() error {
	return e.err
}

func (e UpstreamError) Message() string {
	return e.msg
}

func WrapUpstreamErr(msg string, err error, kinds ...UpstreamErrorKind) error {
	kind := KindUpstreamFailure
	if len(kinds) > 0 {
		kind = kinds[0]
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return UpstreamError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind UpstreamErrorKind) bool {
	var e UpstreamError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// UserMessage extracts the surfaceable message from an upstream error, or
// falls back to the given default.
func UserMessage(err error, fallback string) string {
	var e UpstreamError
	if errors.As(err, &e) && e.msg != "" {
		return e.msg
	}
	return fallback
}

// Infrastructure-specific error kinds
const (
	KindNotFound        UpstreamErrorKind = "NOT_FOUND"
	KindUnauthorized    UpstreamErrorKind = "UNAUTHORIZED"
	KindRejected        UpstreamErrorKind = "REJECTED"
	KindUnavailable     UpstreamErrorKind = "UNAVAILABLE"
	KindBadResponse     UpstreamErrorKind = "BAD_RESPONSE"
	KindUpstreamFailure UpstreamErrorKind = "UPSTREAM_FAILURE"
)
