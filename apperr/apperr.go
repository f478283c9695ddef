// Package apperr defines the closed error taxonomy shared by the server,
// the sync client and the presentation layer. Every failure that crosses a
// package boundary is classified into exactly one Kind so callers can branch
// with errors.As instead of string matching.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is the machine-readable classification carried in HTTP error bodies.
type Kind string

const (
	// KindValidation: the request payload is malformed or misses fields.
	KindValidation Kind = "validation"
	// KindConflict: a uniqueness rule rejected the write.
	KindConflict Kind = "conflict"
	// KindNotFound: the target row or its parent does not exist.
	KindNotFound Kind = "not_found"
	// KindCascadeIntegrity: a multi-statement cascade delete failed and was
	// rolled back.
	KindCascadeIntegrity Kind = "cascade_integrity"
	// KindTimeout: the request exceeded its deadline in transit.
	KindTimeout Kind = "timeout"
	// KindConnectionRefused: the backend could not be reached at all.
	KindConnectionRefused Kind = "connection_refused"
	// KindLinkDown: the operation was rejected locally because the link is
	// known to be down. Nothing touched the network.
	KindLinkDown Kind = "link_down"
	// KindUnauthorized: the bearer token is missing or wrong.
	KindUnauthorized Kind = "unauthorized"
	// KindInternal: anything else. Details are logged, never sent to clients.
	KindInternal Kind = "internal"
)

// Error is the taxonomy carrier. It usually sits at the bottom of a chain of
// fmt.Errorf("context: %w", ...) wrappers.
type Error struct {
	Kind   Kind
	Entity string // e.g. "year", "goal"; empty for transport errors
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(entity, msg string) *Error {
	return &Error{Kind: KindValidation, Entity: entity, Msg: msg}
}

func Conflict(entity, msg string) *Error {
	return &Error{Kind: KindConflict, Entity: entity, Msg: msg}
}

func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, Msg: entity + " not found"}
}

func CascadeIntegrity(entity string, err error) *Error {
	return &Error{Kind: KindCascadeIntegrity, Entity: entity, Msg: "cascade delete failed", Err: err}
}

func Timeout(err error) *Error {
	return &Error{Kind: KindTimeout, Msg: "request timed out", Err: err}
}

func ConnectionRefused(err error) *Error {
	return &Error{Kind: KindConnectionRefused, Msg: "connection failed", Err: err}
}

func LinkDown() *Error {
	return &Error{Kind: KindLinkDown, Msg: "link is down"}
}

func Unauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Msg: "missing or invalid token"}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Msg: "internal error", Err: err}
}

// FromWire rebuilds a taxonomy error from an HTTP error body.
func FromWire(kind Kind, msg string) *Error {
	if kind == "" {
		kind = KindInternal
	}
	return &Error{Kind: kind, Msg: msg}
}

// KindOf walks the chain and returns the first classified kind, or
// KindInternal when the chain carries no *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether the chain is classified as k.
func IsKind(err error, k Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == k
}

func IsNotFound(err error) bool   { return IsKind(err, KindNotFound) }
func IsConflict(err error) bool   { return IsKind(err, KindConflict) }
func IsValidation(err error) bool { return IsKind(err, KindValidation) }
func IsLinkDown(err error) bool   { return IsKind(err, KindLinkDown) }

// IsTransport reports whether the error is a transport-level failure
// (timeout or refused connection) as opposed to a server verdict.
func IsTransport(err error) bool {
	k := KindOf(err)
	return k == KindTimeout || k == KindConnectionRefused
}
