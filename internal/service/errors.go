package service

import (
	"errors"
	"fmt"

	"github.com/cypherlabdev/event-betting-service/internal/store"
)

// Kind classifies betting failures so callers can switch on them
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidOption
	KindEventClosed
	KindDuplicateBet
	KindTransientFailure
	KindInvariantViolation
	KindInvalidInput
	KindAlreadySettled
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidOption:
		return "invalid_option"
	case KindEventClosed:
		return "event_closed"
	case KindDuplicateBet:
		return "duplicate_bet"
	case KindTransientFailure:
		return "transient_failure"
	case KindInvariantViolation:
		return "invariant_violation"
	case KindInvalidInput:
		return "invalid_input"
	case KindAlreadySettled:
		return "already_settled"
	default:
		return "unknown"
	}
}

// Retryable reports whether a caller may retry the identical request
func (k Kind) Retryable() bool {
	return k == KindTransientFailure
}

// Error is a classified failure of a service operation
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" && e.Err == nil {
		return e.Kind.String()
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the bare kind sentinels below
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Op != "" || t.Err != nil {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrInvalidOption      = &Error{Kind: KindInvalidOption}
	ErrEventClosed        = &Error{Kind: KindEventClosed}
	ErrDuplicateBet       = &Error{Kind: KindDuplicateBet}
	ErrTransientFailure   = &Error{Kind: KindTransientFailure}
	ErrInvariantViolation = &Error{Kind: KindInvariantViolation}
	ErrInvalidInput       = &Error{Kind: KindInvalidInput}
	ErrAlreadySettled     = &Error{Kind: KindAlreadySettled}
)

// KindOf returns the kind of err, or KindUnknown for unclassified errors
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// classify turns store and context failures into service errors.
// Anything the store cannot explain is treated as transient.
func classify(op string, err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		return newError(KindNotFound, op, err)
	case errors.Is(err, store.ErrDuplicateBet):
		return newError(KindDuplicateBet, op, err)
	case errors.Is(err, store.ErrDuplicateGambler):
		return newError(KindInvalidInput, op, err)
	default:
		return newError(KindTransientFailure, op, err)
	}
}
