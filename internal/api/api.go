// Package api provides the algorithm-agnostic contracts shared by every
// family in the engine: the typed error kinds, and the symmetric key
// container that block ciphers, modes, KDFs and DRBGs are initialized from.
package api

import (
	"errors"
	"fmt"
)

// Kind identifies the class of failure a primitive reports. Callers should
// compare with errors.Is against the Err* sentinels below rather than
// switching on Kind directly.
type Kind int

const (
	// InvalidKey marks a key whose length is not in the primitive's legal
	// set, a nil key, or an Info exceeding a distribution-code maximum.
	InvalidKey Kind = iota
	// InvalidState marks a call made out of the required sequence, e.g.
	// Transform before Initialize, or UpdateAAD after the first Update.
	InvalidState
	// InvalidArgument marks a length or offset that does not fit the
	// primitive's contract (e.g. a non-block-multiple CBC length).
	InvalidArgument
	// AuthenticationFailure marks an AEAD tag mismatch.
	AuthenticationFailure
	// Exhausted marks a DRBG/KDF that has reached its output or reseed limit.
	Exhausted
	// EntropyFailure marks a provider that could not supply requested bytes.
	EntropyFailure
	// Unsupported marks a feature gated by an absent capability or an
	// uncompiled parameter set.
	Unsupported
)

func (k Kind) String() string {
	switch k {
	case InvalidKey:
		return "invalid key"
	case InvalidState:
		return "invalid state"
	case InvalidArgument:
		return "invalid argument"
	case AuthenticationFailure:
		return "authentication failure"
	case Exhausted:
		return "exhausted"
	case EntropyFailure:
		return "entropy failure"
	case Unsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Error is the typed error every primitive in the engine returns. Wrap it
// with fmt.Errorf("%w: ...", err) to add context without losing the Kind.
type Error struct {
	Kind   Kind
	Origin string
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Origin, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Origin, e.Kind, e.Detail)
}

// Is reports whether target carries the same Kind, so that
// errors.Is(err, api.ErrInvalidKey) works without exposing Error's fields.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

// New constructs an *Error for origin (typically a package/type name) of
// the given Kind, with an optional detail message.
func New(origin string, kind Kind, detail string) error {
	return &Error{Kind: kind, Origin: origin, Detail: detail}
}

// Sentinels usable directly with errors.Is(err, api.ErrInvalidKey).
var (
	ErrInvalidKey            = &Error{Kind: InvalidKey}
	ErrInvalidState          = &Error{Kind: InvalidState}
	ErrInvalidArgument       = &Error{Kind: InvalidArgument}
	ErrAuthenticationFailure = &Error{Kind: AuthenticationFailure}
	ErrExhausted             = &Error{Kind: Exhausted}
	ErrEntropyFailure        = &Error{Kind: EntropyFailure}
	ErrUnsupported           = &Error{Kind: Unsupported}
)
