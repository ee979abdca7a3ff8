package arbor

import (
	"errors"
	"fmt"
)

// StatusCode is the result of a lifecycle phase.
type StatusCode uint8

const (
	StatusOk StatusCode = iota
	StatusMissingObject
	StatusInvalidObject
	StatusFailedInversion
)

// Sentinel errors matched by errors.Is against an *InitError.
var (
	ErrMissingObject   = errors.New("arbor: missing object")
	ErrInvalidObject   = errors.New("arbor: invalid object")
	ErrFailedInversion = errors.New("arbor: failed inversion")
)

func (s StatusCode) String() string {
	switch s {
	case StatusOk:
		return "Ok"
	case StatusMissingObject:
		return "MissingObject"
	case StatusInvalidObject:
		return "InvalidObject"
	case StatusFailedInversion:
		return "FailedInversion"
	default:
		return fmt.Sprintf("StatusCode(%d)", uint8(s))
	}
}

// Err returns the sentinel error for s, or nil for StatusOk.
func (s StatusCode) Err() error {
	switch s {
	case StatusOk:
		return nil
	case StatusMissingObject:
		return ErrMissingObject
	case StatusInvalidObject:
		return ErrInvalidObject
	case StatusFailedInversion:
		return ErrFailedInversion
	default:
		return fmt.Errorf("arbor: status %d", uint8(s))
	}
}

// ErrAlreadyInitialized is returned by a second Artboard.Initialize call.
var ErrAlreadyInitialized = errors.New("arbor: artboard already initialized")

// InitError is returned by Artboard.Initialize when a lifecycle phase fails.
type InitError struct {
	Status   StatusCode
	Phase    string // "dirty" or "clean"
	ObjectID uint32 // NoID for animation objects
	Type     string
}

func (e *InitError) Error() string {
	if e.ObjectID == NoID {
		return fmt.Sprintf("arbor: %s phase: %s on %s", e.Phase, e.Status, e.Type)
	}
	return fmt.Sprintf("arbor: %s phase: %s on %s #%d", e.Phase, e.Status, e.Type, e.ObjectID)
}

// Unwrap exposes the status sentinel.
func (e *InitError) Unwrap() error { return e.Status.Err() }

// ImportError reports a malformed or unsupported file.
type ImportError struct {
	Stage string // what was being read
	Err   error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("arbor: import %s: %v", e.Stage, e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }

// Import failure causes wrapped by ImportError.
var (
	ErrBadFingerprint     = errors.New("bad fingerprint")
	ErrUnsupportedVersion = errors.New("unsupported major version")
	ErrNoArtboard         = errors.New("object outside of an artboard")
	ErrUnknownProperty    = errors.New("property not in table of contents")
	ErrOrphanObject       = errors.New("animation object without an owner")
)
