package domain

import (
	"errors"
	"fmt"
)

var ErrMissingID = errors.New("entity id is required")
var ErrAccountNotFound = errors.New("account not found")
var ErrRenterNotFound = errors.New("renter not found")
var ErrMembershipNotFound = errors.New("membership not found")
var ErrInvalidMembership = errors.New("invalid membership")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnrecognizedTime = errors.New("unrecognized time format")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidInput = errors.New("invalid input")

// CacheError reports a fault in the local cache layer (I/O, encoding). It is
// kept distinct from remote faults so callers can degrade to the remote path.
type CacheError struct {
	Op  string
	Key string
	Err error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("cache %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *CacheError) Unwrap() error { return e.Err }

// IsCacheFault reports whether err (or anything it wraps) is a *CacheError.
func IsCacheFault(err error) bool {
	var ce *CacheError
	return errors.As(err, &ce)
}
