package internal

import "github.com/pkg/errors"

// Threading errors up and down the sweep would add a ton of noise for
// conditions that can only come from misusing the package. Instead, we use
// panics, and the public API recovers to convert to an error.

// Returned (wrapped) when a structure is queried before it is ready, e.g. a
// SiteList consumed before it was sorted, or a region requested before its
// edges were clipped.
var ErrOutOfSequence = errors.New("out of sequence")

type VoronoiError struct {
	error
}

func (e VoronoiError) Unwrap() error {
	return e.error
}

// Panic with a VoronoiError.
func fatalf(format string, args ...interface{}) {
	panic(VoronoiError{errors.Errorf(format, args...)})
}

func fatal(err error, message string) {
	panic(VoronoiError{errors.Wrap(err, message)})
}

// Convert a recovered VoronoiError back into an error. Anything else is a real
// panic and gets re-raised.
func HandleVoronoiPanicRecover(r interface{}) error {
	if r != nil {
		if voronoiError, ok := r.(VoronoiError); ok {
			return voronoiError.error
		}
		panic(r)
	}
	return nil
}
