package orientation

import "github.com/pkg/errors"

// The ring scan rejects malformed input with a panic rather than threading
// an error return through the scan helpers. The public API recovers and
// converts it back to an ordinary error.

type RingError error

// Panic with a RingError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleRingPanicRecover(r interface{}) error {
	if r != nil {
		if ringError, ok := r.(RingError); ok {
			return ringError
		}
		panic(r)
	}
	return nil
}
