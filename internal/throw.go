package internal

import "github.com/pkg/errors"

var (
	// No points were given.
	ErrEmptyInput = errors.New("empty input")
	// Fewer than three distinct points, or all points collinear.
	ErrDegenerateInput = errors.New("degenerate input")
	// The triangulation hit coincident or collinear vertices mid-run.
	ErrNumericDegeneracy = errors.New("numeric degeneracy")
	// A coordinate was NaN or infinite.
	ErrNonFiniteInput = errors.New("non-finite coordinate")
	// Options that cannot produce a valid triangulation.
	ErrInvalidOptions = errors.New("invalid options")
)

// Input problems are caught before the main loop and returned normally.
// Anything that goes wrong inside the insertion loop is a broken invariant, and
// threading errors through every helper would add a lot of noise for a path
// that should never run. Instead, we use panics, and Triangulate recovers to
// convert them to an error.

type TriangulateError struct {
	error
}

func (e TriangulateError) Cause() error {
	return e.error
}

func (e TriangulateError) Unwrap() error {
	return e.error
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

// Panic with a TriangulateError wrapping err, so that errors.Is still matches
// the sentinel after recovery.
func throw(err error, format string, args ...interface{}) {
	panic(TriangulateError{errors.Wrapf(err, format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError.error
		}
		panic(r)
	}
	return nil
}
