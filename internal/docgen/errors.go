package docgen

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const ioFailureCode = "IO_FAILURE"

// IOFailure reports a source, template or output file that could not be read
// or written.
type IOFailure struct {
	Op   string
	Path string
	Err  error
}

func (e *IOFailure) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOFailure) Unwrap() error { return e.Err }

func wrapIOError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	failure := &IOFailure{Op: op, Path: path, Err: err}
	return goerrors.Wrap(failure, goerrors.CategoryCommand, failure.Error()).
		WithTextCode(ioFailureCode)
}

// IsIOFailure reports whether err carries an *IOFailure.
func IsIOFailure(err error) bool {
	var failure *IOFailure
	return errors.As(err, &failure)
}
