package diskfree

import (
	"errors"
	"fmt"
)

// errNoMatchingMount is wrapped by a PathNotFoundError when a path exists but
// no listed filesystem contains it.
var errNoMatchingMount = errors.New("no mounted filesystem contains the path")

// PathNotFoundError reports a requested path that could not be resolved to a
// mounted filesystem. It only affects that path.
type PathNotFoundError struct {
	Path string
	Err  error
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *PathNotFoundError) Unwrap() error {
	return e.Err
}
