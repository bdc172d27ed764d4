package genre

import "errors"

var (
	ErrGenreNotFound    = errors.New("genre not found")
	ErrParentNotFound   = errors.New("parent genre not found")
	ErrDuplicateName    = errors.New("genre name already exists")
	ErrMaxDepthExceeded = errors.New("genre tree depth limit exceeded")
	ErrCycleDetected    = errors.New("reparenting would create a cycle")
	ErrHasChildren      = errors.New("genre has child genres")
	ErrGenreInUse       = errors.New("genre is referenced by books")
)
