package sqlite

import "errors"

// ErrTaskNotFound is returned when an id does not resolve to a stored task.
var ErrTaskNotFound = errors.New("task not found")
