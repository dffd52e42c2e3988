package crud

import "errors"

// ErrStaleRecord is returned by UpdateByKey when the row changed between the
// read and the write.
var ErrStaleRecord = errors.New("record was modified concurrently")

type MissingFieldError struct {
	Column string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Column
}
