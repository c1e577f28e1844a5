// Package errorspkg provides common app errors.
package errorspkg

import "errors"

// ErrInternal indicates an unrecoverable internal fault.
var ErrInternal = errors.New("internal")
