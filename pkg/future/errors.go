package future

import "errors"

var (
	ErrCanceled   = errors.New("future: future was canceled")
	ErrTimeout    = errors.New("future: timed out waiting for settlement")
	ErrNilFailure = errors.New("future: future failed with nil error")
)
