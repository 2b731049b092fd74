package bookingfile

import "errors"

// ErrIO marks any booking-file open/read/write failure. Fatal for the
// enclosing operation; callers never retry.
var ErrIO = errors.New("booking file i/o failure")
