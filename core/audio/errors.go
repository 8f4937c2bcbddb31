package audio

import "errors"

// ErrPermissionDenied signals that the capture device could not be acquired,
// either because access was declined or because no device is available.
var ErrPermissionDenied = errors.New("audio capture permission denied")
