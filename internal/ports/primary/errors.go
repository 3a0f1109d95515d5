package primary

import "errors"

// ErrInvalid marks requests rejected by input validation. Services wrap it
// with the reason; the API boundary maps it to a client error status.
var ErrInvalid = errors.New("invalid request")
