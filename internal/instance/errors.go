package instance

import "github.com/pkg/errors"

// ErrMalformed is returned for input that does not follow the grammar or
// whose header disagrees with its body.
var ErrMalformed = errors.New("instance: malformed input")
