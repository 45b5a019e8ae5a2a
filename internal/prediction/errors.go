package prediction

import "errors"

var ErrMissingOwner = errors.New("userId is required")
