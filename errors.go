package random

import "github.com/pkg/errors"

// ErrInvalidParameter is returned, wrapped, by the distribution
// factories when a parameter lies outside the distribution's domain.
// Test for it with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")
