package factory

import "errors"

// ErrConfiguration is returned when an entity cannot be built from the
// given setup. It is fatal for that entity.
var ErrConfiguration = errors.New("configuration error")
