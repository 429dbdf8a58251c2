package esdc

import "errors"

// ErrConfiguration is returned by New (and NewFromEnv) when the base URL,
// API key or an option value is invalid. It is never returned at call time.
var ErrConfiguration = errors.New("invalid client configuration")

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool { return errors.Is(err, ErrConfiguration) }
