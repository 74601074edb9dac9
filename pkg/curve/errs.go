package curve

import "errors"

var (
	// ErrUnavailable indicates that no chart renderer was provided.
	ErrUnavailable = errors.New("curve: chart renderer unavailable")

	// ErrBadRange indicates invalid sampling options.
	ErrBadRange = errors.New("curve: bad sampling range")
)
