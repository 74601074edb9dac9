package energy

import "errors"

var (
	// ErrInvalidScenario indicates that a scenario has a non-positive or
	// non-finite input. The wrapped message names the offending fields.
	ErrInvalidScenario = errors.New("energy: invalid scenario")
)
