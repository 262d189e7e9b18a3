package scenario

import "errors"

var (
	// ErrScenarioNotFound indicates no requested scenario could be resolved
	ErrScenarioNotFound = errors.New("scenario not found")
)
