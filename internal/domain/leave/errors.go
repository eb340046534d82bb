package leave

import "errors"

// Leave domain errors
var (
	ErrBalanceNotFound = errors.New("leave balance not found")
)
