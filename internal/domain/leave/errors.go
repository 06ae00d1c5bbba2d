package leave

import "errors"

var (
	ErrLeaveTypeNotFound    = errors.New("leave type not found")
	ErrLeaveRequestNotFound = errors.New("leave request not found")
)
