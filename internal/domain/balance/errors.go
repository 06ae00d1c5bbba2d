package balance

import "errors"

var (
	ErrBalanceNotFound        = errors.New("monthly balance not found")
	ErrMonthAlreadyClosed     = errors.New("month is already closed")
	ErrPreviousMonthNotClosed = errors.New("previous month is not closed")
	ErrDownstreamMonthClosed  = errors.New("a later month is already closed")
	ErrMonthClosedForEdits    = errors.New("month is closed; entries can no longer be modified")

	ErrGrantNotFound         = errors.New("comp-off grant not found")
	ErrGrantAlreadyProcessed = errors.New("comp-off grant already processed")
	ErrPermissionNotFound    = errors.New("permission entry not found")
)
