package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidCategory  = errors.New("invalid employee category")
	ErrUnauthorized     = errors.New("unauthorized to access this employee")
)
