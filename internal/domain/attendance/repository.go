package attendance

import "context"

type PunchRepository interface {
	GetByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]Punch, error)
}
