package leave

import (
	"context"
	"time"
)

// LeaveDayRepository answers whether a date is an approved leave day for an
// employee. Feeds the attendance status engine's LEAVE_DAY override.
type LeaveDayRepository interface {
	IsLeaveDay(ctx context.Context, employeeID string, workDate time.Time, companyID string) (bool, error)
}

// BalanceRepository defines data access for leave balances.
type BalanceRepository interface {
	// GetBalance returns the employee's balance for the cycle containing asOf
	GetBalance(ctx context.Context, employeeID string, asOf time.Time, companyID string) (Balance, error)

	// GetPreviousCycleRemaining returns unused quota from the cycle before asOf
	GetPreviousCycleRemaining(ctx context.Context, employeeID string, asOf time.Time, companyID string) (float64, error)
}
