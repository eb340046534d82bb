package leave

import "context"

// LeaveService exposes the read side of leave balances.
type LeaveService interface {
	// Balance returns the authenticated employee's current-cycle balance
	// including carry-forward
	Balance(ctx context.Context) (BalanceResponse, error)
}
