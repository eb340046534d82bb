package leave

import (
	"time"

	"github.com/worklens/hr-portal-go/internal/domain/leave"
)

type BalanceCalculator struct {
}

func NewBalanceCalculator() *BalanceCalculator {
	return &BalanceCalculator{}
}

// CarryForward computes how much of last cycle's unused quota is still
// spendable at asOf. The policy caps the amount and expires it a number of
// months into the new cycle; a zero policy carries nothing.
func (c *BalanceCalculator) CarryForward(
	previousRemaining float64,
	policy leave.CarryForwardPolicy,
	cycleStart time.Time,
	asOf time.Time,
) float64 {
	if previousRemaining <= 0 || policy.Cap <= 0 {
		return 0
	}

	carried := previousRemaining
	if carried > policy.Cap {
		carried = policy.Cap
	}

	if policy.ExpiryMonths > 0 {
		expiry := cycleStart.AddDate(0, policy.ExpiryMonths, 0)
		if !asOf.Before(expiry) {
			return 0
		}
	}

	return carried
}

// Apply folds the carry-forward into a balance.
func (c *BalanceCalculator) Apply(balance leave.Balance, previousRemaining float64, policy leave.CarryForwardPolicy, asOf time.Time) leave.Balance {
	balance.CarriedOver = c.CarryForward(previousRemaining, policy, balance.CycleStart, asOf)
	return balance
}
