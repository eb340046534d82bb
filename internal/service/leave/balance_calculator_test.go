package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/worklens/hr-portal-go/internal/domain/leave"
)

func TestCarryForward(t *testing.T) {
	calc := NewBalanceCalculator()
	cycleStart := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	policy := leave.CarryForwardPolicy{Cap: 5, ExpiryMonths: 6}

	cases := []struct {
		name     string
		previous float64
		policy   leave.CarryForwardPolicy
		asOf     time.Time
		want     float64
	}{
		{"within cap and expiry", 3, policy, cycleStart.AddDate(0, 1, 0), 3},
		{"capped", 12, policy, cycleStart.AddDate(0, 1, 0), 5},
		{"expired", 3, policy, cycleStart.AddDate(0, 6, 0), 0},
		{"day before expiry", 3, policy, cycleStart.AddDate(0, 6, -1), 3},
		{"nothing to carry", 0, policy, cycleStart.AddDate(0, 1, 0), 0},
		{"zero policy carries nothing", 3, leave.CarryForwardPolicy{}, cycleStart.AddDate(0, 1, 0), 0},
		{"no expiry means never expires", 3, leave.CarryForwardPolicy{Cap: 5}, cycleStart.AddDate(2, 0, 0), 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := calc.CarryForward(tc.previous, tc.policy, cycleStart, tc.asOf)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestApply(t *testing.T) {
	calc := NewBalanceCalculator()
	cycleStart := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	balance := leave.Balance{
		EmployeeID: "emp-1",
		CycleStart: cycleStart,
		Quota:      12,
		Used:       4,
	}

	applied := calc.Apply(balance, 8, leave.CarryForwardPolicy{Cap: 5, ExpiryMonths: 6}, cycleStart.AddDate(0, 2, 0))
	assert.Equal(t, 5.0, applied.CarriedOver)
	assert.Equal(t, 13.0, applied.Remaining())
}

func TestRemainingClampsAtZero(t *testing.T) {
	balance := leave.Balance{Quota: 10, Used: 14}
	assert.Equal(t, 0.0, balance.Remaining())
}
