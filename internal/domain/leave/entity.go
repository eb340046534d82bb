package leave

import "time"

// Balance is an employee's leave standing for the current entitlement cycle.
type Balance struct {
	EmployeeID  string
	CompanyID   string
	CycleStart  time.Time
	Quota       float64
	Used        float64
	CarriedOver float64
}

// Remaining returns the spendable balance.
func (b Balance) Remaining() float64 {
	remaining := b.Quota + b.CarriedOver - b.Used
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CarryForwardPolicy bounds how much unused quota rolls into the next cycle
// and how long it stays spendable.
type CarryForwardPolicy struct {
	Cap          float64
	ExpiryMonths int
}

// DefaultCarryForwardPolicy caps rollover at five days, spendable for the
// first half of the new cycle.
var DefaultCarryForwardPolicy = CarryForwardPolicy{
	Cap:          5,
	ExpiryMonths: 6,
}
