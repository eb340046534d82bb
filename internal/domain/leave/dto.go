package leave

// BalanceResponse is the read-only leave standing exposed to the portal.
type BalanceResponse struct {
	EmployeeID  string  `json:"employee_id"`
	CycleStart  string  `json:"cycle_start"`
	Quota       float64 `json:"quota"`
	Used        float64 `json:"used"`
	CarriedOver float64 `json:"carried_over"`
	Remaining   float64 `json:"remaining"`
}
