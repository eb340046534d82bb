package leave

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklens/hr-portal-go/internal/domain/leave"
)

type fakeBalanceRepo struct {
	balance     leave.Balance
	balanceErr  error
	previous    float64
	previousErr error
}

func (f *fakeBalanceRepo) GetBalance(ctx context.Context, employeeID string, asOf time.Time, companyID string) (leave.Balance, error) {
	if f.balanceErr != nil {
		return leave.Balance{}, f.balanceErr
	}
	return f.balance, nil
}

func (f *fakeBalanceRepo) GetPreviousCycleRemaining(ctx context.Context, employeeID string, asOf time.Time, companyID string) (float64, error) {
	if f.previousErr != nil {
		return 0, f.previousErr
	}
	return f.previous, nil
}

func leaveTestContext(t *testing.T) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"type":        "access",
		"employee_id": "emp-1",
		"company_id":  "co-1",
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func newLeaveService(repo *fakeBalanceRepo) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		BalanceRepository: repo,
		calculator:        NewBalanceCalculator(),
		policy:            leave.CarryForwardPolicy{Cap: 5, ExpiryMonths: 6},
		now:               func() time.Time { return time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC) },
	}
}

func TestBalanceWithCarryForward(t *testing.T) {
	cycleStart := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	svc := newLeaveService(&fakeBalanceRepo{
		balance: leave.Balance{
			EmployeeID: "emp-1",
			CompanyID:  "co-1",
			CycleStart: cycleStart,
			Quota:      12,
			Used:       2,
		},
		previous: 3,
	})

	resp, err := svc.Balance(leaveTestContext(t))
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "2026-01-01", resp.CycleStart)
	assert.Equal(t, 3.0, resp.CarriedOver)
	assert.Equal(t, 13.0, resp.Remaining)
}

func TestBalanceFirstCycle(t *testing.T) {
	// No previous cycle row means no carry-forward, not an error.
	svc := newLeaveService(&fakeBalanceRepo{
		balance: leave.Balance{
			EmployeeID: "emp-1",
			CycleStart: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			Quota:      12,
		},
		previousErr: pgx.ErrNoRows,
	})

	resp, err := svc.Balance(leaveTestContext(t))
	require.NoError(t, err)
	assert.Zero(t, resp.CarriedOver)
	assert.Equal(t, 12.0, resp.Remaining)
}

func TestBalanceNotFound(t *testing.T) {
	svc := newLeaveService(&fakeBalanceRepo{balanceErr: pgx.ErrNoRows})

	_, err := svc.Balance(leaveTestContext(t))
	assert.ErrorIs(t, err, leave.ErrBalanceNotFound)
}

func TestBalanceRequiresIdentity(t *testing.T) {
	svc := newLeaveService(&fakeBalanceRepo{})

	_, err := svc.Balance(context.Background())
	assert.Error(t, err)
}
