package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/worklens/hr-portal-go/internal/domain/leave"
	"github.com/worklens/hr-portal-go/internal/pkg/database"
)

type leaveDayRepository struct {
	db *database.DB
}

func NewLeaveDayRepository(db *database.DB) leave.LeaveDayRepository {
	return &leaveDayRepository{db: db}
}

// IsLeaveDay implements leave.LeaveDayRepository. Only approved requests
// block the attendance clock.
func (l *leaveDayRepository) IsLeaveDay(ctx context.Context, employeeID string, workDate time.Time, companyID string) (bool, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
			  AND company_id = $2
			  AND status = 'approved'
			  AND $3 BETWEEN start_date AND end_date
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, companyID, workDate).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check leave day: %w", err)
	}

	return exists, nil
}

type balanceRepository struct {
	db *database.DB
}

func NewBalanceRepository(db *database.DB) leave.BalanceRepository {
	return &balanceRepository{db: db}
}

// GetBalance implements leave.BalanceRepository.
func (b *balanceRepository) GetBalance(ctx context.Context, employeeID string, asOf time.Time, companyID string) (leave.Balance, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT employee_id, company_id, cycle_start, quota, used
		FROM leave_balances
		WHERE employee_id = $1
		  AND company_id = $2
		  AND cycle_start <= $3
		ORDER BY cycle_start DESC
		LIMIT 1
	`

	var balance leave.Balance
	err := q.QueryRow(ctx, query, employeeID, companyID, asOf).Scan(
		&balance.EmployeeID, &balance.CompanyID, &balance.CycleStart,
		&balance.Quota, &balance.Used,
	)
	if err != nil {
		return leave.Balance{}, err
	}

	return balance, nil
}

// GetPreviousCycleRemaining implements leave.BalanceRepository.
func (b *balanceRepository) GetPreviousCycleRemaining(ctx context.Context, employeeID string, asOf time.Time, companyID string) (float64, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT GREATEST(quota - used, 0)
		FROM leave_balances
		WHERE employee_id = $1
		  AND company_id = $2
		  AND cycle_start <= $3
		ORDER BY cycle_start DESC
		OFFSET 1
		LIMIT 1
	`

	var remaining float64
	if err := q.QueryRow(ctx, query, employeeID, companyID, asOf).Scan(&remaining); err != nil {
		return 0, err
	}

	return remaining, nil
}
