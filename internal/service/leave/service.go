package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/worklens/hr-portal-go/internal/domain/leave"
	"github.com/worklens/hr-portal-go/internal/pkg/database"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.BalanceRepository
	calculator *BalanceCalculator
	policy     leave.CarryForwardPolicy
	now        func() time.Time
}

func NewLeaveService(db *database.DB, balanceRepo leave.BalanceRepository, calculator *BalanceCalculator, policy leave.CarryForwardPolicy) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                db,
		BalanceRepository: balanceRepo,
		calculator:        calculator,
		policy:            policy,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

// Balance implements leave.LeaveService.
func (l *LeaveServiceImpl) Balance(ctx context.Context) (leave.BalanceResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return leave.BalanceResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return leave.BalanceResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	asOf := l.now()

	balance, err := l.BalanceRepository.GetBalance(ctx, employeeID, asOf, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.BalanceResponse{}, leave.ErrBalanceNotFound
		}
		return leave.BalanceResponse{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	previousRemaining, err := l.BalanceRepository.GetPreviousCycleRemaining(ctx, employeeID, asOf, companyID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return leave.BalanceResponse{}, fmt.Errorf("failed to get previous cycle remaining: %w", err)
		}
		previousRemaining = 0
	}

	balance = l.calculator.Apply(balance, previousRemaining, l.policy, asOf)

	return leave.BalanceResponse{
		EmployeeID:  balance.EmployeeID,
		CycleStart:  balance.CycleStart.Format("2006-01-02"),
		Quota:       balance.Quota,
		Used:        balance.Used,
		CarriedOver: balance.CarriedOver,
		Remaining:   balance.Remaining(),
	}, nil
}
