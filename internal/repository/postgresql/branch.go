package postgresql

import (
	"context"

	"github.com/worklens/hr-portal-go/internal/domain/attendance"
	"github.com/worklens/hr-portal-go/internal/pkg/database"
)

type branchRepository struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) attendance.BranchRepository {
	return &branchRepository{db: db}
}

// GetTimezoneByEmployeeID implements attendance.BranchRepository. Returns
// pgx.ErrNoRows when the employee has no branch assignment.
func (b *branchRepository) GetTimezoneByEmployeeID(ctx context.Context, employeeID string, companyID string) (string, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT br.timezone
		FROM employees e
		JOIN branches br ON br.id = e.branch_id
		WHERE e.id = $1
		  AND e.company_id = $2
	`

	var timezone string
	if err := q.QueryRow(ctx, query, employeeID, companyID).Scan(&timezone); err != nil {
		return "", err
	}

	return timezone, nil
}
