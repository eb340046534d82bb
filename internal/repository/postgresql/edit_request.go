package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/worklens/hr-portal-go/internal/domain/attendance"
	"github.com/worklens/hr-portal-go/internal/pkg/database"
)

// isNoRows reports whether err is the pgx empty-result sentinel.
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

type editRequestRepository struct {
	db *database.DB
}

func NewEditRequestRepository(db *database.DB) attendance.EditRequestRepository {
	return &editRequestRepository{db: db}
}

// Create implements attendance.EditRequestRepository.
func (e *editRequestRepository) Create(ctx context.Context, req attendance.EditRequest) (attendance.EditRequest, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO time_edit_requests (
			id, employee_id, company_id, work_date,
			requested_in, requested_out, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeID,
		req.CompanyID,
		req.WorkDate,
		req.RequestedIn,
		req.RequestedOut,
		req.Reason,
		string(req.Status),
	).Scan(&req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return attendance.EditRequest{}, fmt.Errorf("failed to create edit request: %w", err)
	}

	return req, nil
}

// HasPendingForDate implements attendance.EditRequestRepository.
func (e *editRequestRepository) HasPendingForDate(ctx context.Context, employeeID string, workDate time.Time, companyID string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM time_edit_requests
			WHERE employee_id = $1
			  AND work_date = $2
			  AND company_id = $3
			  AND status = 'pending'
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, workDate, companyID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check pending edit request: %w", err)
	}

	return exists, nil
}

// ListByEmployee implements attendance.EditRequestRepository.
func (e *editRequestRepository) ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]attendance.EditRequest, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_id, company_id, work_date,
			   requested_in, requested_out, reason, status,
			   created_at, updated_at
		FROM time_edit_requests
		WHERE employee_id = $1
		  AND company_id = $2
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list edit requests: %w", err)
	}
	defer rows.Close()

	var requests []attendance.EditRequest
	for rows.Next() {
		var req attendance.EditRequest
		var status string
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.CompanyID, &req.WorkDate,
			&req.RequestedIn, &req.RequestedOut, &req.Reason, &status,
			&req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan edit request: %w", err)
		}
		req.Status = attendance.EditRequestStatus(status)
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate edit requests: %w", err)
	}

	return requests, nil
}
