package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/worklens/hr-portal-go/internal/domain/attendance"
	"github.com/worklens/hr-portal-go/internal/pkg/database"
)

type slotRepository struct {
	db *database.DB
}

func NewSlotRepository(db *database.DB) attendance.SlotRepository {
	return &slotRepository{db: db}
}

// Create implements attendance.SlotRepository.
func (s *slotRepository) Create(ctx context.Context, newSlot attendance.Slot) (attendance.Slot, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO attendance_slots (
			id, employee_id, company_id, work_date, slot_type,
			started_at, ended_at, is_manual
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newSlot.ID,
		newSlot.EmployeeID,
		newSlot.CompanyID,
		newSlot.WorkDate,
		string(newSlot.Type),
		newSlot.StartedAt,
		newSlot.EndedAt,
		newSlot.IsManual,
	).Scan(&newSlot.CreatedAt, &newSlot.UpdatedAt)

	if err != nil {
		return attendance.Slot{}, fmt.Errorf("failed to create attendance slot: %w", err)
	}

	return newSlot, nil
}

// CloseOpen implements attendance.SlotRepository.
func (s *slotRepository) CloseOpen(ctx context.Context, employeeID string, workDate time.Time, endedAt time.Time, companyID string) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE attendance_slots
		SET ended_at = $1, updated_at = NOW()
		WHERE employee_id = $2
		  AND work_date = $3
		  AND company_id = $4
		  AND ended_at IS NULL
	`

	if _, err := q.Exec(ctx, query, endedAt, employeeID, workDate, companyID); err != nil {
		return fmt.Errorf("failed to close open slot: %w", err)
	}

	return nil
}

// ListByDate implements attendance.SlotRepository.
func (s *slotRepository) ListByDate(ctx context.Context, employeeID string, workDate time.Time, companyID string) ([]attendance.Slot, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, employee_id, company_id, work_date, slot_type,
			   started_at, ended_at, is_manual, created_at, updated_at
		FROM attendance_slots
		WHERE employee_id = $1
		  AND work_date = $2
		  AND company_id = $3
		ORDER BY started_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, workDate, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots by date: %w", err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// ListByRange implements attendance.SlotRepository.
func (s *slotRepository) ListByRange(ctx context.Context, employeeID string, startDate, endDate time.Time, companyID string) ([]attendance.Slot, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, employee_id, company_id, work_date, slot_type,
			   started_at, ended_at, is_manual, created_at, updated_at
		FROM attendance_slots
		WHERE employee_id = $1
		  AND work_date BETWEEN $2 AND $3
		  AND company_id = $4
		ORDER BY started_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, startDate, endDate, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots by range: %w", err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

func scanSlots(rows pgx.Rows) ([]attendance.Slot, error) {
	var slots []attendance.Slot
	for rows.Next() {
		var slot attendance.Slot
		var slotType string
		if err := rows.Scan(
			&slot.ID, &slot.EmployeeID, &slot.CompanyID, &slot.WorkDate, &slotType,
			&slot.StartedAt, &slot.EndedAt, &slot.IsManual, &slot.CreatedAt, &slot.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan slot: %w", err)
		}
		slot.Type = attendance.SlotType(slotType)
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate slots: %w", err)
	}
	return slots, nil
}
