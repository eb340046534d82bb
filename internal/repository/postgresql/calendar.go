package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/worklens/hr-portal-go/internal/domain/attendance"
	"github.com/worklens/hr-portal-go/internal/pkg/database"
)

type calendarRepository struct {
	db *database.DB
}

func NewCalendarRepository(db *database.DB) attendance.CalendarRepository {
	return &calendarRepository{db: db}
}

// IsHoliday implements attendance.CalendarRepository.
func (c *calendarRepository) IsHoliday(ctx context.Context, workDate time.Time, companyID string) (bool, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM holidays
			WHERE holiday_date = $1
			  AND company_id = $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, workDate, companyID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check holiday: %w", err)
	}

	return exists, nil
}

// IsWorkingDay implements attendance.CalendarRepository.
// Weekdays absent from company_working_days count as working, so a company
// with no calendar config defaults to a seven-day week.
func (c *calendarRepository) IsWorkingDay(ctx context.Context, workDate time.Time, companyID string) (bool, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT is_working FROM company_working_days
		WHERE weekday = $1
		  AND company_id = $2
	`

	weekday := int(workDate.Weekday())

	var isWorking bool
	err := q.QueryRow(ctx, query, weekday, companyID).Scan(&isWorking)
	if err != nil {
		if isNoRows(err) {
			return true, nil
		}
		return false, fmt.Errorf("failed to check working day: %w", err)
	}

	return isWorking, nil
}
