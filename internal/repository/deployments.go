package repository

import (
	"context"
	"time"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
)

// CreateScheduleImport persists the import row and every derived
// deployment record in one transaction; a failed insert rolls the whole
// upload back.
func (r *Repository) CreateScheduleImport(imp *domain.ScheduleImport, records []domain.DeploymentRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO schedule_imports (id, location, location_code, week_start, week_end, employee_count, shift_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	args := []any{imp.ID, imp.Location, imp.LocationCode, imp.WeekStart, imp.WeekEnd, imp.EmployeeCount, imp.ShiftCount}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&imp.CreatedAt); err != nil {
		return err
	}

	for i := range records {
		query = `
			INSERT INTO deployments (import_id, employee_name, role, date, start_time, end_time, shift_type, staff_id, is_under_18)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, created_at
		`
		params := []any{
			imp.ID,
			records[i].EmployeeName,
			records[i].Role,
			records[i].Date,
			records[i].StartTime,
			records[i].EndTime,
			records[i].ShiftType,
			records[i].StaffID,
			records[i].IsUnder18,
		}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&records[i].ID, &records[i].CreatedAt); err != nil {
			return err
		}
		records[i].ImportID = imp.ID
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllScheduleImports() ([]*domain.ScheduleImport, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, location, location_code, week_start, week_end, employee_count, shift_count, created_at
		FROM schedule_imports
		ORDER BY week_start DESC, created_at DESC
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	imports := make([]*domain.ScheduleImport, 0)
	for rows.Next() {
		imp := &domain.ScheduleImport{}
		dst := []any{&imp.ID, &imp.Location, &imp.LocationCode, &imp.WeekStart, &imp.WeekEnd, &imp.EmployeeCount, &imp.ShiftCount, &imp.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		imports = append(imports, imp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return imports, nil
}

func (r *Repository) GetScheduleImportByID(id string) (*domain.ScheduleImport, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT location, location_code, week_start, week_end, employee_count, shift_count, created_at
		FROM schedule_imports
		WHERE id = $1
	`

	imp := &domain.ScheduleImport{
		ID: id,
	}
	dst := []any{&imp.Location, &imp.LocationCode, &imp.WeekStart, &imp.WeekEnd, &imp.EmployeeCount, &imp.ShiftCount, &imp.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return imp, nil
}

func (r *Repository) GetDeploymentsByImportID(importID string) ([]*domain.DeploymentRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, employee_name, role, date, start_time, end_time, shift_type, staff_id, is_under_18, created_at
		FROM deployments
		WHERE import_id = $1
		ORDER BY date, start_time, employee_name
	`

	rows, err := r.dbpool.QueryContext(ctx, query, importID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.DeploymentRecord, 0)
	for rows.Next() {
		rec := &domain.DeploymentRecord{
			ImportID: importID,
		}
		dst := []any{&rec.ID, &rec.EmployeeName, &rec.Role, &rec.Date, &rec.StartTime, &rec.EndTime, &rec.ShiftType, &rec.StaffID, &rec.IsUnder18, &rec.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// DeleteScheduleImport removes the import row; deployment rows go with it
// via ON DELETE CASCADE.
func (r *Repository) DeleteScheduleImport(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM schedule_imports WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
