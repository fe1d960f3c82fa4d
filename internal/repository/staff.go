package repository

import (
	"context"
	"time"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
)

func (r *Repository) GetAllStaff() ([]*domain.StaffRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, name, is_under_18, created_at FROM staff ORDER BY name
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staff := make([]*domain.StaffRecord, 0)
	for rows.Next() {
		record := &domain.StaffRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.IsUnder18, &record.CreatedAt); err != nil {
			return nil, err
		}
		staff = append(staff, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return staff, nil
}

func (r *Repository) GetStaffByID(id int64) (*domain.StaffRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT name, is_under_18, created_at FROM staff WHERE id = $1
	`

	record := &domain.StaffRecord{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&record.Name, &record.IsUnder18, &record.CreatedAt); err != nil {
		return nil, err
	}

	return record, nil
}

func (r *Repository) CreateStaff(record *domain.StaffRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO staff (name, is_under_18)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	if err := r.dbpool.QueryRowContext(ctx, query, record.Name, record.IsUnder18).Scan(&record.ID, &record.CreatedAt); err != nil {
		return err
	}

	return nil
}

// CreateStaffBatch inserts an imported roster in one transaction so a
// partial import never lands in the table.
func (r *Repository) CreateStaffBatch(records []*domain.StaffRecord) error {
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
		INSERT INTO staff (name, is_under_18)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	for _, record := range records {
		if err := tx.QueryRowContext(ctx, query, record.Name, record.IsUnder18).Scan(&record.ID, &record.CreatedAt); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateStaff(record *domain.StaffRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE staff
		SET name = $1, is_under_18 = $2
		WHERE id = $3
		RETURNING created_at
	`

	if err := r.dbpool.QueryRowContext(ctx, query, record.Name, record.IsUnder18, record.ID).Scan(&record.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteStaff(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM staff WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
