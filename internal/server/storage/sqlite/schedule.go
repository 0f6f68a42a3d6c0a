package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/iudanet/bookgrid/internal/models"
	"github.com/iudanet/bookgrid/internal/server/storage"
	"github.com/iudanet/bookgrid/internal/validation"
)

// Seed inserts a free row for every missing cell in one transaction.
// INSERT OR IGNORE leaves existing rows untouched.
func (s *Storage) Seed(ctx context.Context, limits validation.Limits) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO schedule (id, table_id, week, day, status, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare seed statement: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	now := s.now().Unix()
	inserted := 0
	for tableID := 1; tableID <= limits.Resources; tableID++ {
		for week := 1; week <= limits.Weeks; week++ {
			for _, day := range models.Weekdays() {
				res, err := stmt.ExecContext(ctx, uuid.New().String(), tableID, week, int(day), string(models.StatusFree), now)
				if err != nil {
					return 0, fmt.Errorf("failed to seed cell %d/%d/%s: %w", tableID, week, day, err)
				}
				n, err := res.RowsAffected()
				if err != nil {
					return 0, fmt.Errorf("failed to get rows affected: %w", err)
				}
				inserted += int(n)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}

	return inserted, nil
}

// ListRecords returns all rows ordered by table, week and day
func (s *Storage) ListRecords(ctx context.Context) ([]models.BookingRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, table_id, week, day, status
		FROM schedule
		ORDER BY table_id, week, day
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	records := []models.BookingRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schedule: %w", err)
	}

	return records, nil
}

// GetRecord returns the row for a cell key
func (s *Storage) GetRecord(ctx context.Context, key models.Key) (*models.BookingRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, table_id, week, day, status
		FROM schedule
		WHERE table_id = ? AND week = ? AND day = ?
	`, key.ResourceID, key.Week, int(key.Day))

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, err
	}

	return rec, nil
}

// UpsertRecord sets the status of a cell. The row id is kept on update.
func (s *Storage) UpsertRecord(ctx context.Context, rec models.BookingRecord) (*models.BookingRecord, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO schedule (id, table_id, week, day, status, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (table_id, week, day)
		DO UPDATE SET status = excluded.status, updated_at = excluded.updated_at
	`, uuid.New().String(), rec.ResourceID, rec.Week, int(rec.Day), string(rec.Status), s.now().Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to upsert record: %w", err)
	}

	return s.GetRecord(ctx, rec.Key())
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.BookingRecord, error) {
	var (
		rec    models.BookingRecord
		day    int
		status string
	)

	if err := row.Scan(&rec.ID, &rec.ResourceID, &rec.Week, &day, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan record: %w", err)
	}

	rec.Day = models.Weekday(day)
	rec.Status = models.Status(status)

	return &rec, nil
}
