package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/models"
)

const murajaahColumns = "id, student_id, date, surah, status, type, created_at"

// MurajaahRepository manages persistence for murajaah records.
type MurajaahRepository struct {
	db *sqlx.DB
}

// NewMurajaahRepository constructs a MurajaahRepository.
func NewMurajaahRepository(db *sqlx.DB) *MurajaahRepository {
	return &MurajaahRepository{db: db}
}

// List returns murajaah records newest first, filtered by student and type when set.
func (r *MurajaahRepository) List(ctx context.Context, filter models.MurajaahFilter) ([]models.MurajaahRecord, error) {
	var (
		conditions []string
		args       []interface{}
	)
	if filter.StudentID != "" {
		args = append(args, filter.StudentID)
		conditions = append(conditions, fmt.Sprintf("student_id = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}

	query := "SELECT " + murajaahColumns + " FROM murajaah_records"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date DESC, created_at DESC"

	records := make([]models.MurajaahRecord, 0)
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("list murajaah records: %w", err)
	}
	return records, nil
}

// FindByID fetches a murajaah record by id.
func (r *MurajaahRepository) FindByID(ctx context.Context, id string) (*models.MurajaahRecord, error) {
	var record models.MurajaahRecord
	query := "SELECT " + murajaahColumns + " FROM murajaah_records WHERE id = $1"
	if err := r.db.GetContext(ctx, &record, query, id); err != nil {
		return nil, err
	}
	return &record, nil
}

// Create inserts the record and refreshes it with the stored values.
func (r *MurajaahRepository) Create(ctx context.Context, record *models.MurajaahRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO murajaah_records (id, student_id, date, surah, status, type, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + murajaahColumns
	row := r.db.QueryRowxContext(ctx, query, record.ID, record.StudentID, record.Date, record.Surah, record.Status, record.Type, record.CreatedAt)
	if err := row.StructScan(record); err != nil {
		return fmt.Errorf("create murajaah record: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of record id. Returns sql.ErrNoRows when nothing matched.
func (r *MurajaahRepository) Update(ctx context.Context, id string, record *models.MurajaahRecord) error {
	query := `UPDATE murajaah_records SET date = $2, surah = $3, status = $4, type = $5
        WHERE id = $1
        RETURNING ` + murajaahColumns
	row := r.db.QueryRowxContext(ctx, query, id, record.Date, record.Surah, record.Status, record.Type)
	if err := row.StructScan(record); err != nil {
		if err == sql.ErrNoRows {
			return sql.ErrNoRows
		}
		return fmt.Errorf("update murajaah record: %w", err)
	}
	return nil
}

// Delete removes record id. Returns sql.ErrNoRows when nothing matched.
func (r *MurajaahRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM murajaah_records WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete murajaah record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete murajaah rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
