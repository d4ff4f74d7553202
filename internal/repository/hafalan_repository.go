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

const hafalanColumns = "id, student_id, date, surah, ayat, score, notes, created_at"

// HafalanRepository manages persistence for hafalan records.
type HafalanRepository struct {
	db *sqlx.DB
}

// NewHafalanRepository constructs a HafalanRepository.
func NewHafalanRepository(db *sqlx.DB) *HafalanRepository {
	return &HafalanRepository{db: db}
}

// List returns hafalan records newest first. An empty filter lists the whole class.
func (r *HafalanRepository) List(ctx context.Context, filter models.HafalanFilter) ([]models.HafalanRecord, error) {
	var (
		conditions []string
		args       []interface{}
	)
	if filter.StudentID != "" {
		args = append(args, filter.StudentID)
		conditions = append(conditions, fmt.Sprintf("student_id = $%d", len(args)))
	}

	query := "SELECT " + hafalanColumns + " FROM hafalan_records"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date DESC, created_at DESC"

	records := make([]models.HafalanRecord, 0)
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("list hafalan records: %w", err)
	}
	return records, nil
}

// FindByID fetches a hafalan record by id.
func (r *HafalanRepository) FindByID(ctx context.Context, id string) (*models.HafalanRecord, error) {
	var record models.HafalanRecord
	query := "SELECT " + hafalanColumns + " FROM hafalan_records WHERE id = $1"
	if err := r.db.GetContext(ctx, &record, query, id); err != nil {
		return nil, err
	}
	return &record, nil
}

// Create inserts the record and refreshes it with the stored values.
func (r *HafalanRepository) Create(ctx context.Context, record *models.HafalanRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO hafalan_records (id, student_id, date, surah, ayat, score, notes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + hafalanColumns
	row := r.db.QueryRowxContext(ctx, query, record.ID, record.StudentID, record.Date, record.Surah, record.Ayat, record.Score, record.Notes, record.CreatedAt)
	if err := row.StructScan(record); err != nil {
		return fmt.Errorf("create hafalan record: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of record id. Returns sql.ErrNoRows when nothing matched.
func (r *HafalanRepository) Update(ctx context.Context, id string, record *models.HafalanRecord) error {
	query := `UPDATE hafalan_records SET date = $2, surah = $3, ayat = $4, score = $5, notes = $6
        WHERE id = $1
        RETURNING ` + hafalanColumns
	row := r.db.QueryRowxContext(ctx, query, id, record.Date, record.Surah, record.Ayat, record.Score, record.Notes)
	if err := row.StructScan(record); err != nil {
		if err == sql.ErrNoRows {
			return sql.ErrNoRows
		}
		return fmt.Errorf("update hafalan record: %w", err)
	}
	return nil
}

// Delete removes record id. Returns sql.ErrNoRows when nothing matched.
func (r *HafalanRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM hafalan_records WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete hafalan record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete hafalan rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
