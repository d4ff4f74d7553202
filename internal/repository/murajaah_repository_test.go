package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/models"
)

var murajaahRowColumns = []string{"id", "student_id", "date", "surah", "status", "type", "created_at"}

func TestMurajaahRepositoryListFilters(t *testing.T) {
	db, mock, cleanup := newRecordMock(t)
	defer cleanup()
	repo := NewMurajaahRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, student_id, date, surah, status, type, created_at FROM murajaah_records WHERE student_id = $1 AND type = $2 ORDER BY date DESC, created_at DESC")).
		WithArgs("3", "home").
		WillReturnRows(sqlmock.NewRows(murajaahRowColumns).AddRow("m1", "3", "2025-02-01", "An-Naba", "Lancar", "home", time.Now()))

	records, err := repo.List(context.Background(), models.MurajaahFilter{StudentID: "3", Type: models.MurajaahHome})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.MurajaahFluent, records[0].Status)
	assert.Equal(t, models.MurajaahHome, records[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMurajaahRepositoryListByTypeOnly(t *testing.T) {
	db, mock, cleanup := newRecordMock(t)
	defer cleanup()
	repo := NewMurajaahRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM murajaah_records WHERE type = $1 ORDER BY date DESC, created_at DESC")).
		WithArgs("class").
		WillReturnRows(sqlmock.NewRows(murajaahRowColumns))

	records, err := repo.List(context.Background(), models.MurajaahFilter{Type: models.MurajaahClass})
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMurajaahRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRecordMock(t)
	defer cleanup()
	repo := NewMurajaahRepository(db)

	mock.ExpectQuery("INSERT INTO murajaah_records").
		WithArgs(sqlmock.AnyArg(), "3", "2025-02-01", "Al-Mulk", "Kurang Lancar", "class", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(murajaahRowColumns).AddRow("m9", "3", "2025-02-01", "Al-Mulk", "Kurang Lancar", "class", time.Now()))

	record := &models.MurajaahRecord{StudentID: "3", Date: models.NewDate(2025, 2, 1), Surah: "Al-Mulk", Status: models.MurajaahNeedsWork, Type: models.MurajaahClass}
	require.NoError(t, repo.Create(context.Background(), record))
	assert.Equal(t, "m9", record.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMurajaahRepositoryFindByIDMissing(t *testing.T) {
	db, mock, cleanup := newRecordMock(t)
	defer cleanup()
	repo := NewMurajaahRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM murajaah_records WHERE id = $1")).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(murajaahRowColumns))

	_, err := repo.FindByID(context.Background(), "nope")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestMurajaahRepositoryUpdateAndDelete(t *testing.T) {
	db, mock, cleanup := newRecordMock(t)
	defer cleanup()
	repo := NewMurajaahRepository(db)

	mock.ExpectQuery("UPDATE murajaah_records SET").
		WithArgs("m1", "2025-02-02", "Al-Mulk", "Tidak Lancar", "home").
		WillReturnRows(sqlmock.NewRows(murajaahRowColumns).AddRow("m1", "3", "2025-02-02", "Al-Mulk", "Tidak Lancar", "home", time.Now()))
	mock.ExpectExec("DELETE FROM murajaah_records").
		WithArgs("m1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	record := &models.MurajaahRecord{Date: models.NewDate(2025, 2, 2), Surah: "Al-Mulk", Status: models.MurajaahNotFluent, Type: models.MurajaahHome}
	require.NoError(t, repo.Update(context.Background(), "m1", record))
	assert.Equal(t, "3", record.StudentID)
	assert.ErrorIs(t, repo.Delete(context.Background(), "m1"), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
