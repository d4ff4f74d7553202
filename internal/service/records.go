package service

import (
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nuurulqurantahfizh-max/tahfizh8a/internal/models"
	appErrors "github.com/nuurulqurantahfizh-max/tahfizh8a/pkg/errors"
)

// Localised messages surfaced to the class front-end.
const (
	msgIncompleteForm     = "Mohon lengkapi semua field yang wajib diisi"
	msgIncompleteMurajaah = "Mohon lengkapi semua field"
	msgScoreRange         = "Nilai harus antara 1-100"
	msgDateRequired       = "Mohon pilih tanggal"
	msgStudentNotFound    = "Siswa tidak ditemukan"
	msgSurahNotInTrack    = "Surat tidak termasuk kurikulum siswa"
	msgAyatOrder          = "Ayat akhir tidak boleh lebih kecil dari ayat awal"
	msgHafalanNotFound    = "Data hafalan tidak ditemukan"
	msgMurajaahNotFound   = "Data murajaah tidak ditemukan"
	msgMurajaahStatus     = "Status murajaah tidak valid"
	msgMurajaahType       = "Jenis murajaah tidak valid"
	msgLoadHafalan        = "Gagal memuat data hafalan"
	msgLoadMurajaah       = "Gagal memuat data murajaah"
	msgSave               = "Gagal menyimpan data"
	msgUpdate             = "Gagal memperbarui data"
	msgDeleteHafalan      = "Gagal menghapus data hafalan"
	msgDeleteMurajaah     = "Gagal menghapus data murajaah"
)

// lookupStudent resolves a roster student or fails with NOT_FOUND.
func lookupStudent(id string) (models.Student, error) {
	student, ok := models.FindStudent(id)
	if !ok {
		return models.Student{}, appErrors.Clone(appErrors.ErrNotFound, msgStudentNotFound)
	}
	return student, nil
}

func validationError(message string) *appErrors.Error {
	return appErrors.Clone(appErrors.ErrValidation, message)
}

// formMessage picks the user facing message for validator failures.
// Missing fields win over range violations.
func formMessage(err error, incomplete string) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return incomplete
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return incomplete
		}
	}
	for _, fe := range fieldErrs {
		if fe.Field() == "Score" {
			return msgScoreRange
		}
	}
	return incomplete
}

// storeFailure maps a repository error. sql.ErrNoRows becomes NOT_FOUND with notFound as message.
func storeFailure(err error, message, notFound string) *appErrors.Error {
	if notFound != "" && errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, notFound)
	}
	return appErrors.Store(err, message)
}

func observeStore(m *MetricsService, operation string, start time.Time, err error) {
	if err != nil && errors.Is(err, sql.ErrNoRows) {
		err = nil
	}
	m.ObserveStoreCall(operation, time.Since(start), err)
}
