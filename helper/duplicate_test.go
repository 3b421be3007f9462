package helper

import (
	"errors"
	"fmt"
	"testing"

	"venue_manager/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func cachedPackages() []model.EventPackage {
	gold := model.EventPackage{Name: "Gold Package", PackageTypeId: 1}
	gold.ID = 1
	silver := model.EventPackage{Name: "Silver Package", PackageTypeId: 1}
	silver.ID = 2
	corporate := model.EventPackage{Name: "Gold Package", PackageTypeId: 2}
	corporate.ID = 3
	return []model.EventPackage{gold, silver, corporate}
}

func TestIsDuplicatePackageNameLocal(t *testing.T) {
	t.Parallel()

	packages := cachedPackages()

	cases := []struct {
		name          string
		candidate     string
		packageTypeId uint
		excludeId     uint
		want          bool
	}{
		{"exact match same type", "Gold Package", 1, 0, true},
		{"case-insensitive match", "gold package", 1, 0, true},
		{"surrounding whitespace ignored", "  Gold Package  ", 1, 0, true},
		{"same name other type is fine", "Gold Package", 3, 0, false},
		{"editing the record itself", "Gold Package", 1, 1, false},
		{"editing still blocks another record", "Silver Package", 1, 1, true},
		{"unknown name", "Platinum Package", 1, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IsDuplicatePackageNameLocal(packages, tc.candidate, tc.packageTypeId, tc.excludeId)
			if got != tc.want {
				t.Fatalf("IsDuplicatePackageNameLocal(%q, type=%d, exclude=%d) = %v, want %v",
					tc.candidate, tc.packageTypeId, tc.excludeId, got, tc.want)
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: "23505"}
	if !IsUniqueViolation(pgErr) {
		t.Fatal("23505 must be a unique violation")
	}
	if !IsUniqueViolation(fmt.Errorf("create package: %w", pgErr)) {
		t.Fatal("wrapped 23505 must be a unique violation")
	}
	if !IsUniqueViolation(gorm.ErrDuplicatedKey) {
		t.Fatal("gorm duplicated-key must be a unique violation")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatal("foreign-key violation must not count")
	}
	if IsUniqueViolation(errors.New("boom")) {
		t.Fatal("plain error must not count")
	}
	if IsUniqueViolation(nil) {
		t.Fatal("nil must not count")
	}
}
