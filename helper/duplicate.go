package helper

import (
	"errors"
	"strings"

	"venue_manager/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// IsDuplicatePackageNameLocal scans an already-loaded catalog slice for a
// case-insensitive name match under the same package type, excluding the
// record being edited. Used for the cheap pre-check against cached rows.
func IsDuplicatePackageNameLocal(packages []model.EventPackage, name string, packageTypeId uint, excludeId uint) bool {
	candidate := strings.ToLower(strings.TrimSpace(name))
	for _, p := range packages {
		if p.ID == excludeId || p.PackageTypeId != packageTypeId {
			continue
		}
		if strings.ToLower(p.Name) == candidate {
			return true
		}
	}
	return false
}

// IsDuplicatePackageName is the authoritative check, issued against the
// database immediately before a write. A query failure is reported but
// deliberately does not count as a duplicate.
func IsDuplicatePackageName(db *gorm.DB, name string, packageTypeId uint, excludeId uint) (bool, error) {
	var count int64
	err := db.Model(&model.EventPackage{}).
		Where("LOWER(name) = ? AND package_type_id = ? AND id != ?",
			strings.ToLower(strings.TrimSpace(name)), packageTypeId, excludeId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsDuplicateCategoryName checks category names case-insensitively.
func IsDuplicateCategoryName(db *gorm.DB, name string, excludeId uint) (bool, error) {
	var count int64
	err := db.Model(&model.ServiceCategory{}).
		Where("LOWER(name) = ? AND id != ?", strings.ToLower(strings.TrimSpace(name)), excludeId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. The composer relies on this to re-label a write-time race
// as the duplicate-name message instead of a generic failure.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
