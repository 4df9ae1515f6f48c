package sqlite

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for sqlite error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's translated duplicate key error first.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// sqlite reports "UNIQUE constraint failed: accounts.email" for raw
	// driver errors that slip past TranslateError.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "unique constraint failed")
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "not null constraint failed") ||
		strings.Contains(errMsg, "null value")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key constraint failed")
}
