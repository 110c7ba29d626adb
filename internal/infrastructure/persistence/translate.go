package persistence

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/pos/backend/internal/domain/shared"
)

// translateError maps storage engine failures onto the domain error
// taxonomy. Unclassified errors pass through unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}

	var se sqlite3.Error
	if errors.As(err, &se) {
		switch se.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return shared.ErrStorageBusy
		case sqlite3.ErrConstraint:
			return shared.ErrConstraintViolation
		}
	}
	return err
}

// isUniqueViolation reports whether err is a unique-constraint failure
// on the given column (sqlite reports "table.column" in the message).
func isUniqueViolation(err error, column string) bool {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return false
	}
	if se.ExtendedCode != sqlite3.ErrConstraintUnique && se.ExtendedCode != sqlite3.ErrConstraintPrimaryKey {
		return false
	}
	return column == "" || strings.Contains(se.Error(), column)
}
