package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"order_management/constants"
)

const foreignKeyViolation = "23503"

// TranslateError maps a gorm or driver error onto the service error taxonomy.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, constants.ErrNotFound) ||
		errors.Is(err, constants.ErrReferenceNotFound) ||
		errors.Is(err, constants.ErrStorePersistence) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return constants.ErrNotFound
	}
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: %s", constants.ErrReferenceNotFound, err.Error())
	}
	return fmt.Errorf("%w: %w", constants.ErrStorePersistence, err)
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == foreignKeyViolation
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
