package store

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"order_management/constants"
)

func TestTranslateError(t *testing.T) {
	assert.Nil(t, TranslateError(nil))
	assert.Equal(t, constants.ErrNotFound, TranslateError(gorm.ErrRecordNotFound))
	assert.ErrorIs(t, TranslateError(gorm.ErrForeignKeyViolated), constants.ErrReferenceNotFound)
	assert.ErrorIs(t, TranslateError(&pq.Error{Code: "23503"}), constants.ErrReferenceNotFound)
	assert.ErrorIs(t, TranslateError(errors.New("FOREIGN KEY constraint failed")), constants.ErrReferenceNotFound)
}

func TestTranslateErrorCollapsesUnknownErrors(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := TranslateError(cause)
	assert.ErrorIs(t, err, constants.ErrStorePersistence)
	assert.ErrorIs(t, err, cause)

	uniqueErr := TranslateError(&pq.Error{Code: "23505"})
	assert.ErrorIs(t, uniqueErr, constants.ErrStorePersistence)
	assert.NotErrorIs(t, uniqueErr, constants.ErrReferenceNotFound)
}

func TestTranslateErrorKeepsTranslatedErrors(t *testing.T) {
	err := TranslateError(constants.ErrNotFound)
	assert.Equal(t, constants.ErrNotFound, err)

	twice := TranslateError(TranslateError(errors.New("boom")))
	assert.ErrorIs(t, twice, constants.ErrStorePersistence)
	assert.Equal(t, constants.STORE_PERSISTENCE_FAILED+": boom", twice.Error())
}
