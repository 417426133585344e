package store

import (
	"errors"
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

var (
	ErrNotFound         = fmt.Errorf("the object does not exist")
	ErrAlreadyExists    = fmt.Errorf("the object already exists")
	ErrServicesNotExist = fmt.Errorf("%w: some services do not exist", ErrNotFound)
)

// translate maps driver and orm errors to the store errors
func translate(err error, name string) error {
	if err == nil {
		return nil
	}

	if gorm.IsRecordNotFoundError(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%w: %s violates %s", ErrAlreadyExists, name, pqErr.Constraint)
		case pqForeignKeyViolation:
			return fmt.Errorf("%w: %s references %s", ErrNotFound, name, pqErr.Constraint)
		}
	}

	return err
}
