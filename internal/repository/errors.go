package repository

import (
	"errors"

	"strata-be-svc/internal/errcode"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup or single-row update matches nothing
var ErrNotFound = errcode.New(errcode.DataNotFound)

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
