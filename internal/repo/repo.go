package repo

import (
	"errors"

	"gorm.io/gorm"
)

// GormRepo is the keyed-storage layer. Lookup misses surface as
// gorm.ErrRecordNotFound so callers can branch with errors.Is.
type GormRepo struct {
	DB *gorm.DB
}

var ErrAlreadyExists = errors.New("record already exists")
