package repo

import (
	"errors"

	"gorm.io/gorm"
)

type GormRepo struct {
	DB *gorm.DB
}

var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrGroupFull         = errors.New("group is already full")
)
