package service

import "errors"

var (
	ErrValidation         = errors.New("validation")          // 400
	ErrNotFound           = errors.New("not found")           // 404
	ErrUserExists         = errors.New("user already exists") // 400
	ErrInvalidCredentials = errors.New("invalid credentials") // 401
	ErrNotSupplier        = errors.New("user is not a supplier")
	ErrGroupFull          = errors.New("group is already full")
)
