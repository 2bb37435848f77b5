package service

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrUnauthenticated      = errors.New("authentication required")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailTaken           = errors.New("user already exists")
	ErrOwnTender            = errors.New("cannot apply to your own tender")
	ErrDuplicateApplication = errors.New("application already submitted for this tender")
)
