package spec

import "errors"

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrExtensionNotFound = errors.New("extension not found")
	ErrExtensionExists   = errors.New("extension already exists")
	ErrExtensionInactive = errors.New("extension not active")
	ErrToolNotFound      = errors.New("tool not found")
	ErrEntityNotFound    = errors.New("entity not found")
	ErrSectionNotFound   = errors.New("section not found")
	ErrTagNotFound       = errors.New("tag not found")
)
