package project

import "errors"

var (
	// ErrProjectNotFound indicates the project was not found
	ErrProjectNotFound = errors.New("project not found")
)
