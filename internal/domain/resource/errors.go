package resource

import "errors"

var (
	// ErrResourceNotFound indicates the resource was not found
	ErrResourceNotFound = errors.New("resource not found")

	// ErrCapacityExceeded indicates an allocation would exceed resource capacity
	ErrCapacityExceeded = errors.New("allocation exceeds resource capacity")
)
