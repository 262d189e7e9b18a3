package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"planwise/internal/shared/errors"
)

// ParseIDParam parses a numeric ID from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id", "resource_id").
// entityName is used in error messages (e.g., "resource", "project").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID: " + raw)
	}

	return uint(id), nil
}

// ParseOptionalIDQuery parses a numeric ID from a query parameter.
// Returns nil when the parameter is absent.
func ParseOptionalIDQuery(c *gin.Context, queryName, entityName string) (*uint, error) {
	raw := c.Query(queryName)
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil, errors.NewValidationError("invalid " + entityName + " ID: " + raw)
	}

	parsed := uint(id)
	return &parsed, nil
}
