package utils

import (
	"github.com/google/uuid"
)

// NewRequestID returns a fresh correlation id attached to each HTTP request
// for log tracing.
func NewRequestID() string {
	return uuid.New().String()
}
