package domain

import "github.com/google/uuid"

// generateID creates a new unique identifier.
func generateID() string {
	return uuid.New().String()
}

// NewID exposes ID generation for callers constructing profiles directly.
func NewID() string {
	return generateID()
}
