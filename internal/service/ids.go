package service

import "github.com/google/uuid"

// generateID returns a time-ordered unique id (UUIDv7)
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
