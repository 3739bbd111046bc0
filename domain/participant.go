// Package domain contains core concepts of the messaging engine.
// This file defines Participant identities.
// No runtime, network, or UI logic should be added here.
package domain

// Participant is an identity known to the engine.
// It is referenced by ID everywhere else and never copied into other entities.
type Participant struct {
	ID          string `validate:"required"`
	DisplayName string `validate:"required"`
}
