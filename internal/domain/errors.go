package domain

import "errors"

var (
	// ErrConfigurationMissing indicates no availability profile has been
	// recorded yet. Scheduling cannot run until the user configures one.
	ErrConfigurationMissing = errors.New("availability not configured")

	// ErrNoCapacityConfigured indicates an availability profile exists but
	// every weekday is zero hours, so no deadline search can terminate.
	ErrNoCapacityConfigured = errors.New("availability has no capacity on any weekday")

	// ErrInvalidDateOrder indicates a task deadline precedes its start date.
	ErrInvalidDateOrder = errors.New("deadline may not be prior to start date")
)
