package service

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources outside the simulation: audio devices, log sinks
//
// Lifecycle:
//  1. Construction (configured via constructor args)
//  2. Start() - acquire the resource
//  3. [runtime operation]
//  4. Stop() - release the resource
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Start acquires the resource; a failed service is not stopped later
	Start() error

	// Stop releases the resource
	// Must be idempotent - safe to call multiple times
	Stop() error
}
