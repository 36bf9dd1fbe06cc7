// Package errors provides structured error handling for the dps-store library.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("preferences not found")
//	err := errors.InvalidArgumentf("invalid slot: %s", slot)
//
// Adding metadata:
//
//	err := errors.Internal("save failed").
//	    WithMeta("key", prefsKey)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load preferences")
//	}
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // first run, nothing persisted yet
//	}
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.PreferencesRepo == nil {
//	    vb.RequiredField("PreferencesRepo")
//	}
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound for a missing blob)
//   - Include relevant keys in metadata
//   - Wrap transport errors with context
//
// Store layer:
//   - Validate configuration and return InvalidArgument errors
//   - Capacity violations are silent no-ops, never errors
package errors
