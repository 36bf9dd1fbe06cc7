// Package osrs defines the domain entities for the DPS-calculator state
// store: equipment, loadouts, monsters, preferences, and the static combat
// tables (weapon styles, prayer conflicts) the store consults.
//
// All entities are plain values with JSON tags; the store owns mutation.
// Partial types mirror each entity with every field optional, recursively,
// and carry the deep-merge semantics used by the store's update operations.
package osrs
