// Package types provides core type definitions and interfaces for the
// SchoolManagerCase library.
//
// This package contains shared types that are used across multiple packages in
// the library. By keeping these types in a separate package, we avoid import
// cycles between the main schoolmanager package and its collaborator adapters.
//
// Key types:
//   - Pupil, Class: Roster entities
//   - State: Immutable roster snapshot
//   - Assignment: Requested pupil-to-class pairing
//   - UpdatedPupil, UpdatedClass, ChangeSet: Diff output records
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
