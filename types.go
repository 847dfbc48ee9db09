package schoolmanager

import "github.com/Sloozu/SchoolManagerCase/types"

// Re-export types from the internal types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing collaborator
// packages (store, notify, xlsximport) to depend on `types` without depending
// on the root package, while still providing a convenient
// `schoolmanager.State`, `schoolmanager.Logger`, etc. for users.
type (
	Pupil        = types.Pupil
	Class        = types.Class
	State        = types.State
	Assignment   = types.Assignment
	UpdatedPupil = types.UpdatedPupil
	UpdatedClass = types.UpdatedClass
	ChangeSet    = types.ChangeSet
)

// Re-export interfaces from the internal types package for convenience.
type (
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)

// Re-export sentinel errors from the internal types package so callers can
// match validation failures without importing `types` directly.
var (
	ErrInvalidConfig       = types.ErrInvalidConfig
	ErrUnknownClass        = types.ErrUnknownClass
	ErrUnknownPupil        = types.ErrUnknownPupil
	ErrDuplicateAssignment = types.ErrDuplicateAssignment
	ErrDuplicateClassName  = types.ErrDuplicateClassName
	ErrUnassignedPupil     = types.ErrUnassignedPupil
	ErrClassOverCapacity   = types.ErrClassOverCapacity
	ErrStateNotFound       = types.ErrStateNotFound
	ErrRevisionConflict    = types.ErrRevisionConflict
)
