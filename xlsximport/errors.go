package xlsximport

import "errors"

// ErrMissingSheet indicates that a required worksheet is absent.
var ErrMissingSheet = errors.New("required sheet not found")

// ErrMalformedRow indicates a row that cannot be parsed into an entity.
var ErrMalformedRow = errors.New("malformed row")

// ErrDuplicateID indicates two rows claiming the same entity ID.
var ErrDuplicateID = errors.New("duplicate id")

// ErrDuplicateName indicates two class rows claiming the same class name.
var ErrDuplicateName = errors.New("duplicate class name")

// ErrUnknownClass indicates a pupil row referencing a class name that no
// row of the Classes sheet declares.
var ErrUnknownClass = errors.New("unknown class name")
