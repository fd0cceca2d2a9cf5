package apperrors

import "errors"

// ErrNotFound indicates that a referenced resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates a uniqueness violation or an operation blocked by
// dependent records (e.g. deleting a department that still has employees).
var ErrConflict = errors.New("conflict")

// ErrAmbiguous indicates that a name-based lookup matched more than one row.
var ErrAmbiguous = errors.New("ambiguous identifier")

// ErrExhausted indicates that the employee number space has no values left.
var ErrExhausted = errors.New("identifier space exhausted")
