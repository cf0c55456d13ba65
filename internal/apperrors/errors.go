package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrComputation indicates an internally inconsistent intermediate state,
// e.g. a lease liability turning negative before the end of the term.
var ErrComputation = errors.New("computation error")

// ErrForbidden indicates that the caller has not satisfied a required gate,
// e.g. the terms of use have not been accepted.
var ErrForbidden = errors.New("forbidden")
