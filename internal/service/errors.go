package service

import "errors"

// Sentinel errors mapped to HTTP statuses at the handler boundary
var (
	// ErrSchoolNotFound means no school document exists for a code.
	ErrSchoolNotFound = errors.New("school code not found")
	// ErrUserNotFound means the locator scan exhausted every school
	// without a match.
	ErrUserNotFound = errors.New("user not found")
	// ErrNoStudents means the report filter matched no students with a
	// recorded opportunity.
	ErrNoStudents = errors.New("no students with opportunities")
)
