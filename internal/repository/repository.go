package repository

import "errors"

// Collection names in Firestore
const (
	colSchools       = "schools"
	colOfficials     = "school_officials"
	colStudents      = "students"
	colOpportunities = "opportunities"
)

// ErrNotFound is returned when a document or query match does not exist
var ErrNotFound = errors.New("not found")
