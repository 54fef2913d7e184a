package model

// Opportunity is an activity record. It lives in the opportunities
// subcollection of some school but is looked up system-wide by its id
// field, so the owning school may differ from the student's.
type Opportunity struct {
	ID               string `firestore:"id" json:"id"`
	Name             string `firestore:"name" json:"name"`
	Hour             int    `firestore:"hour" json:"hour"`
	Date             string `firestore:"date" json:"date"`
	Description      string `firestore:"description" json:"description"`
	OrganizationName string `firestore:"organizationName" json:"organizationName"`
}

// ReportRow is one denormalized line of the opportunities report,
// merging student fields with the resolved opportunity.
type ReportRow struct {
	StudentName      string `json:"studentName"`
	OpportunityName  string `json:"opportunityName"`
	Hour             int    `json:"hour"`
	Date             string `json:"date"`
	Level            string `json:"level"`
	City             string `json:"city"`
	Description      string `json:"description"`
	OrganizationName string `json:"organizationName"`
}

// SkippedStudent records a student whose last-opportunity reference
// could not be resolved into a report row.
type SkippedStudent struct {
	StudentName   string `json:"studentName"`
	OpportunityID string `json:"opportunityId"`
	Reason        string `json:"reason"`
}

// Report is the aggregation result: the rows that resolved plus the
// students that were skipped, so callers can account for both.
type Report struct {
	Rows    []ReportRow      `json:"rows"`
	Skipped []SkippedStudent `json:"skipped,omitempty"`
}
