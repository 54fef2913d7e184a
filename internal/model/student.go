package model

// Student is a student record under one school. LastOpportunity holds
// the id of the most recent opportunity, or "" when none is recorded.
type Student struct {
	Name            string `firestore:"name" json:"name"`
	Level           string `firestore:"level" json:"level"`
	City            string `firestore:"city" json:"city"`
	LastOpportunity string `firestore:"lastOpportunity" json:"lastOpportunity,omitempty"`
}
