package model

// Official is a school official record, stored in the school_officials
// subcollection of exactly one school at a time.
type Official struct {
	Name         string `firestore:"name" json:"name"`
	Email        string `firestore:"email" json:"email"`
	SchoolCode   string `firestore:"schoolCode" json:"schoolCode"`
	UID          string `firestore:"uid" json:"uid"`
	PasswordHash string `firestore:"passwordHash" json:"-"` // bcrypt hash, never expose
	Phone        string `firestore:"phone,omitempty" json:"phone,omitempty"`
	Location     string `firestore:"location,omitempty" json:"location,omitempty"`
}

// ProfileResponse is the public view of an official, with the school
// code the locator resolved (authoritative over the denormalized copy).
type ProfileResponse struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	SchoolCode string `json:"schoolCode"`
	UID        string `json:"uid"`
	Phone      string `json:"phone,omitempty"`
	Location   string `json:"location,omitempty"`
}

// ToProfile converts an Official to its public profile view
func (o *Official) ToProfile(schoolCode string) ProfileResponse {
	return ProfileResponse{
		Name:       o.Name,
		Email:      o.Email,
		SchoolCode: schoolCode,
		UID:        o.UID,
		Phone:      o.Phone,
		Location:   o.Location,
	}
}

// ValidateSchoolRequest is the POST /validate-school payload
type ValidateSchoolRequest struct {
	SchoolCode string `json:"schoolCode"`
}

// SignupRequest is the POST /signup payload
type SignupRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	UID        string `json:"uid"`
	SchoolCode string `json:"schoolCode"`
}

// LoginRequest is the POST /login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the POST /updateProfile payload. Pointer
// fields distinguish "absent" from "set to empty": only fields present
// in the request are written.
type UpdateProfileRequest struct {
	Email    string  `json:"email"`
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
}

// ChangeSchoolKeyRequest is the POST /changeSchoolKey payload
type ChangeSchoolKeyRequest struct {
	Email         string `json:"email"`
	NewSchoolCode string `json:"newSchoolCode"`
}
