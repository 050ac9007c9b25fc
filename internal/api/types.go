package api

import "time"

// Profile is the user profile document as the SLVNK backend returns it.
// The backend owns this shape; fields we never render are still carried so
// admin views and profile edits can round-trip them.
type Profile struct {
	ID               string    `json:"_id,omitempty"`
	Name             string    `json:"name"`
	Email            string    `json:"email,omitempty"`
	Gender           string    `json:"gender,omitempty"`
	DateOfBirth      string    `json:"dateOfBirth,omitempty"`
	Age              int       `json:"age,omitempty"`
	MobileNumber     string    `json:"mobileNumber,omitempty"`
	City             string    `json:"city,omitempty"`
	State            string    `json:"state,omitempty"`
	Country          string    `json:"country,omitempty"`
	ProfileCreatedBy string    `json:"profileCreatedBy,omitempty"`
	MaritalStatus    string    `json:"maritalStatus,omitempty"`
	HeightCm         int       `json:"heightCm,omitempty"`
	WeightKg         int       `json:"weightKg,omitempty"`
	PhysicalStatus   string    `json:"physicalStatus,omitempty"`
	BodyType         string    `json:"bodyType,omitempty"`
	Complexion       string    `json:"complexion,omitempty"`
	MotherTongue     string    `json:"motherTongue,omitempty"`
	Religion         string    `json:"religion,omitempty"`
	Caste            string    `json:"caste,omitempty"`
	SubCaste         string    `json:"subCaste,omitempty"`
	Gothra           string    `json:"gothra,omitempty"`
	Manglik          string    `json:"manglik,omitempty"`
	EducationLevel   string    `json:"educationLevel,omitempty"`
	EducationField   string    `json:"educationField,omitempty"`
	Occupation       string    `json:"occupation,omitempty"`
	AnnualIncome     string    `json:"annualIncome,omitempty"`
	FatherStatus     string    `json:"fatherStatus,omitempty"`
	MotherStatus     string    `json:"motherStatus,omitempty"`
	NumberOfSiblings int       `json:"numberOfSiblings,omitempty"`
	SiblingsMarried  int       `json:"siblingsMarried,omitempty"`
	FamilyType       string    `json:"familyType,omitempty"`
	FamilyValues     string    `json:"familyValues,omitempty"`
	Diet             string    `json:"diet,omitempty"`
	SmokingHabits    string    `json:"smokingHabits,omitempty"`
	DrinkingHabits   string    `json:"drinkingHabits,omitempty"`
	Bio              string    `json:"bio,omitempty"`
	ProfileImage     string    `json:"profileImage,omitempty"`
	IsVerified       bool      `json:"isVerified,omitempty"`
	CreatedAt        time.Time `json:"createdAt,omitempty"`
}

// Location renders the "City, State" line used on cards and detail views.
func (p *Profile) Location() string {
	switch {
	case p.City != "" && p.State != "":
		return p.City + ", " + p.State
	case p.City != "":
		return p.City
	default:
		return p.State
	}
}

// Credentials is the result of a successful login or registration.
type Credentials struct {
	Token string
	User  *Profile
}

// SearchPage is one page of search results together with the pagination
// metadata the backend reported. Fields may be zero when the backend omits
// them; normalization happens in the search controller, not here.
type SearchPage struct {
	Results    []Profile
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// Stats is the admin dashboard counters document.
type Stats struct {
	TotalUsers int `json:"totalUsers"`
}

// Upload is a file attached to a multipart request.
type Upload struct {
	Filename string
	Content  []byte
}
